// Package config handles configuration management for wikiws.
// It supports loading configuration from multiple sources including
// an embedded TOML defaults file, a user TOML file, environment variables
// and command-line overrides.
//
// Sources are layered in this order, later ones winning:
//
//  1. embedded/defaults.toml
//  2. the user file ($XDG_CONFIG_HOME/wikiws/config.toml, or --config)
//  3. WIKIWS_* environment variables (WIKIWS_WIKI_CONTENT_DIR -> wiki.content_dir)
//  4. overrides passed by the caller, usually from CLI flags
package config
