// Package paths provides centralized path handling for wikiws.
//
// # Main wiki layout
//
// A main wiki is a folder with a reserved content directory. Sub-wikis are
// attached through directory symlinks placed in a reserved link folder inside
// that content directory:
//
//	<main>/
//	  .gitignore                    contains /tiddlers/subwiki/
//	  tiddlers/
//	    subwiki/
//	      notes -> /abs/path/to/notes
//	  plugins/linonetwo/sub-wiki/FileSystemPaths.tid
//
// The content directory, link folder and tag map file are configurable
// through Layout; DefaultLayout matches stock TiddlyWiki folders.
//
// # Environment Variables
//
//   - WIKIWS_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/wikiws)
//   - WIKIWS_DATA_DIR: Override XDG data directory (default: $XDG_DATA_HOME/wikiws)
//
// The data directory holds the default wiki template under "template".
package paths
