package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/wikiws/pkg/errors"
)

// fileConfig mirrors Config in the shape of config.toml. Git.Token has no
// field here so it can never be written out.
type fileConfig struct {
	Wiki struct {
		ContentDir   string `toml:"content_dir"`
		LinkFolder   string `toml:"link_folder"`
		TagMapFile   string `toml:"tag_map_file"`
		TemplatePath string `toml:"template_path"`
		IgnoreLinks  bool   `toml:"ignore_links"`
	} `toml:"wiki"`
	Git struct {
		Username     string `toml:"username"`
		Email        string `toml:"email"`
		CloneTimeout string `toml:"clone_timeout"`
		Depth        int    `toml:"depth"`
	} `toml:"git"`
	Output struct {
		Format  string `toml:"format"`
		NoColor bool   `toml:"no_color"`
	} `toml:"output"`
}

// Generate renders cfg as a config.toml document
func Generate(cfg *Config) ([]byte, error) {
	var fc fileConfig
	fc.Wiki.ContentDir = cfg.Wiki.ContentDir
	fc.Wiki.LinkFolder = cfg.Wiki.LinkFolder
	fc.Wiki.TagMapFile = cfg.Wiki.TagMapFile
	fc.Wiki.TemplatePath = cfg.Wiki.TemplatePath
	fc.Wiki.IgnoreLinks = cfg.Wiki.IgnoreLinks
	fc.Git.Username = cfg.Git.Username
	fc.Git.Email = cfg.Git.Email
	fc.Git.CloneTimeout = cfg.Git.CloneTimeout.String()
	fc.Git.Depth = cfg.Git.Depth
	fc.Output.Format = cfg.Output.Format
	fc.Output.NoColor = cfg.Output.NoColor

	data, err := toml.Marshal(fc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return data, nil
}

// GenerateCommented renders cfg with every value line commented out, so the
// written file documents the effective values without pinning them.
func GenerateCommented(cfg *Config) ([]byte, error) {
	data, err := Generate(cfg)
	if err != nil {
		return nil, err
	}
	return []byte(commentOutConfigValues(string(data))), nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines, comments and section headers as-is
		if trimmed == "" || strings.HasPrefix(trimmed, "#") ||
			(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")) {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
