package config

import (
	"time"

	"github.com/arthur-debert/wikiws/pkg/errors"
	"github.com/arthur-debert/wikiws/pkg/paths"
	"github.com/arthur-debert/wikiws/pkg/types"
)

// Output formats accepted by output.format
const (
	FormatAuto = "auto"
	FormatTerm = "term"
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the fully merged wikiws configuration
type Config struct {
	Wiki   Wiki   `koanf:"wiki" json:"wiki" yaml:"wiki"`
	Git    Git    `koanf:"git" json:"git" yaml:"git"`
	Output Output `koanf:"output" json:"output" yaml:"output"`
}

// Wiki holds the main wiki layout and provisioning settings
type Wiki struct {
	ContentDir   string `koanf:"content_dir" json:"contentDir" yaml:"contentDir"`
	LinkFolder   string `koanf:"link_folder" json:"linkFolder" yaml:"linkFolder"`
	TagMapFile   string `koanf:"tag_map_file" json:"tagMapFile" yaml:"tagMapFile"`
	TemplatePath string `koanf:"template_path" json:"templatePath" yaml:"templatePath"`
	IgnoreLinks  bool   `koanf:"ignore_links" json:"ignoreLinks" yaml:"ignoreLinks"`
}

// Git holds clone settings. Token is only ever filled from the environment
// or flags.
type Git struct {
	Username     string        `koanf:"username" json:"username" yaml:"username"`
	Email        string        `koanf:"email" json:"email" yaml:"email"`
	Token        string        `koanf:"token" json:"-" yaml:"-"`
	CloneTimeout time.Duration `koanf:"clone_timeout" json:"cloneTimeout" yaml:"cloneTimeout"`
	Depth        int           `koanf:"depth" json:"depth" yaml:"depth"`
}

// Output holds rendering settings for the CLI
type Output struct {
	Format  string `koanf:"format" json:"format" yaml:"format"`
	NoColor bool   `koanf:"no_color" json:"noColor" yaml:"noColor"`
}

// Layout returns the main wiki layout described by the configuration
func (c *Config) Layout() paths.Layout {
	return paths.Layout{
		ContentDir: c.Wiki.ContentDir,
		LinkFolder: c.Wiki.LinkFolder,
		TagMapFile: c.Wiki.TagMapFile,
	}.WithDefaults()
}

// Credentials returns the clone credentials assembled from the git section
func (c *Config) Credentials() types.Credentials {
	return types.Credentials{
		Username: c.Git.Username,
		Email:    c.Git.Email,
		Token:    c.Git.Token,
	}
}

// Validate checks values that would otherwise fail deep inside an operation
func (c *Config) Validate() error {
	if err := paths.ValidateFolderName(c.Wiki.ContentDir); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "wiki.content_dir must be a single folder name").
			WithDetail("value", c.Wiki.ContentDir)
	}
	if err := paths.ValidateFolderName(c.Wiki.LinkFolder); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "wiki.link_folder must be a single folder name").
			WithDetail("value", c.Wiki.LinkFolder)
	}
	if c.Wiki.TagMapFile == "" {
		return errors.New(errors.ErrConfigValid, "wiki.tag_map_file cannot be empty")
	}
	if c.Git.Depth < 0 {
		return errors.Newf(errors.ErrConfigValid, "git.depth cannot be negative: %d", c.Git.Depth)
	}
	if c.Git.CloneTimeout < 0 {
		return errors.Newf(errors.ErrConfigValid, "git.clone_timeout cannot be negative: %s", c.Git.CloneTimeout)
	}
	switch c.Output.Format {
	case FormatAuto, FormatTerm, FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown output format %q", c.Output.Format).
			WithDetail("value", c.Output.Format)
	}
	return nil
}
