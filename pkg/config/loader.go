package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/wikiws/pkg/errors"
	"github.com/arthur-debert/wikiws/pkg/logging"
	"github.com/arthur-debert/wikiws/pkg/paths"
)

// EnvPrefix is the prefix of every environment variable read by Load
const EnvPrefix = "WIKIWS_"

// LoadOptions selects the sources layered on top of the embedded defaults
type LoadOptions struct {
	// File is an explicit config file. It must exist when set.
	// When empty the XDG location is used if present.
	File string

	// Overrides are applied last, keyed by dotted koanf path (wiki.content_dir)
	Overrides map[string]interface{}

	// SkipFile ignores the XDG config file. An explicit File is still read.
	SkipFile bool

	// SkipEnv ignores WIKIWS_* variables
	SkipEnv bool
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 2. User file
	configFile, explicit := opts.File, opts.File != ""
	if !explicit && !opts.SkipFile {
		configFile = paths.ConfigFilePath()
	}
	configFile = paths.ExpandHome(configFile)
	if configFile == "" {
		logger.Trace().Msg("Skipping config file")
	} else if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configFile).
				WithDetail("path", configFile)
		}
		logger.Debug().Str("path", configFile).Msg("Loaded config file")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", configFile).
			WithDetail("path", configFile)
	}

	// 3. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Caller overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	postProcess(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration from embedded defaults alone
func Default() (*Config, error) {
	return Load(LoadOptions{SkipFile: true, SkipEnv: true})
}

// envKey maps WIKIWS_WIKI_CONTENT_DIR to wiki.content_dir. Only the first
// underscore separates section from key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func postProcess(cfg *Config) {
	if cfg.Wiki.TemplatePath == "" {
		cfg.Wiki.TemplatePath = paths.DefaultTemplatePath()
	} else {
		cfg.Wiki.TemplatePath = paths.ExpandHome(cfg.Wiki.TemplatePath)
	}
}
