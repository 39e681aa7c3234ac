package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/clangfmt/pkg/errors"
	"github.com/arthur-debert/clangfmt/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadOptions selects the optional config layers
type LoadOptions struct {
	// Root is the repository root searched for RootConfigFiles
	Root string

	// File is an extra config file layered after the root one
	File string
}

// Load builds the effective configuration:
//  1. embedded defaults
//  2. root config file, if any
//  3. opts.File, if set
//  4. CLANGFMT_* environment variables
//  5. CLANG_FORMAT_EXECUTABLE
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if opts.Root != "" {
		for _, filename := range RootConfigFiles {
			path := filepath.Join(opts.Root, filename)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			logger.Debug().Str("path", path).Msg("Loaded root config")
			break
		}
	}

	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", opts.File)
		}
		if err := loadFile(k, opts.File); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", opts.File).Msg("Loaded config file")
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// An exported but empty variable leaves the configured executable alone
	if err := k.Load(env.ProviderWithValue(EnvFormatterExecutable, ".", func(key, value string) (string, interface{}) {
		if key != EnvFormatterExecutable || value == "" {
			return "", nil
		}
		return "formatter.executable", value
	}), nil); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", EnvFormatterExecutable)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		parser = toml.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
	}
	return nil
}

// envKey maps CLANGFMT_PATTERNS_INCLUDE_FILE to patterns.include_file.
// Variables without a key part, like CLANGFMT_ROOT, are skipped.
func envKey(s string) string {
	rest := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, ok := strings.Cut(rest, "_")
	if !ok || key == "" {
		return ""
	}
	return section + "." + key
}

// Validate checks values that cannot be expressed by types alone
func (c *Config) Validate() error {
	switch {
	case c.Patterns.IncludeFile == "":
		return errors.New(errors.ErrConfigValid, "patterns.include_file is empty")
	case c.Patterns.ExcludeFile == "":
		return errors.New(errors.ErrConfigValid, "patterns.exclude_file is empty")
	case c.Formatter.Executable == "":
		return errors.New(errors.ErrConfigValid, "formatter.executable is empty")
	case c.Progress.Interval < 0:
		return errors.Newf(errors.ErrConfigValid, "progress.interval is negative: %s", c.Progress.Interval)
	}
	return nil
}
