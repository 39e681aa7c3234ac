package config

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/clangfmt/pkg/errors"
)

type renderedConfig struct {
	Patterns  renderedPatterns  `toml:"patterns"`
	Formatter renderedFormatter `toml:"formatter"`
	Progress  renderedProgress  `toml:"progress"`
}

type renderedPatterns struct {
	IncludeFile      string `toml:"include_file"`
	ExcludeFile      string `toml:"exclude_file"`
	IncludeSyntax    string `toml:"include_syntax"`
	ExcludeSyntax    string `toml:"exclude_syntax"`
	RespectGitignore bool   `toml:"respect_gitignore"`
}

type renderedFormatter struct {
	Executable string   `toml:"executable"`
	Args       []string `toml:"args"`
}

type renderedProgress struct {
	Interval string `toml:"interval"`
}

// Render returns the configuration as TOML that Load would read back
func Render(c *Config) (string, error) {
	out := renderedConfig{
		Patterns: renderedPatterns{
			IncludeFile:      c.Patterns.IncludeFile,
			ExcludeFile:      c.Patterns.ExcludeFile,
			IncludeSyntax:    c.Patterns.IncludeSyntax,
			ExcludeSyntax:    c.Patterns.ExcludeSyntax,
			RespectGitignore: c.Patterns.RespectGitignore,
		},
		Formatter: renderedFormatter{
			Executable: c.Formatter.Executable,
			Args:       c.Formatter.Args,
		},
		Progress: renderedProgress{
			Interval: c.Progress.Interval.String(),
		},
	}

	data, err := toml.Marshal(out)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(data), nil
}
