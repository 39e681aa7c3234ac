package config

import (
	"time"
)

const (
	// EnvPrefix prefixes environment overrides: CLANGFMT_PROGRESS_INTERVAL
	EnvPrefix = "CLANGFMT_"

	// EnvFormatterExecutable selects the formatter binary
	EnvFormatterExecutable = "CLANG_FORMAT_EXECUTABLE"
)

// RootConfigFiles are looked up at the repository root, first match wins
var RootConfigFiles = []string{".clangfmt.toml", ".clangfmt.yaml", ".clangfmt.yml"}

// Config is the effective configuration of a run
type Config struct {
	Patterns  PatternsConfig  `koanf:"patterns"`
	Formatter FormatterConfig `koanf:"formatter"`
	Progress  ProgressConfig  `koanf:"progress"`
}

// PatternsConfig locates and interprets the include/exclude lists
type PatternsConfig struct {
	IncludeFile      string `koanf:"include_file"`
	ExcludeFile      string `koanf:"exclude_file"`
	IncludeSyntax    string `koanf:"include_syntax"`
	ExcludeSyntax    string `koanf:"exclude_syntax"`
	RespectGitignore bool   `koanf:"respect_gitignore"`
}

// FormatterConfig is the external command run on every candidate
type FormatterConfig struct {
	Executable string   `koanf:"executable"`
	Args       []string `koanf:"args"`
}

// ProgressConfig controls status line throttling
type ProgressConfig struct {
	Interval time.Duration `koanf:"interval"`
}
