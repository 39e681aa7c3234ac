// Package config handles configuration management for clangfmt.
// It layers the embedded defaults, an optional repository config file,
// an optional --config file and environment variables with koanf, and
// renders the effective result as TOML.
package config
