// Package config manages application configuration.
package config

// Config represents the application configuration. Flag values always win
// over config values; config values apply when the flag is absent.
type Config struct {
	Defaults Defaults `yaml:"defaults"`
	Warnings bool     `yaml:"warnings"`
}

// Defaults are applied to embed invocations that omit the matching flag.
type Defaults struct {
	MaxWidth  int `yaml:"max_width"`  // 0 disables scaling
	WrapWidth int `yaml:"wrap_width"` // 0 disables wrapping, otherwise >= 40
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Defaults: Defaults{
			MaxWidth:  0,
			WrapWidth: 0,
		},
		Warnings: true,
	}
}
