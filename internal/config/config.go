// Package config provides configuration loading for the getpage CLI.
package config

// Config holds user defaults for generation. Everything is optional; flags
// always win over config values.
type Config struct {
	// OutputDir is the default directory to generate pages in.
	// Env: GETPAGE_DIR, Default: "." (current directory)
	OutputDir string `mapstructure:"outputDir"`

	// Verbose enables debug logging by default.
	Verbose bool `mapstructure:"verbose"`
}

// WithDefaults returns a copy of the config with defaults applied.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.OutputDir == "" {
		out.OutputDir = "."
	}
	return &out
}
