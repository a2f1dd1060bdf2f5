// Package config defines the configuration types and defaults for
// padlint.
package config

// Config is the top-level configuration.
type Config struct {
	// Rules lists the rule tables to run, in order. Each name must be
	// registered.
	Rules []string `yaml:"rules"`

	// Exclude holds glob patterns matched against file paths and base
	// names; matching files are skipped.
	Exclude []string `yaml:"exclude"`

	// Jobs bounds concurrent file processing. Zero means one worker
	// per CPU.
	Jobs int `yaml:"jobs"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Rules:   []string{"padding-around-all"},
		Exclude: []string{"node_modules"},
	}
}
