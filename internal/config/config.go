// Package config loads CLI-facing settings from configuration files,
// environment variables and flags via viper.
package config

// Config holds the tunable settings of the qrai CLI.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// Fast switches validation to the reduced stress-test subset.
	Fast bool `mapstructure:"fast"`

	// JSON emits machine-readable output.
	JSON bool `mapstructure:"json"`

	// Threshold is the minimum score the check subcommand accepts.
	Threshold uint8 `mapstructure:"threshold"`
}

// Default returns the default CLI configuration.
func Default() Config {
	return Config{
		LogLevel:  "info",
		Threshold: 70,
	}
}
