package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the base name for configuration files
	// (without extension).
	ConfigFileName = "qrai"

	// EnvPrefix is the prefix for environment variables
	// (QRAI_LOG_LEVEL, QRAI_FAST, ...).
	EnvPrefix = "QRAI"
)

// Loader reads configuration from files, environment variables and
// bound flags.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader over the global viper instance so cobra
// flag bindings are honoured.
func NewLoader() *Loader {
	return &Loader{v: viper.GetViper()}
}

// Load resolves the configuration. A missing config file is not an
// error; defaults and environment variables apply.
func (l *Loader) Load() (*Config, error) {
	l.v.SetConfigName(ConfigFileName)
	l.v.SetConfigType("yaml")
	l.v.AddConfigPath(".")
	l.v.AddConfigPath("$HOME/.config/qrai")
	l.v.AddConfigPath("/etc/qrai")

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	l.v.AutomaticEnv()

	defaults := Default()
	l.v.SetDefault("log_level", defaults.LogLevel)
	l.v.SetDefault("threshold", defaults.Threshold)

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that cannot be expressed by types alone.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
