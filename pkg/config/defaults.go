package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Default values for configuration.
const (
	DefaultOutput         = OutputText
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "text"
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvConfig     = "MINIGREP_CONFIG"
	EnvIgnoreCase = "MINIGREP_IGNORE_CASE"
	EnvOutput     = "MINIGREP_OUTPUT"
	EnvLogLevel   = "MINIGREP_LOG_LEVEL"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output:    DefaultOutput,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// DefaultPath returns the per-user config file location, or "" if the
// user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "minigrep", "config.yaml")
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() error {
	if v := os.Getenv(EnvIgnoreCase); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: invalid boolean %q", EnvIgnoreCase, v)
		}
		c.Defaults.IgnoreCase = b
	}

	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	return nil
}
