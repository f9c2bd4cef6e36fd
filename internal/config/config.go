// Package config loads run configuration from the environment.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix (e.g. CUTOFFS_OUTPUT).
const Prefix = "CUTOFFS"

// Config represents the complete run configuration.
type Config struct {
	InputDir   string        `envconfig:"INPUT_DIR" default:"."`
	OutputPath string        `envconfig:"OUTPUT" default:"public/data/cutoffs.json"`
	Pattern    string        `envconfig:"PATTERN" default:"*.xlsx"`
	TablesFile string        `envconfig:"TABLES_FILE"`
	Summary    bool          `envconfig:"SUMMARY" default:"true"`
	Logging    LoggingConfig `envconfig:"LOG"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"text"`
	Output string `envconfig:"OUTPUT" default:"stderr"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if _, err := filepath.Match(c.Pattern, ""); err != nil || c.Pattern == "" {
		return fmt.Errorf("invalid file pattern %q", c.Pattern)
	}
	return c.Logging.Validate()
}

// Validate checks the logging configuration.
func (l LoggingConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q", l.Format)
	}
	switch strings.ToLower(l.Output) {
	case "stdout", "stderr":
	default:
		return fmt.Errorf("invalid log output %q", l.Output)
	}
	return nil
}
