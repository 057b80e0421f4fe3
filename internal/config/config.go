// Package config loads the slurmplus configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete tool configuration. Every field has a
// working default, so the config file is optional.
type Config struct {
	// Color controls escape-sequence output: auto, always, or never.
	Color string `yaml:"color"`

	Recent struct {
		// SpanDays is how many days back the recent command queries
		// the accounting database.
		SpanDays int `yaml:"span_days"`
		// Limit caps how many job groups the recent command prints.
		Limit int `yaml:"limit"`
	} `yaml:"recent"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{Color: "auto"}
	cfg.Recent.SpanDays = 7
	cfg.Recent.Limit = 30
	return cfg
}

// DefaultPath is where Load looks when no explicit path is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "slurmplus", "config.yaml")
}

// Load reads the config at path, filling omitted fields with defaults.
// A missing file is not an error; it yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	if cfg.Recent.SpanDays <= 0 {
		cfg.Recent.SpanDays = 7
	}
	if cfg.Recent.Limit <= 0 {
		cfg.Recent.Limit = 30
	}
	return cfg, nil
}
