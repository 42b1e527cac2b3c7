// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"wageman/internal/errors"
	"wageman/internal/logging"
)

// MaxPrecision bounds the number of decimal places rendered.
const MaxPrecision = 12

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// Precision is the number of decimal places; -1 prints full precision
	Precision int `json:"precision"`

	// CurrencySymbol is printed before every value
	CurrencySymbol string `json:"currency_symbol"`

	// NoColor disables ANSI styling in terminal formats
	NoColor bool `json:"no_color"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat:  "text",
			Precision:      2,
			CurrencySymbol: "$",
			NoColor:        true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath is $HOME/.wageman.json, or empty when no home is known.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".wageman.json")
}

// Load loads configuration from a file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("read "+path, err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Config("decode "+path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values a user may have set by hand.
func (c *Config) Validate() error {
	if c.Output.Precision < -1 || c.Output.Precision > MaxPrecision {
		return errors.Newf(errors.TypeConfig, "output.precision must be between -1 and %d, got %d",
			MaxPrecision, c.Output.Precision)
	}
	if c.Output.DefaultFormat == "" {
		return errors.New(errors.TypeConfig, "output.default_format must not be empty")
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Config("create "+dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Internal("encode config", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Config("write "+path, err)
	}
	return nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
