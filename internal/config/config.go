// Package config loads and validates tension.yml, the knitter's personal
// configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dyluth/tension/internal/gauge"
)

// DefaultPath is where the CLI looks for configuration when --config is not
// given.
const DefaultPath = "tension.yml"

// Config represents the top-level tension.yml configuration.
type Config struct {
	Version     string       `yaml:"version"`
	Gauge       *gauge.Gauge `yaml:"gauge,omitempty"`       // The knitter's own swatch gauge
	Preferences *Preferences `yaml:"preferences,omitempty"` // Defaults applied when flags are not given
}

// Preferences holds optional defaults for plan building.
type Preferences struct {
	AllowOverflow bool `yaml:"allow_overflow,omitempty"` // Permit pick-up counts at or above the row count
}

// Validate performs strict validation on the configuration and fills in the
// preferences section when missing.
func (c *Config) Validate() error {
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Gauge != nil {
		if err := c.Gauge.Validate(); err != nil {
			return fmt.Errorf("gauge: %w", err)
		}
	}

	if c.Preferences == nil {
		c.Preferences = &Preferences{}
	}

	return nil
}

// Load reads and validates tension.yml from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadIfPresent reads path when the file exists. A missing file is not an
// error: configuration is optional everywhere except where a personal gauge
// would otherwise be missing, and callers decide that.
func LoadIfPresent(path string) (*Config, error) {
	config, err := Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return config, err
}
