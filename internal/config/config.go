// Package config loads the YAML run configuration naming which resources
// and scenario files to simulate, which criterion to dispatch by, and
// where to write the resulting ledger.
package config

import (
	"fmt"
	"os"

	"evfleet/internal/fleet"
	"evfleet/internal/simerr"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	ResourcesFile string `yaml:"resources_file"`
	ScenarioFile  string `yaml:"scenario_file"`
	Criterion     string `yaml:"criterion"`
	OutputCSV     string `yaml:"output_csv"`
}

// Load reads, parses and validates the run configuration at path.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked reads and parses the run configuration without validating
// it, useful for debugging or printing a partial config.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every required field is set and that the named
// criterion is one of the built-ins.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil: %w", simerr.ErrConfiguration)
	}
	if c.ResourcesFile == "" {
		return fmt.Errorf("resources_file is required: %w", simerr.ErrConfiguration)
	}
	if c.ScenarioFile == "" {
		return fmt.Errorf("scenario_file is required: %w", simerr.ErrConfiguration)
	}
	if _, ok := fleet.ByName(c.Criterion); !ok {
		return fmt.Errorf("criterion %q must be one of %v: %w", c.Criterion, fleet.Names(), simerr.ErrConfiguration)
	}
	return nil
}
