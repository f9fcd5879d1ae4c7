// Package config handles configuration loading and validation for goaliefix.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	FileNotFound    ConfigErrorType = "FILE_NOT_FOUND"
	InvalidYAML     ConfigErrorType = "INVALID_YAML"
	ValidationError ConfigErrorType = "VALIDATION_ERROR"
)

// ConfigError represents an error that occurred during configuration loading.
type ConfigError struct {
	Type    ConfigErrorType
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	switch e.Type {
	case FileNotFound:
		return fmt.Sprintf("configuration file not found: %s", e.Path)
	case InvalidYAML:
		return fmt.Sprintf("invalid YAML in configuration file: %s", e.Message)
	case ValidationError:
		return fmt.Sprintf("configuration validation error: %s", e.Message)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

// AuditConfig controls the optional run audit trail.
type AuditConfig struct {
	Enabled      bool   `yaml:"enabled"`
	LogDirectory string `yaml:"logDirectory"`
}

// Configuration holds all settings for goaliefix.
type Configuration struct {
	CSVRoot   string       `yaml:"csvRoot"`   // root directory of per-team CSV exports
	TeamID    string       `yaml:"teamId"`    // team subdirectory to repair
	SeasonMin int          `yaml:"seasonMin"` // inclusive start-year lower bound
	SeasonMax int          `yaml:"seasonMax"` // inclusive start-year upper bound
	Reports   []string     `yaml:"reports"`   // accepted report kinds
	Audit     *AuditConfig `yaml:"audit,omitempty"`
}

// Default returns the configuration matching the historical export layout:
// team 1 files under csv/, seasons 2012 through 2024, regular and playoff
// reports, audit trail off.
func Default() *Configuration {
	return &Configuration{
		CSVRoot:   "csv",
		TeamID:    "1",
		SeasonMin: 2012,
		SeasonMax: 2024,
		Reports:   []string{"regular", "playoffs"},
		Audit:     &AuditConfig{LogDirectory: "logs"},
	}
}

// Load reads a YAML configuration file, fills unset fields with defaults,
// and validates the result. A missing file is not an error: the defaults
// cover the historical layout in full.
func Load(filePath string) (*Configuration, error) {
	cfg := Default()

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, &ConfigError{Type: FileNotFound, Path: filePath, Message: err.Error()}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ConfigError{Type: InvalidYAML, Path: filePath, Message: err.Error()}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills fields the YAML left empty.
func (c *Configuration) applyDefaults() {
	defaults := Default()

	if c.CSVRoot == "" {
		c.CSVRoot = defaults.CSVRoot
	}
	if c.TeamID == "" {
		c.TeamID = defaults.TeamID
	}
	if c.SeasonMin == 0 {
		c.SeasonMin = defaults.SeasonMin
	}
	if c.SeasonMax == 0 {
		c.SeasonMax = defaults.SeasonMax
	}
	if len(c.Reports) == 0 {
		c.Reports = defaults.Reports
	}
	if c.Audit == nil {
		c.Audit = defaults.Audit
	} else if c.Audit.LogDirectory == "" {
		c.Audit.LogDirectory = defaults.Audit.LogDirectory
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Configuration) Validate() error {
	if c.CSVRoot == "" {
		return &ConfigError{Type: ValidationError, Message: "csvRoot cannot be empty"}
	}
	if c.TeamID == "" {
		return &ConfigError{Type: ValidationError, Message: "teamId cannot be empty"}
	}
	if c.SeasonMin > c.SeasonMax {
		return &ConfigError{
			Type:    ValidationError,
			Message: fmt.Sprintf("seasonMin (%d) cannot exceed seasonMax (%d)", c.SeasonMin, c.SeasonMax),
		}
	}
	if c.SeasonMin < 1900 || c.SeasonMax > 2999 {
		return &ConfigError{
			Type:    ValidationError,
			Message: fmt.Sprintf("season range %d-%d is outside four-digit years", c.SeasonMin, c.SeasonMax),
		}
	}
	if len(c.Reports) == 0 {
		return &ConfigError{Type: ValidationError, Message: "reports must contain at least one report kind"}
	}
	for i, report := range c.Reports {
		if report == "" {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("reports[%d] cannot be empty", i),
			}
		}
	}
	return nil
}

// TeamDir returns the directory holding the configured team's exports.
func (c *Configuration) TeamDir() string {
	return filepath.Join(c.CSVRoot, c.TeamID)
}
