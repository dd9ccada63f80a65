// pkg/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-qtty/pkg/logging"
	"github.com/opd-ai/go-qtty/pkg/qtty/angular"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ShortestPrecision prints the shortest decimal that round-trips.
const ShortestPrecision = -1

// Config contains configuration for the qtty command-line tools
type Config struct {
	Output  OutputConfig  `yaml:"output" json:"output"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Angles  AnglesConfig  `yaml:"angles" json:"angles"`
}

// OutputConfig controls how values are printed
type OutputConfig struct {
	Format    string `yaml:"format" json:"format"`
	Precision int    `yaml:"precision" json:"precision"`
	Grouping  bool   `yaml:"grouping" json:"grouping"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
}

// AnglesConfig contains defaults for angle commands
type AnglesConfig struct {
	Range string `yaml:"range" json:"range"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:    FormatText,
			Precision: ShortestPrecision,
			Grouping:  false,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
		Angles: AnglesConfig{
			Range: angular.RangeSigned.String(),
		},
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid output format %q (want %s or %s)", c.Output.Format, FormatText, FormatJSON)
	}

	if c.Output.Precision < ShortestPrecision || c.Output.Precision > 17 {
		return fmt.Errorf("invalid output precision %d (want -1 to 17)", c.Output.Precision)
	}

	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}

	if _, err := angular.ParseRange(c.Angles.Range); err != nil {
		return fmt.Errorf("invalid angle range: %w", err)
	}

	return nil
}

// LoadConfig loads a configuration from a file. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if err := config.overlay(path); err != nil {
		return nil, err
	}
	return config, nil
}

// overlay decodes the file at path on top of c, so only keys present in
// the file change.
func (c *Config) overlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// SaveConfig saves a configuration to a file, creating parent directories
func SaveConfig(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
