// pkg/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by ApplyEnvironmentOverrides.
const (
	EnvFormat     = "QTTY_FORMAT"
	EnvPrecision  = "QTTY_PRECISION"
	EnvGrouping   = "QTTY_GROUPING"
	EnvLogLevel   = "QTTY_LOG_LEVEL"
	EnvAngleRange = "QTTY_ANGLE_RANGE"
)

// ApplyEnvironmentOverrides overrides configuration values from QTTY_*
// environment variables. Unset or empty variables leave values unchanged.
func (c *Config) ApplyEnvironmentOverrides() error {
	return c.applyOverrides(os.Getenv)
}

func (c *Config) applyOverrides(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvFormat)); v != "" {
		c.Output.Format = strings.ToLower(v)
	}

	if v := strings.TrimSpace(getenv(EnvPrecision)); v != "" {
		precision, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPrecision, err)
		}
		c.Output.Precision = precision
	}

	if v := strings.TrimSpace(getenv(EnvGrouping)); v != "" {
		grouping, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvGrouping, err)
		}
		c.Output.Grouping = grouping
	}

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.Logging.Level = v
	}

	if v := strings.TrimSpace(getenv(EnvAngleRange)); v != "" {
		c.Angles.Range = v
	}

	return nil
}
