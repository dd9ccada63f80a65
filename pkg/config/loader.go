// pkg/config/loader.go
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/opd-ai/go-qtty/pkg/logging"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "qtty.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/qtty"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *logging.Logger

	// overridable in tests
	homeDir func() (string, error)
	workDir func() (string, error)
	getenv  func(string) string
}

// NewLoader creates a new configuration loader
func NewLoader(logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &Loader{
		logger:  logger,
		homeDir: os.UserHomeDir,
		workDir: os.Getwd,
		getenv:  os.Getenv,
	}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/qtty/config.yaml)
// 3. Project config (qtty.yaml in current or parent directories)
// 4. Explicit file, when path is not empty
// 5. QTTY_* environment variables
func (l *Loader) Load(ctx context.Context, path string) (*Config, error) {
	config := DefaultConfig()

	if userConfigPath := l.userConfigPath(); userConfigPath != "" {
		if err := config.overlay(userConfigPath); err == nil {
			l.logger.Debug(ctx, "Loaded user config", "path", userConfigPath)
		} else if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn(ctx, "Failed to load user config", "path", userConfigPath, "error", err.Error())
		}
	}

	if projectConfigPath := l.findProjectConfig(); projectConfigPath != "" {
		if err := config.overlay(projectConfigPath); err == nil {
			l.logger.Debug(ctx, "Loaded project config", "path", projectConfigPath)
		} else {
			l.logger.Warn(ctx, "Failed to load project config", "path", projectConfigPath, "error", err.Error())
		}
	}

	if path != "" {
		if err := config.overlay(path); err != nil {
			return nil, err
		}
		l.logger.Debug(ctx, "Loaded config file", "path", path)
	}

	if err := config.applyOverrides(l.getenv); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// EnsureUserConfig creates the user config file with defaults if it doesn't exist
func (l *Loader) EnsureUserConfig(ctx context.Context) (string, error) {
	userConfigPath := l.userConfigPath()
	if userConfigPath == "" {
		return "", errors.New("cannot determine home directory")
	}

	if _, err := os.Stat(userConfigPath); err == nil {
		return userConfigPath, nil
	}

	if err := SaveConfig(DefaultConfig(), userConfigPath); err != nil {
		return "", err
	}

	l.logger.Info(ctx, "Created default user config", "path", userConfigPath)
	return userConfigPath, nil
}

// userConfigPath returns the path to the user config file
func (l *Loader) userConfigPath() string {
	home, err := l.homeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findProjectConfig searches for qtty.yaml in current and parent directories
func (l *Loader) findProjectConfig() string {
	cwd, err := l.workDir()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
