// Package config handles configuration loading for taskdeck.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for taskdeck.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Summary SummaryConfig `mapstructure:"summary"`
	UI      UIConfig      `mapstructure:"ui"`
}

// StorageConfig holds persistence settings.
type StorageConfig struct {
	// Path is the tasks file, resolved relative to the working directory.
	Path string `mapstructure:"path"`
	// ArchivePath is the sqlite database holding archived tasks.
	ArchivePath string `mapstructure:"archive_path"`
}

// SummaryConfig holds summary view settings.
type SummaryConfig struct {
	// DueSoonDays is the due-soon horizon in days.
	DueSoonDays int `mapstructure:"due_soon_days"`
}

// UIConfig holds output settings.
type UIConfig struct {
	Color bool `mapstructure:"color"`
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (TASKDECK_*)
// 2. Project config (.taskdeck.yaml in current directory or parent)
// 3. User config (~/.config/taskdeck/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("TASKDECK")
	v.AutomaticEnv()
	v.BindEnv("storage.path", "TASKDECK_TASKS_FILE")
	v.BindEnv("storage.archive_path", "TASKDECK_ARCHIVE_FILE")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:        "tasks.json",
			ArchivePath: DefaultArchivePath(),
		},
		Summary: SummaryConfig{
			DueSoonDays: 3,
		},
		UI: UIConfig{
			Color: true,
		},
	}
}

// DefaultArchivePath returns the XDG data path for the archive database.
func DefaultArchivePath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".", ".taskdeck", "archive.db")
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "taskdeck", "archive.db")
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.path", "tasks.json")
	v.SetDefault("storage.archive_path", DefaultArchivePath())
	v.SetDefault("summary.due_soon_days", 3)
	v.SetDefault("ui.color", true)
}

// getUserConfigDir returns the XDG config directory for taskdeck.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "taskdeck")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "taskdeck")
	}
	return filepath.Join(home, ".config", "taskdeck")
}

// findProjectConfig searches for .taskdeck.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".taskdeck.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}
