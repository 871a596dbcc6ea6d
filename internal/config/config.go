// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for onboardr.
type Config struct {
	DataDir       string `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`
	LogFile       string `mapstructure:"log_file" yaml:"log_file"`
	Theme         string `mapstructure:"theme" yaml:"theme"`
	DefaultIntent string `mapstructure:"default_intent" yaml:"default_intent"`
	SettingsFile  string `mapstructure:"settings_file" yaml:"settings_file"`
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("onboardr")

	v.SetDefault("data_dir", ".onboardr")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("theme", "dark")
	v.SetDefault("default_intent", "smart")
	v.SetDefault("settings_file", "")

	// ENV binding with ONBOARDR_ prefix
	v.SetEnvPrefix("ONBOARDR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better parsing
	for key, env := range map[string]string{
		"data_dir":       "ONBOARDR_DATA_DIR",
		"log_level":      "ONBOARDR_LOG_LEVEL",
		"log_file":       "ONBOARDR_LOG_FILE",
		"theme":          "ONBOARDR_THEME",
		"default_intent": "ONBOARDR_DEFAULT_INTENT",
		"settings_file":  "ONBOARDR_SETTINGS_FILE",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/onboardr/onboardr.yml or $XDG_CONFIG_HOME/onboardr/onboardr.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "onboardr", "onboardr.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "onboardr", "onboardr.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./onboardr.yml in the current working directory.
func ProjectPath() string {
	return "onboardr.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(ProjectPath(), data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
