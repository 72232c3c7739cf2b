package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Manager provides a high-level API for configuration management.
// It encapsulates viper and handles defaults, file persistence, and validation.
type Manager struct {
	v          *viper.Viper
	configPath string
}

// NewManager creates a new configuration manager.
// It initializes with defaults and reads the config file if it exists.
func NewManager(configPath string) (*Manager, error) {
	v := newViper(configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	return &Manager{
		v:          v,
		configPath: configPath,
	}, nil
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	v.SetConfigFile(configPath)
	return v
}

// Get returns the value for a given key.
// Returns nil if the key does not exist.
func (m *Manager) Get(key string) interface{} {
	return m.v.Get(key)
}

// Set validates a configuration value and persists it to the config file.
// It ensures the config directory exists and writes a complete config file.
// An invalid value leaves both the file and the in-memory state untouched.
func (m *Manager) Set(key string, value interface{}) error {
	candidate := newViper(m.configPath)
	if err := candidate.MergeConfigMap(m.v.AllSettings()); err != nil {
		return fmt.Errorf("failed to stage config: %w", err)
	}
	candidate.Set(key, value)

	if _, err := decode(candidate); err != nil {
		return err
	}

	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(candidate.AllSettings())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	m.v = candidate
	return nil
}

// Reset removes the config file, effectively resetting to defaults.
func (m *Manager) Reset() error {
	if err := os.Remove(m.configPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config: %w", err)
	}

	m.v = newViper(m.configPath)
	return nil
}

// Config decodes and validates the managed settings.
func (m *Manager) Config() (*Config, error) {
	return decode(m.v)
}

// AllSettings returns all configuration values as a map.
// This includes defaults merged with any file-based overrides.
func (m *Manager) AllSettings() map[string]interface{} {
	return m.v.AllSettings()
}

// ConfigPath returns the path to the configuration file.
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// HasKey returns true if the given key exists in the configuration.
func (m *Manager) HasKey(key string) bool {
	return m.v.IsSet(key)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseValue parses a string value into an appropriate Go type.
// Booleans become bool; everything else stays a string and is coerced
// when the config is decoded.
func ParseValue(value string) interface{} {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true":
		return true
	case "false":
		return false
	}
	return value
}
