// Package config provides configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. PLAYERSTATS_SERVER_URL.
const EnvPrefix = "PLAYERSTATS"

// ColorMode represents the color output mode.
type ColorMode string

const (
	// ColorAuto automatically detects terminal support.
	ColorAuto ColorMode = "auto"
	// ColorAlways always uses colors.
	ColorAlways ColorMode = "always"
	// ColorNever never uses colors.
	ColorNever ColorMode = "never"
)

// TimezoneMode represents the timezone used for axis labels and tables.
type TimezoneMode string

const (
	// TimezoneLocal uses the local timezone.
	TimezoneLocal TimezoneMode = "local"
	// TimezoneUTC uses UTC.
	TimezoneUTC TimezoneMode = "utc"
)

// Config holds all configuration values.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Display   DisplayConfig   `mapstructure:"display"`
	Serve     ServeConfig     `mapstructure:"serve"`
}

// ServerConfig describes the upstream statistics service.
type ServerConfig struct {
	URL      string        `mapstructure:"url"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Breaker  BreakerConfig `mapstructure:"breaker"`
}

// BreakerConfig controls the circuit breaker around upstream requests.
type BreakerConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	MaxFailures uint32        `mapstructure:"max_failures"`
	OpenTimeout time.Duration `mapstructure:"open_timeout"`
}

// DashboardConfig holds chart behaviour settings.
type DashboardConfig struct {
	DefaultPreset   string        `mapstructure:"default_preset"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

// DisplayConfig holds display-related settings.
type DisplayConfig struct {
	Colors   ColorMode    `mapstructure:"colors"`
	Timezone TimezoneMode `mapstructure:"timezone"`
	Language string       `mapstructure:"language"`
}

// ServeConfig holds settings for the embedded web server.
type ServeConfig struct {
	Listen string `mapstructure:"listen"`
}

// Paths holds resolved filesystem paths.
type Paths struct {
	ConfigFile string
	ConfigDir  string
}

// Load loads configuration from the given path or default locations.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		paths := ResolvePaths()

		v.SetConfigName("config")
		v.AddConfigPath(paths.ConfigDir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a Config with all default values.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	_ = v.Unmarshal(&cfg)

	return &cfg
}

// ResolvePaths returns the resolved filesystem paths for the current platform.
func ResolvePaths() *Paths {
	configDir := getConfigDir()

	return &Paths{
		ConfigFile: filepath.Join(configDir, "config.yaml"),
		ConfigDir:  configDir,
	}
}

// ShouldUseColors returns true if colors should be used based on config and terminal.
func (c *Config) ShouldUseColors() bool {
	switch c.Display.Colors {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		fileInfo, err := os.Stdout.Stat()
		if err != nil {
			return false
		}
		return (fileInfo.Mode() & os.ModeCharDevice) != 0
	}
}

// Location returns the timezone charts and tables are rendered in.
func (c *Config) Location() *time.Location {
	if c.Display.Timezone == TimezoneUTC {
		return time.UTC
	}
	return time.Local
}
