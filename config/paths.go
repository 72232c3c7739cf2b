package config

import (
	"os"
	"path/filepath"
)

// AppName is used for the configuration directory name.
const AppName = "playerstats"

// getConfigDir returns the configuration directory for playerstats.
func getConfigDir() string {
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, AppName)
}

// EnsureDirectories creates all required directories if they don't exist.
func EnsureDirectories() error {
	paths := ResolvePaths()
	return os.MkdirAll(paths.ConfigDir, 0700)
}
