package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/mcdash/playerstats/core/preset"
	"github.com/mcdash/playerstats/i18n"
)

// minRefreshInterval keeps the dashboard from hammering the stats API.
const minRefreshInterval = time.Second

// validate checks the configuration for errors.
func validate(cfg *Config) error {
	if err := validateServerURL(cfg.Server.URL); err != nil {
		return err
	}

	if cfg.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive")
	}

	if cfg.Server.Breaker.Enabled {
		if cfg.Server.Breaker.MaxFailures == 0 {
			return fmt.Errorf("server.breaker.max_failures must be at least 1")
		}
		if cfg.Server.Breaker.OpenTimeout <= 0 {
			return fmt.Errorf("server.breaker.open_timeout must be positive")
		}
	}

	if !isValidPresetID(cfg.Dashboard.DefaultPreset) {
		return fmt.Errorf("invalid dashboard.default_preset: %s", cfg.Dashboard.DefaultPreset)
	}

	if cfg.Dashboard.RefreshInterval < minRefreshInterval {
		return fmt.Errorf("dashboard.refresh_interval must be at least %s", minRefreshInterval)
	}

	if !isValidColorMode(cfg.Display.Colors) {
		return fmt.Errorf("invalid display.colors: %s (must be auto, always, or never)", cfg.Display.Colors)
	}

	if !isValidTimezoneMode(cfg.Display.Timezone) {
		return fmt.Errorf("invalid display.timezone: %s (must be local or utc)", cfg.Display.Timezone)
	}

	if !slices.Contains(i18n.Languages(), cfg.Display.Language) {
		return fmt.Errorf("invalid display.language: %s (must be one of %s)",
			cfg.Display.Language, strings.Join(i18n.Languages(), ", "))
	}

	if strings.TrimSpace(cfg.Serve.Listen) == "" {
		return fmt.Errorf("serve.listen must not be empty")
	}

	return nil
}

func validateServerURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid server.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid server.url: %q (scheme must be http or https)", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid server.url: %q (missing host)", raw)
	}
	return nil
}

// isValidPresetID accepts catalog ids and the dashboard's default id, which
// resolves through the fallback preset.
func isValidPresetID(id string) bool {
	if id == preset.DefaultID {
		return true
	}
	_, ok := preset.Find(id)
	return ok
}

// isValidColorMode returns true if the given mode is valid.
func isValidColorMode(mode ColorMode) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// isValidTimezoneMode returns true if the given mode is valid.
func isValidTimezoneMode(mode TimezoneMode) bool {
	switch mode {
	case TimezoneLocal, TimezoneUTC:
		return true
	default:
		return false
	}
}
