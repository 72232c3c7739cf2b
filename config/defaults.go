package config

import (
	"github.com/spf13/viper"
)

// DefaultServerURL is the stats API base used when nothing is configured.
const DefaultServerURL = "http://localhost:7867/api/"

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper) {
	// Upstream
	v.SetDefault("server.url", DefaultServerURL)
	v.SetDefault("server.username", "")
	v.SetDefault("server.password", "")
	v.SetDefault("server.timeout", "10s")
	v.SetDefault("server.breaker.enabled", true)
	v.SetDefault("server.breaker.max_failures", 5)
	v.SetDefault("server.breaker.open_timeout", "30s")

	// Dashboard
	v.SetDefault("dashboard.default_preset", "7d")
	v.SetDefault("dashboard.refresh_interval", "60s")

	// Display defaults
	v.SetDefault("display.colors", "auto")
	v.SetDefault("display.timezone", "local")
	v.SetDefault("display.language", "en")

	v.SetDefault("serve.listen", "127.0.0.1:8080")
}
