package tui

import (
	"time"
)

// SeriesView represents a loaded concurrency series for display.
type SeriesView struct {
	PresetID      string      `json:"preset"`
	PresetLabel   string      `json:"label"`
	From          time.Time   `json:"from"`
	To            time.Time   `json:"to"`
	BucketMinutes int         `json:"bucket_minutes"`
	AxisFormat    string      `json:"axis_format"`
	LoadedAt      time.Time   `json:"loaded_at"`
	Peak          int         `json:"peak"`
	Points        []PointView `json:"points"`
	EmptyText     string      `json:"empty_text,omitempty"`
}

// PointView represents one plotted point.
type PointView struct {
	Timestamp time.Time `json:"ts"`
	Label     string    `json:"label"`
	Players   int       `json:"players"`
}

// PresetView represents a preset for display.
type PresetView struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	Window        string `json:"window"`
	BucketMinutes int    `json:"bucket_minutes"`
	AxisFormat    string `json:"axis_format"`
	Default       bool   `json:"default"`
}

// StatusView represents the stats endpoint status.
type StatusView struct {
	Version        string        `json:"version"`
	ServerURL      string        `json:"server_url"`
	Reachable      bool          `json:"reachable"`
	Latency        time.Duration `json:"latency"`
	Samples        int           `json:"samples"`
	Error          string        `json:"error,omitempty"`
	ConfigLocation string        `json:"config_location"`
	Language       string        `json:"language"`
	Timezone       string        `json:"timezone"`
}

// ConfigView represents configuration for display.
type ConfigView struct {
	Location string                 `json:"location"`
	Values   map[string]interface{} `json:"values"`
}
