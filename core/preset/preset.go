// Package preset defines the selectable time windows of the player
// concurrency chart and derives request windows and bucket sizes from them.
package preset

import (
	"math"
	"time"
)

const day = 24 * time.Hour

const (
	// DefaultID is the preset the dashboard starts with. It is not part of
	// the catalog, so resolving it always yields FallbackID.
	DefaultID = "7d"

	// FallbackID is used whenever a requested preset id is unknown.
	FallbackID = "1w"

	// TargetPoints bounds the number of buckets requested for any window.
	TargetPoints = 240
)

// Preset is a named, fixed time window offered to the user.
type Preset struct {
	ID     string        `json:"id"`
	Label  string        `json:"label"`
	Window time.Duration `json:"window"`
}

// Window is the time range requested from the stats endpoint.
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

var catalog = []Preset{
	{ID: "6h", Label: "6H", Window: 6 * time.Hour},
	{ID: "1d", Label: "1D", Window: day},
	{ID: "3d", Label: "3D", Window: 3 * day},
	{ID: "1w", Label: "1W", Window: 7 * day},
	{ID: "2w", Label: "2W", Window: 14 * day},
	{ID: "1m", Label: "1M", Window: 30 * day},
	{ID: "2m", Label: "2M", Window: 60 * day},
	{ID: "3m", Label: "3M", Window: 90 * day},
	{ID: "6m", Label: "6M", Window: 180 * day},
	{ID: "1y", Label: "1Y", Window: 365 * day},
}

// All returns the catalog in display order.
func All() []Preset {
	out := make([]Preset, len(catalog))
	copy(out, catalog)
	return out
}

// Find looks up a preset by id.
func Find(id string) (Preset, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// Resolve returns the preset with the given id, or the fallback preset when
// the id is unknown.
func Resolve(id string) Preset {
	if p, ok := Find(id); ok {
		return p
	}
	p, _ := Find(FallbackID)
	return p
}

// Index returns the catalog position of the preset with the given id, or -1.
func Index(id string) int {
	for i, p := range catalog {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// At returns the preset at position i, wrapping around the catalog.
func At(i int) Preset {
	n := len(catalog)
	return catalog[((i%n)+n)%n]
}

// Range returns the request window ending at now.
func (p Preset) Range(now time.Time) Window {
	return Window{From: now.Add(-p.Window), To: now}
}

// BucketMinutes returns the aggregation granularity requested for the preset.
func (p Preset) BucketMinutes() int {
	return BucketMinutes(p.Window)
}

// WindowMillis returns the window length in milliseconds.
func (p Preset) WindowMillis() int64 {
	return p.Window.Milliseconds()
}

// BucketMinutes sizes buckets so that a window of length w yields about
// TargetPoints points, never going below one minute.
func BucketMinutes(w time.Duration) int {
	perPoint := float64(TargetPoints) * float64(time.Minute.Milliseconds())
	minutes := int(math.Round(float64(w.Milliseconds()) / perPoint))
	if minutes < 1 {
		return 1
	}
	return minutes
}
