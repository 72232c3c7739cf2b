package tui

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// CSVPresenter renders output as CSV.
type CSVPresenter struct {
	w      io.Writer
	writer *csv.Writer
}

// NewCSVPresenter creates a new CSV presenter.
func NewCSVPresenter(opts PresenterOptions) *CSVPresenter {
	return &CSVPresenter{
		w:      opts.Writer,
		writer: csv.NewWriter(opts.Writer),
	}
}

// RenderSeries renders a concurrency series as CSV, one row per point.
func (p *CSVPresenter) RenderSeries(series *SeriesView) error {
	p.writer.Write([]string{"preset", "timestamp", "epoch_ms", "players"})

	for _, pt := range series.Points {
		p.writer.Write([]string{
			series.PresetID,
			pt.Timestamp.UTC().Format(time.RFC3339),
			strconv.FormatInt(pt.Timestamp.UnixMilli(), 10),
			strconv.Itoa(pt.Players),
		})
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderPresets renders the preset catalog as CSV.
func (p *CSVPresenter) RenderPresets(presets []*PresetView) error {
	p.writer.Write([]string{"id", "label", "window", "bucket_minutes", "axis_format", "default"})

	for _, ps := range presets {
		p.writer.Write([]string{
			ps.ID,
			ps.Label,
			ps.Window,
			strconv.Itoa(ps.BucketMinutes),
			ps.AxisFormat,
			strconv.FormatBool(ps.Default),
		})
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderStatus renders the connection status as CSV.
func (p *CSVPresenter) RenderStatus(status *StatusView) error {
	p.writer.Write([]string{"type", "name", "value"})
	p.writer.Write([]string{"version", "playerstats", status.Version})
	p.writer.Write([]string{"server", "url", status.ServerURL})
	p.writer.Write([]string{"server", "reachable", strconv.FormatBool(status.Reachable)})
	p.writer.Write([]string{"server", "latency_ms", strconv.FormatInt(status.Latency.Milliseconds(), 10)})
	p.writer.Write([]string{"server", "samples", strconv.Itoa(status.Samples)})
	if status.Error != "" {
		p.writer.Write([]string{"server", "error", status.Error})
	}
	p.writer.Write([]string{"config", "location", status.ConfigLocation})

	p.writer.Flush()
	return p.writer.Error()
}

// RenderConfig renders the configuration as CSV.
func (p *CSVPresenter) RenderConfig(config *ConfigView) error {
	p.writer.Write([]string{"key", "value"})
	for _, kv := range flattenConfig(config.Values, "") {
		p.writer.Write([]string{kv.key, fmt.Sprintf("%v", kv.value)})
	}
	p.writer.Flush()
	return p.writer.Error()
}

// RenderError renders an error message as CSV.
func (p *CSVPresenter) RenderError(err error) error {
	p.writer.Write([]string{"error"})
	p.writer.Write([]string{err.Error()})
	p.writer.Flush()
	return p.writer.Error()
}

// RenderMessage renders a simple message as CSV.
func (p *CSVPresenter) RenderMessage(message string) error {
	p.writer.Write([]string{"message"})
	p.writer.Write([]string{message})
	p.writer.Flush()
	return p.writer.Error()
}

// Ensure CSVPresenter implements Presenter
var _ Presenter = (*CSVPresenter)(nil)
