// Package tui provides the presentation layer for one-shot terminal output.
package tui

import (
	"io"
	"os"
)

// Format represents the output format.
type Format string

const (
	// FormatTable is the default table format.
	FormatTable Format = "table"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatJSONL is newline-delimited JSON format.
	FormatJSONL Format = "jsonl"
	// FormatCSV is CSV format.
	FormatCSV Format = "csv"
)

// Formats lists the supported output formats.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatJSONL, FormatCSV}
}

// Presenter defines the interface for output rendering.
type Presenter interface {
	// RenderSeries renders one loaded concurrency series.
	RenderSeries(series *SeriesView) error

	// RenderPresets renders the preset catalog.
	RenderPresets(presets []*PresetView) error

	// RenderStatus renders the connection status.
	RenderStatus(status *StatusView) error

	// RenderConfig renders the configuration.
	RenderConfig(config *ConfigView) error

	// RenderError renders an error message.
	RenderError(err error) error

	// RenderMessage renders a simple message.
	RenderMessage(message string) error
}

// PresenterOptions configures presenter behavior.
type PresenterOptions struct {
	// Writer is the output destination.
	Writer io.Writer
	// UseColors indicates if colors should be used.
	UseColors bool
	// Verbose increases output verbosity.
	Verbose bool
	// TerminalWidth is the width of the terminal for table rendering.
	// If 0, the width will be auto-detected.
	TerminalWidth int
}

// NewPresenter creates a new presenter for the given format.
func NewPresenter(format Format, opts PresenterOptions) Presenter {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch format {
	case FormatJSON:
		return NewJSONPresenter(opts)
	case FormatJSONL:
		return NewJSONLPresenter(opts)
	case FormatCSV:
		return NewCSVPresenter(opts)
	default:
		return NewTablePresenter(opts)
	}
}
