package tui

import (
	"io"

	"github.com/goccy/go-json"
)

// JSONPresenter renders output as JSON.
type JSONPresenter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewJSONPresenter creates a new JSON presenter.
func NewJSONPresenter(opts PresenterOptions) *JSONPresenter {
	encoder := json.NewEncoder(opts.Writer)
	encoder.SetIndent("", "  ")
	return &JSONPresenter{
		w:       opts.Writer,
		encoder: encoder,
	}
}

// RenderSeries renders a concurrency series as JSON.
func (p *JSONPresenter) RenderSeries(series *SeriesView) error {
	return p.encoder.Encode(series)
}

// RenderPresets renders the preset catalog as JSON.
func (p *JSONPresenter) RenderPresets(presets []*PresetView) error {
	return p.encoder.Encode(presets)
}

// RenderStatus renders the connection status as JSON.
func (p *JSONPresenter) RenderStatus(status *StatusView) error {
	return p.encoder.Encode(status)
}

// RenderConfig renders the configuration as JSON.
func (p *JSONPresenter) RenderConfig(config *ConfigView) error {
	return p.encoder.Encode(config)
}

// RenderError renders an error message as JSON.
func (p *JSONPresenter) RenderError(err error) error {
	output := struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	}
	return p.encoder.Encode(output)
}

// RenderMessage renders a simple message as JSON.
func (p *JSONPresenter) RenderMessage(message string) error {
	output := struct {
		Message string `json:"message"`
	}{
		Message: message,
	}
	return p.encoder.Encode(output)
}

// Ensure JSONPresenter implements Presenter
var _ Presenter = (*JSONPresenter)(nil)
