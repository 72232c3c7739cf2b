package tui

import (
	"io"

	"github.com/goccy/go-json"
)

// JSONLPresenter renders output as newline-delimited JSON.
type JSONLPresenter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewJSONLPresenter creates a new JSONL presenter.
func NewJSONLPresenter(opts PresenterOptions) *JSONLPresenter {
	encoder := json.NewEncoder(opts.Writer)
	// No indentation for JSONL
	return &JSONLPresenter{
		w:       opts.Writer,
		encoder: encoder,
	}
}

// RenderSeries renders one line per point, each tagged with its preset.
func (p *JSONLPresenter) RenderSeries(series *SeriesView) error {
	type pointLine struct {
		Preset string `json:"preset"`
		PointView
	}

	for _, pt := range series.Points {
		if err := p.encoder.Encode(pointLine{Preset: series.PresetID, PointView: pt}); err != nil {
			return err
		}
	}
	return nil
}

// RenderPresets renders the preset catalog as JSONL (one per line).
func (p *JSONLPresenter) RenderPresets(presets []*PresetView) error {
	for _, ps := range presets {
		if err := p.encoder.Encode(ps); err != nil {
			return err
		}
	}
	return nil
}

// RenderStatus renders the connection status as JSONL.
func (p *JSONLPresenter) RenderStatus(status *StatusView) error {
	return p.encoder.Encode(status)
}

// RenderConfig renders the configuration as JSONL.
func (p *JSONLPresenter) RenderConfig(config *ConfigView) error {
	return p.encoder.Encode(config)
}

// RenderError renders an error message as JSONL.
func (p *JSONLPresenter) RenderError(err error) error {
	output := struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	}
	return p.encoder.Encode(output)
}

// RenderMessage renders a simple message as JSONL.
func (p *JSONLPresenter) RenderMessage(message string) error {
	output := struct {
		Message string `json:"message"`
	}{
		Message: message,
	}
	return p.encoder.Encode(output)
}

// Ensure JSONLPresenter implements Presenter
var _ Presenter = (*JSONLPresenter)(nil)
