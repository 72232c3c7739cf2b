package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// TablePresenter renders output in table format.
type TablePresenter struct {
	w         io.Writer
	color     *Colorizer
	termWidth int
	verbose   bool
}

// NewTablePresenter creates a new table presenter.
func NewTablePresenter(opts PresenterOptions) *TablePresenter {
	termWidth := opts.TerminalWidth
	if termWidth == 0 {
		termWidth = GetTerminalWidth()
	}
	return &TablePresenter{
		w:         opts.Writer,
		color:     NewColorizer(opts.UseColors),
		termWidth: termWidth,
		verbose:   opts.Verbose,
	}
}

// RenderSeries renders a concurrency series with a sparkline summary.
func (p *TablePresenter) RenderSeries(series *SeriesView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s %s\n", p.color.Header("Concurrent players"), p.color.Preset(series.PresetLabel))
	tw.printf("%-10s %s → %s\n", "Window", FormatTime(series.From), FormatTime(series.To))
	tw.printf("%-10s %s\n", "Bucket", FormatBucket(series.BucketMinutes))
	tw.printf("%-10s %s\n", "Points", p.color.Number(FormatNumber(len(series.Points))))
	tw.println(HorizontalLine(p.termWidth))

	if len(series.Points) == 0 {
		tw.println(p.color.Dim(series.EmptyText))
		return tw.Err()
	}

	values := make([]int, len(series.Points))
	for i, pt := range series.Points {
		values[i] = pt.Players
	}
	tw.println(p.color.Cyan(Sparkline(values, p.termWidth)))
	tw.printf("%-10s %s\n", "Peak", p.color.Number(FormatNumber(series.Peak)))
	tw.println()

	if !p.verbose {
		last := series.Points[len(series.Points)-1]
		tw.printf("%-10s %s at %s\n", "Latest", p.color.Number(FormatNumber(last.Players)), last.Label)
		return tw.Err()
	}

	tw.printf("%-22s %-12s %s\n", p.color.Header("TIME"), p.color.Header("LABEL"), p.color.Header("PLAYERS"))
	for _, pt := range series.Points {
		tw.printf("%-22s %-12s %s\n", FormatTime(pt.Timestamp), pt.Label, PadLeft(FormatNumber(pt.Players), 7))
	}

	return tw.Err()
}

// RenderPresets renders the preset catalog.
func (p *TablePresenter) RenderPresets(presets []*PresetView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s\n", p.color.Header(fmt.Sprintf("Presets (%d)", len(presets))))
	tw.println(HorizontalLine(p.termWidth))
	tw.printf("  %-4s %-6s %-8s %-10s %s\n", "ID", "LABEL", "WINDOW", "BUCKET", "AXIS")

	for _, ps := range presets {
		marker := " "
		if ps.Default {
			marker = p.color.Success("*")
		}
		tw.printf("%s %-4s %-6s %-8s %-10s %s\n", marker, ps.ID, ps.Label, ps.Window,
			FormatBucket(ps.BucketMinutes), p.color.Dim(ps.AxisFormat))
	}

	return tw.Err()
}

// RenderStatus renders the connection status.
func (p *TablePresenter) RenderStatus(status *StatusView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s\n\n", p.color.Header("playerstats "+status.Version))

	tw.printf("%s\n", p.color.Header("Stats endpoint"))
	tw.printf("  %-14s %s\n", "URL", p.color.Path(status.ServerURL))
	if status.Reachable {
		tw.printf("  %-14s %s\n", "Status", p.color.StatusOK())
		tw.printf("  %-14s %s\n", "Latency", FormatDuration(status.Latency))
		tw.printf("  %-14s %s\n", "Samples", p.color.Number(FormatNumber(status.Samples)))
	} else {
		tw.printf("  %-14s %s\n", "Status", p.color.StatusFail())
		if status.Error != "" {
			tw.printf("  %-14s %s\n", "Error", p.color.Error(status.Error))
		}
	}
	tw.println()

	tw.printf("%s\n", p.color.Header("Config"))
	tw.printf("  %-14s %s\n", "Location", p.color.Path(status.ConfigLocation))
	tw.printf("  %-14s %s\n", "Language", status.Language)
	tw.printf("  %-14s %s\n", "Timezone", status.Timezone)

	return tw.Err()
}

// RenderConfig renders the configuration.
func (p *TablePresenter) RenderConfig(config *ConfigView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s\n", p.color.Header("Configuration"))
	tw.printf("Location: %s\n", p.color.Path(config.Location))
	tw.println(HorizontalLine(p.termWidth))
	tw.println()

	for _, kv := range flattenConfig(config.Values, "") {
		tw.printf("  %-30s %v\n", kv.key, kv.value)
	}

	return tw.Err()
}

// RenderError renders an error message.
func (p *TablePresenter) RenderError(err error) error {
	tw := &tableWriter{w: p.w}
	tw.printf("%s %s\n", p.color.Error("Error:"), err.Error())
	return tw.Err()
}

// RenderMessage renders a simple message.
func (p *TablePresenter) RenderMessage(message string) error {
	tw := &tableWriter{w: p.w}
	tw.println(message)
	return tw.Err()
}

type configEntry struct {
	key   string
	value interface{}
}

// flattenConfig returns nested config values as sorted dotted keys.
func flattenConfig(m map[string]interface{}, prefix string) []configEntry {
	var out []configEntry
	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]interface{}:
			out = append(out, flattenConfig(v, fullKey)...)
		default:
			out = append(out, configEntry{key: fullKey, value: value})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].key < out[j].key
	})
	return out
}

// Sparkline renders values as a single row of block glyphs at most width
// runes wide.
func Sparkline(values []int, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	blocks := []rune("▁▂▃▄▅▆▇█")
	if width > len(values) {
		width = len(values)
	}

	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	var out strings.Builder
	for i := 0; i < width; i++ {
		v := values[(i*len(values))/width]
		idx := 0
		if max > 0 {
			idx = (v * (len(blocks) - 1)) / max
		}
		out.WriteRune(blocks[idx])
	}
	return out.String()
}

// Ensure TablePresenter implements Presenter
var _ Presenter = (*TablePresenter)(nil)
