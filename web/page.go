package web

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/mcdash/playerstats/chart"
	"github.com/mcdash/playerstats/core/axis"
	"github.com/mcdash/playerstats/core/preset"
	"github.com/mcdash/playerstats/i18n"
)

const (
	chartWidth  = "100%"
	chartHeight = "420px"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="{{.RefreshSeconds}}">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; background: #1E1E2E; color: #ECF0F1; margin: 2rem; }
nav a { color: #7F8C8D; padding: 0.25rem 0.6rem; text-decoration: none; border-radius: 4px; }
nav a.active { color: #1E1E2E; background: #1ABC9C; font-weight: bold; }
iframe { border: 0; width: 100%; height: 460px; margin-top: 1rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<nav role="tablist">
{{- range .Presets}}
<a role="tab" href="?preset={{.ID}}"{{if .Active}} class="active" aria-selected="true"{{end}}>{{.Label}}</a>
{{- end}}
</nav>
<iframe src="{{.ChartURL}}" title="{{.Title}}"></iframe>
</body>
</html>
`))

type presetLink struct {
	ID     string
	Label  string
	Active bool
}

type indexData struct {
	Lang           string
	Title          string
	RefreshSeconds int
	Presets        []presetLink
	ChartURL       string
}

func (s *Server) indexData(selected preset.Preset) indexData {
	links := make([]presetLink, 0, len(preset.All()))
	for _, p := range preset.All() {
		links = append(links, presetLink{ID: p.ID, Label: p.Label, Active: p.ID == selected.ID})
	}

	seconds := int(s.refresh.Seconds())
	if seconds < 1 {
		seconds = 1
	}

	return indexData{
		Lang:           s.translator.Language(),
		Title:          s.translator.T(i18n.KeyTitle),
		RefreshSeconds: seconds,
		Presets:        links,
		ChartURL:       "/chart?" + url.Values{"preset": {selected.ID}}.Encode(),
	}
}

func renderIndex(w io.Writer, data indexData) error {
	return indexTemplate.Execute(w, data)
}

// newLineChart maps a chart descriptor onto an echarts line chart.
func newLineChart(spec chart.Spec) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: spec.Title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Subtitle: spec.EmptyText,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: spec.Tooltip.Trigger,
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:        spec.XAxis.Scale,
			SplitNumber: spec.XAxis.TickNumber,
			AxisLabel: &opts.AxisLabel{
				Formatter: opts.FuncOpts(timeLabelFormatter(spec.XAxis.Formatter)),
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(spec.Grid.Vertical),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Min:         spec.YAxis.Min,
			MinInterval: float64(spec.YAxis.TickMinStep),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(spec.Grid.Horizontal),
			},
		}),
	)

	data := make([]opts.LineData, 0, spec.Points())
	for i, ts := range spec.XAxis.Data {
		data = append(data, opts.LineData{Value: []interface{}{ts.UnixMilli(), spec.Series.Data[i]}})
	}

	line.AddSeries(spec.Series.Label, data)
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol: opts.Bool(spec.Series.ShowMark),
		}),
		charts.WithAreaStyleOpts(opts.AreaStyle{}),
	)

	return line
}

func renderLineChart(w io.Writer, spec chart.Spec) error {
	return newLineChart(spec).Render(w)
}

// timeLabelFormatter returns a browser-side formatter printing ticks with
// the fields of the descriptor's axis format.
func timeLabelFormatter(f axis.Formatter) string {
	options := f.Format().IntlOptions()
	if tz := f.Location().String(); tz == "UTC" {
		options["timeZone"] = "UTC"
	}

	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]string, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, fmt.Sprintf("%s: %q", k, options[k]))
	}

	return fmt.Sprintf("function (value) { return new Intl.DateTimeFormat(undefined, { %s }).format(new Date(value)); }",
		strings.Join(fields, ", "))
}
