// Package chart builds the framework-neutral descriptor of the concurrent
// players chart. Terminal and web renderers both draw from a Spec.
package chart

import (
	"time"

	"github.com/mcdash/playerstats/core/axis"
	"github.com/mcdash/playerstats/core/concurrency"
	"github.com/mcdash/playerstats/core/preset"
	"github.com/mcdash/playerstats/i18n"
)

const (
	// MaxMarkedPoints is the largest series that still shows point markers.
	MaxMarkedPoints = 120

	// TickNumber caps the number of x-axis ticks.
	TickNumber = 8

	// ScaleTime is the x-axis scale kind.
	ScaleTime = "time"

	// TriggerAxis shows one tooltip for all values at an x position.
	TriggerAxis = "axis"
)

// Input is everything a chart is derived from.
type Input struct {
	Preset     preset.Preset
	Series     concurrency.Series
	Loading    bool
	Translator *i18n.Translator
	Location   *time.Location
}

// Spec describes the chart to draw.
type Spec struct {
	Title     string      `json:"title"`
	PresetID  string      `json:"preset"`
	Series    SeriesSpec  `json:"series"`
	XAxis     XAxisSpec   `json:"xAxis"`
	YAxis     YAxisSpec   `json:"yAxis"`
	Tooltip   TooltipSpec `json:"tooltip"`
	Grid      GridSpec    `json:"grid"`
	Loading   bool        `json:"loading"`
	EmptyText string      `json:"emptyText,omitempty"`
}

// SeriesSpec is the single plotted series.
type SeriesSpec struct {
	Label    string `json:"label"`
	Data     []int  `json:"data"`
	Area     bool   `json:"area"`
	ShowMark bool   `json:"showMark"`
}

// XAxisSpec is the time axis.
type XAxisSpec struct {
	Data       []time.Time    `json:"data"`
	Scale      string         `json:"scaleType"`
	TickNumber int            `json:"tickNumber"`
	Format     string         `json:"format"`
	Window     time.Duration  `json:"-"`
	Formatter  axis.Formatter `json:"-"`
}

// YAxisSpec is the value axis.
type YAxisSpec struct {
	Min         int `json:"min"`
	TickMinStep int `json:"tickMinStep"`
}

// TooltipSpec configures tooltips.
type TooltipSpec struct {
	Trigger string `json:"trigger"`
}

// GridSpec configures grid lines.
type GridSpec struct {
	Vertical   bool `json:"vertical"`
	Horizontal bool `json:"horizontal"`
}

// Build derives the chart descriptor.
func Build(in Input) Spec {
	formatter := axis.ForWindow(in.Preset.Window, in.Location)
	n := in.Series.Len()

	spec := Spec{
		Title:    in.Translator.T(i18n.KeyTitle),
		PresetID: in.Preset.ID,
		Series: SeriesSpec{
			Label:    in.Translator.T(i18n.KeyConcurrentPlayers),
			Data:     in.Series.Y,
			Area:     true,
			ShowMark: n <= MaxMarkedPoints,
		},
		XAxis: XAxisSpec{
			Data:       in.Series.X,
			Scale:      ScaleTime,
			TickNumber: TickNumber,
			Format:     formatter.Format().String(),
			Window:     in.Preset.Window,
			Formatter:  formatter,
		},
		YAxis:   YAxisSpec{Min: 0, TickMinStep: 1},
		Tooltip: TooltipSpec{Trigger: TriggerAxis},
		Grid:    GridSpec{Vertical: true, Horizontal: true},
		Loading: in.Loading,
	}

	if n == 0 {
		if in.Loading {
			spec.EmptyText = in.Translator.T(i18n.KeyLoading)
		} else {
			spec.EmptyText = in.Translator.T(i18n.KeyEmpty)
		}
	}

	return spec
}

// Points returns the number of plotted points.
func (s Spec) Points() int {
	return len(s.XAxis.Data)
}

// Empty reports whether there is nothing to plot.
func (s Spec) Empty() bool {
	return s.Points() == 0
}

// Tick is one labelled x-axis position.
type Tick struct {
	Index int
	Time  time.Time
	Label string
}

// Ticks picks at most TickNumber evenly spaced points to label, always
// including the first and last point.
func (s Spec) Ticks() []Tick {
	n := s.Points()
	if n == 0 {
		return nil
	}

	count := s.XAxis.TickNumber
	if count <= 0 || count > n {
		count = n
	}

	ticks := make([]Tick, 0, count)
	last := -1
	for i := 0; i < count; i++ {
		idx := 0
		if count > 1 {
			idx = i * (n - 1) / (count - 1)
		}
		if idx == last {
			continue
		}
		last = idx
		ts := s.XAxis.Data[idx]
		ticks = append(ticks, Tick{Index: idx, Time: ts, Label: s.XAxis.Formatter.Label(ts)})
	}
	return ticks
}

// YMax returns the top of the value axis: the largest value, at least one so
// integer ticks exist.
func (s Spec) YMax() int {
	max := s.YAxis.Min + s.YAxis.TickMinStep
	for _, v := range s.Series.Data {
		if v > max {
			max = v
		}
	}
	return max
}
