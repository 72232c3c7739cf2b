package cli

import (
	"time"

	"github.com/mcdash/playerstats/chart"
	"github.com/mcdash/playerstats/core/axis"
	"github.com/mcdash/playerstats/core/preset"
	"github.com/mcdash/playerstats/i18n"
	"github.com/mcdash/playerstats/loader"
	"github.com/mcdash/playerstats/tui"
)

// seriesView converts a load result into its presenter form. Labels use the
// same axis format the chart would pick for the preset.
func seriesView(res loader.Result, tr *i18n.Translator, loc *time.Location) *tui.SeriesView {
	series := res.Series()
	spec := chart.Build(chart.Input{
		Preset:     res.Preset,
		Series:     series,
		Translator: tr,
		Location:   loc,
	})

	view := &tui.SeriesView{
		PresetID:      res.Preset.ID,
		PresetLabel:   res.Preset.Label,
		From:          res.Window.From.In(loc),
		To:            res.Window.To.In(loc),
		BucketMinutes: res.Bucket,
		AxisFormat:    spec.XAxis.Format,
		LoadedAt:      res.LoadedAt.In(loc),
		Peak:          series.Max(),
		EmptyText:     spec.EmptyText,
		Points:        make([]tui.PointView, 0, series.Len()),
	}

	for i, ts := range series.X {
		view.Points = append(view.Points, tui.PointView{
			Timestamp: ts.In(loc),
			Label:     spec.XAxis.Formatter.Label(ts),
			Players:   series.Y[i],
		})
	}

	return view
}

// presetViews lists the catalog, marking the preset defaultID resolves to.
func presetViews(defaultID string) []*tui.PresetView {
	def := preset.Resolve(defaultID)

	all := preset.All()
	views := make([]*tui.PresetView, 0, len(all))
	for _, p := range all {
		views = append(views, &tui.PresetView{
			ID:            p.ID,
			Label:         p.Label,
			Window:        tui.FormatWindow(p.Window),
			BucketMinutes: p.BucketMinutes(),
			AxisFormat:    axis.Select(p.Window).String(),
			Default:       p.ID == def.ID,
		})
	}
	return views
}
