package chart

import (
	"testing"
	"time"

	"github.com/mcdash/playerstats/core/axis"
	"github.com/mcdash/playerstats/core/concurrency"
	"github.com/mcdash/playerstats/core/preset"
	"github.com/mcdash/playerstats/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hourlySeries(start time.Time, n int) concurrency.Series {
	samples := make([]concurrency.Sample, 0, n)
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		samples = append(samples, concurrency.Sample{
			Timestamp: concurrency.NumericTimestamp(float64(ts.UnixMilli())),
			Players:   concurrency.PlayerCount(i % 5),
		})
	}
	return concurrency.Normalize(samples)
}

func TestBuild_DayPresetEndToEnd(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	spec := Build(Input{
		Preset:     preset.Resolve("1d"),
		Series:     hourlySeries(start, 24),
		Translator: i18n.MustNew("en"),
		Location:   time.UTC,
	})

	assert.Equal(t, 24, spec.Points())
	assert.Len(t, spec.Series.Data, 24)
	assert.True(t, spec.Series.ShowMark)
	assert.True(t, spec.Series.Area)
	assert.Equal(t, "Concurrent players", spec.Series.Label)
	assert.Equal(t, axis.HourMinute, spec.XAxis.Formatter.Format())
	assert.Equal(t, ScaleTime, spec.XAxis.Scale)
	assert.Equal(t, TickNumber, spec.XAxis.TickNumber)
	assert.Equal(t, 0, spec.YAxis.Min)
	assert.Equal(t, 1, spec.YAxis.TickMinStep)
	assert.Equal(t, TriggerAxis, spec.Tooltip.Trigger)
	assert.True(t, spec.Grid.Vertical)
	assert.True(t, spec.Grid.Horizontal)
	assert.Empty(t, spec.EmptyText)
	assert.False(t, spec.Empty())
}

func TestBuild_Markers(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := i18n.MustNew("en")

	at := Build(Input{Preset: preset.Resolve("1w"), Series: hourlySeries(start, MaxMarkedPoints), Translator: tr})
	assert.True(t, at.Series.ShowMark)

	above := Build(Input{Preset: preset.Resolve("1w"), Series: hourlySeries(start, MaxMarkedPoints+1), Translator: tr})
	assert.False(t, above.Series.ShowMark)
}

func TestBuild_EmptyText(t *testing.T) {
	tr := i18n.MustNew("en")

	loading := Build(Input{Preset: preset.Resolve("1d"), Loading: true, Translator: tr})
	assert.True(t, loading.Loading)
	assert.Equal(t, "Loading…", loading.EmptyText)

	empty := Build(Input{Preset: preset.Resolve("1d"), Translator: tr})
	assert.False(t, empty.Loading)
	assert.Equal(t, "No data for the selected period.", empty.EmptyText)
	assert.True(t, empty.Empty())
	assert.Nil(t, empty.Ticks())
}

func TestBuild_Translated(t *testing.T) {
	spec := Build(Input{Preset: preset.Resolve("1y"), Translator: i18n.MustNew("fr")})

	assert.Equal(t, "Joueurs connectés", spec.Series.Label)
	assert.Equal(t, "Statistiques des joueurs", spec.Title)
	assert.Equal(t, axis.MonthYear.String(), spec.XAxis.Format)
}

func TestTicks(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tr := i18n.MustNew("en")

	tests := []struct {
		name   string
		points int
		want   int
	}{
		{"single point", 1, 1},
		{"fewer points than ticks", 5, 5},
		{"exactly tick number", 8, 8},
		{"many points", 24, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Build(Input{
				Preset:     preset.Resolve("1d"),
				Series:     hourlySeries(start, tt.points),
				Translator: tr,
				Location:   time.UTC,
			})

			ticks := spec.Ticks()
			require.Len(t, ticks, tt.want)
			assert.Equal(t, 0, ticks[0].Index)
			assert.Equal(t, tt.points-1, ticks[len(ticks)-1].Index)
			assert.Equal(t, "00:00", ticks[0].Label)
		})
	}
}

func TestYMax(t *testing.T) {
	tr := i18n.MustNew("en")

	empty := Build(Input{Preset: preset.Resolve("1d"), Translator: tr})
	assert.Equal(t, 1, empty.YMax())

	spec := Build(Input{
		Preset:     preset.Resolve("1d"),
		Series:     concurrency.Series{X: []time.Time{time.Unix(0, 0)}, Y: []int{17}},
		Translator: tr,
	})
	assert.Equal(t, 17, spec.YMax())
}
