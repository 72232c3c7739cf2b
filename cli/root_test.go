package cli

import (
	"testing"
	"time"

	"github.com/mcdash/playerstats/core/concurrency"
	"github.com/mcdash/playerstats/core/preset"
	"github.com/mcdash/playerstats/i18n"
	"github.com/mcdash/playerstats/loader"
	"github.com/mcdash/playerstats/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePresetFlag(t *testing.T) {
	p, err := resolvePresetFlag("7d")
	require.NoError(t, err)
	assert.Equal(t, "1w", p.ID)

	p, err = resolvePresetFlag("2w")
	require.NoError(t, err)
	assert.Equal(t, "2w", p.ID)

	_, err = resolvePresetFlag("nope")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidPreset, err.(ExitCoder).ExitCode())
}

func TestGetFormat(t *testing.T) {
	assert.Equal(t, tui.FormatJSON, getFormat("json"))
	assert.Equal(t, tui.FormatJSONL, getFormat("jsonl"))
	assert.Equal(t, tui.FormatCSV, getFormat("csv"))
	assert.Equal(t, tui.FormatTable, getFormat("table"))
	assert.Equal(t, tui.FormatTable, getFormat("yaml"))
}

func TestMaskSecrets(t *testing.T) {
	values := map[string]interface{}{
		"server": map[string]interface{}{"password": "hunter2", "username": "ops"},
	}
	maskSecrets(values)

	server := values["server"].(map[string]interface{})
	assert.Equal(t, maskedSecret, server["password"])
	assert.Equal(t, "ops", server["username"])

	empty := map[string]interface{}{"server": map[string]interface{}{"password": ""}}
	maskSecrets(empty)
	assert.Equal(t, "", empty["server"].(map[string]interface{})["password"])
}

func TestSeriesView(t *testing.T) {
	p, ok := preset.Find("1d")
	require.True(t, ok)

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	res := loader.Result{
		Preset:   p,
		Window:   preset.Window{From: base, To: base.Add(24 * time.Hour)},
		Bucket:   6,
		LoadedAt: base.Add(24 * time.Hour),
		Samples: []concurrency.Sample{
			{Timestamp: concurrency.NumericTimestamp(float64(base.Unix())), Players: 4},
			{Timestamp: concurrency.StringTimestamp("not-a-date"), Players: 9},
			{Timestamp: concurrency.NumericTimestamp(float64(base.Add(time.Hour).Unix())), Players: 7},
		},
	}

	view := seriesView(res, i18n.MustNew("en"), time.UTC)

	assert.Equal(t, "1d", view.PresetID)
	assert.Equal(t, 6, view.BucketMinutes)
	assert.Equal(t, "hour:minute", view.AxisFormat)
	assert.Equal(t, 7, view.Peak)
	assert.Empty(t, view.EmptyText)
	require.Len(t, view.Points, 2)
	assert.Equal(t, "00:00", view.Points[0].Label)
	assert.Equal(t, "01:00", view.Points[1].Label)
	assert.Equal(t, 7, view.Points[1].Players)
}

func TestPresetViews(t *testing.T) {
	views := presetViews("7d")
	require.Len(t, views, len(preset.All()))

	var defaults []string
	for _, v := range views {
		if v.Default {
			defaults = append(defaults, v.ID)
		}
	}
	assert.Equal(t, []string{"1w"}, defaults)
	assert.Equal(t, "7d", views[3].Window)
	assert.Equal(t, "weekday+hour", views[3].AxisFormat)
}
