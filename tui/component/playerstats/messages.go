package playerstats

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mcdash/playerstats/core/preset"
	"github.com/mcdash/playerstats/loader"
)

// samplesLoadedMsg carries the result of the load with sequence number seq.
type samplesLoadedMsg struct {
	seq    uint64
	result loader.Result
}

// refreshTickMsg fires the refresh of timer chain gen.
type refreshTickMsg struct {
	gen uint64
}

func loadSamples(ctx context.Context, l Loader, p preset.Preset, seq uint64) tea.Cmd {
	return func() tea.Msg {
		return samplesLoadedMsg{seq: seq, result: l.Load(ctx, p)}
	}
}

func scheduleRefresh(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return refreshTickMsg{gen: gen}
	})
}
