package playerstats

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mcdash/playerstats/core/preset"
	"github.com/mcdash/playerstats/i18n"
)

type headerModel struct {
	selected    preset.Preset
	translator  *i18n.Translator
	location    *time.Location
	lastRefresh time.Time
	points      int
}

func newHeaderModel(selected preset.Preset, translator *i18n.Translator, location *time.Location) headerModel {
	return headerModel{
		selected:   selected,
		translator: translator,
		location:   location,
	}
}

func (h headerModel) view(width int) string {
	title := h.translator.T(i18n.KeyTitle)

	tabs := make([]string, 0, len(preset.All()))
	for i, p := range preset.All() {
		label := fmt.Sprintf("%d %s", (i+1)%10, p.Label)
		if p.ID == h.selected.ID {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}

	info := fmt.Sprintf("%s %s │ %s %dm │ %s %d",
		h.translator.T(i18n.KeyWindow), h.selected.Label,
		h.translator.T(i18n.KeyBucket), h.selected.BucketMinutes(),
		h.translator.T(i18n.KeyPoints), h.points,
	)
	if !h.lastRefresh.IsZero() {
		info += fmt.Sprintf(" │ %s %s", h.translator.T(i18n.KeyRefreshed), h.lastRefresh.In(h.location).Format("15:04:05"))
	}

	top := titleStyle.Width(width).Render(fmt.Sprintf(" %s │ %s", title, info))
	bar := lipgloss.NewStyle().Width(width).Render(" " + strings.Join(tabs, " "))
	return lipgloss.JoinVertical(lipgloss.Left, top, bar)
}
