package playerstats

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mcdash/playerstats/chart"
	"github.com/mcdash/playerstats/core/concurrency"
	"github.com/mcdash/playerstats/core/preset"
)

type Model struct {
	opts   Options
	width  int
	height int

	header headerModel
	footer footerModel
	help   helpModel

	selected preset.Preset
	series   concurrency.Series
	loading  bool
	ready    bool

	// seq identifies the latest load; older results are discarded.
	seq uint64
	// gen identifies the live refresh timer chain.
	gen uint64
}

func New(opts Options) Model {
	selected := preset.Resolve(opts.PresetID)
	return Model{
		opts:     opts,
		header:   newHeaderModel(selected, opts.Translator, opts.location()),
		footer:   newFooterModel(),
		help:     newHelpModel(),
		selected: selected,
		loading:  true,
		seq:      1,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadSamples(m.opts.context(), m.opts.Loader, m.selected, m.seq),
		scheduleRefresh(m.opts.refreshInterval(), m.gen),
	)
}

// Selected returns the active preset.
func (m Model) Selected() preset.Preset {
	return m.selected
}

// Series returns the plotted series.
func (m Model) Series() concurrency.Series {
	return m.series
}

// Loading reports whether the latest load is still pending.
func (m Model) Loading() bool {
	return m.loading
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case samplesLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.series = msg.result.Series()
		m.loading = false
		m.header.lastRefresh = msg.result.LoadedAt
		m.header.points = m.series.Len()
		return m, nil

	case refreshTickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		cmd := tea.Batch(
			m.reload(),
			scheduleRefresh(m.opts.refreshInterval(), m.gen),
		)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return *m, tea.Quit

	case "?":
		m.help.toggle()
		return *m, nil

	case "r":
		cmd := m.reload()
		return *m, cmd

	case "left", "h", "shift+tab":
		return m.selectPreset(preset.At(preset.Index(m.selected.ID) - 1))

	case "right", "l", "tab":
		return m.selectPreset(preset.At(preset.Index(m.selected.ID) + 1))

	case "1", "2", "3", "4", "5", "6", "7", "8", "9", "0":
		n, _ := strconv.Atoi(key)
		idx := n - 1
		if n == 0 {
			idx = 9
		}
		if idx >= len(preset.All()) {
			return *m, nil
		}
		return m.selectPreset(preset.At(idx))
	}

	return *m, nil
}

// selectPreset switches the chart to p, starting a new load and a new
// refresh timer chain. Selecting the active preset does nothing.
func (m *Model) selectPreset(p preset.Preset) (tea.Model, tea.Cmd) {
	if p.ID == m.selected.ID {
		return *m, nil
	}

	m.selected = p
	m.header.selected = p
	m.gen++

	cmd := tea.Batch(
		m.reload(),
		scheduleRefresh(m.opts.refreshInterval(), m.gen),
	)
	return *m, cmd
}

func (m *Model) reload() tea.Cmd {
	m.seq++
	m.loading = true
	return loadSamples(m.opts.context(), m.opts.Loader, m.selected, m.seq)
}

func (m Model) chartSpec() chart.Spec {
	return chart.Build(chart.Input{
		Preset:     m.selected,
		Series:     m.series,
		Loading:    m.loading,
		Translator: m.opts.Translator,
		Location:   m.opts.location(),
	})
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := m.header.view(m.width)
	footer := m.footer.view(m.width)
	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 4 {
		contentHeight = 4
	}

	if m.help.visible {
		helpOverlay := m.help.view(m.width, contentHeight)
		return lipgloss.JoinVertical(lipgloss.Left, header, helpOverlay, footer)
	}

	spec := m.chartSpec()
	panel := renderPanel(spec.Series.Label, renderChart(spec, m.width-6, contentHeight-3), m.width, contentHeight-2)
	content := lipgloss.NewStyle().Width(m.width).Height(contentHeight).MaxHeight(contentHeight).Render(panel)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}
