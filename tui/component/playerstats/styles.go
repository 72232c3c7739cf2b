package playerstats

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen  = lipgloss.Color("#6BCB77")
	colorAmber  = lipgloss.Color("#F0AD4E")
	colorViolet = lipgloss.Color("#9B59B6")
	colorTeal   = lipgloss.Color("#1ABC9C")
	colorWhite  = lipgloss.Color("#ECF0F1")
	colorDim    = lipgloss.Color("#7F8C8D")
	colorBg     = lipgloss.Color("#1E1E2E")

	titleStyle = lipgloss.NewStyle().
			Background(colorBg).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Background(colorBg).
			Foreground(colorDim).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorBg).
			Background(colorTeal).
			Bold(true).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true).
			Underline(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	areaStyle = lipgloss.NewStyle().
			Foreground(colorTeal)

	markStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	helpOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorViolet).
				Padding(1, 2).
				Foreground(colorWhite)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAmber).
			Bold(true).
			Width(14)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorWhite)
)
