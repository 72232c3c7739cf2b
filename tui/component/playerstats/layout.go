package playerstats

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mcdash/playerstats/chart"
)

var blocks = []rune(" ▁▂▃▄▅▆▇█")

const (
	subsPerRow = 8
	markRune   = '●'
)

func renderPanel(title string, content string, width, height int) string {
	titleLine := panelTitleStyle.Render(title)
	body := titleLine + "\n" + content

	return panelStyle.
		Width(width - 2). // account for border
		Height(height).
		Render(body)
}

// renderChart draws spec as an area chart of the given outer size, with
// integer y labels on the left and time labels below.
func renderChart(spec chart.Spec, width, height int) string {
	if width < 12 {
		width = 12
	}
	if height < 3 {
		height = 3
	}

	if spec.Empty() {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, emptyStyle.Render(spec.EmptyText))
	}

	yMax := spec.YMax()
	labelW := len(fmt.Sprint(yMax))
	plotW := width - labelW - 2
	plotH := height - 1

	rows := plotArea(spec.Series.Data, plotW, plotH, yMax, spec.Series.ShowMark)
	yLabels := axisLabels(yMax, plotH)

	var b strings.Builder
	for i, row := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%*s ┤", labelW, yLabels[i])))
		b.WriteString(row)
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(" ", labelW+2))
	b.WriteString(labelStyle.Render(tickLine(spec, plotW)))

	return b.String()
}

// axisLabels returns one label per row, top first: yMax on the top row, 0
// on the bottom row and the midpoint when it is a distinct integer.
func axisLabels(yMax, rows int) []string {
	labels := make([]string, rows)
	labels[0] = fmt.Sprint(yMax)
	labels[rows-1] = "0"
	if rows >= 5 && yMax >= 2 {
		labels[rows/2] = fmt.Sprint(yMax / 2)
	}
	return labels
}

// plotArea renders values as rows of block glyphs scaled to max, top row
// first. Point markers replace the top glyph of each point's column.
func plotArea(values []int, width, rows, max int, marks bool) []string {
	if width <= 0 || rows <= 0 {
		return nil
	}
	if max <= 0 {
		max = 1
	}

	totalSubs := rows * subsPerRow
	cols := make([]int, width)
	for i := 0; i < width; i++ {
		bucket := (i * len(values)) / width
		if bucket >= len(values) {
			bucket = len(values) - 1
		}
		if bucket < 0 {
			continue
		}
		cols[i] = (values[bucket] * totalSubs) / max
	}

	grid := make([][]rune, rows)
	for row := 0; row < rows; row++ {
		threshold := (rows - 1 - row) * subsPerRow
		line := make([]rune, width)
		for col := 0; col < width; col++ {
			fill := cols[col] - threshold
			switch {
			case fill <= 0:
				line[col] = blocks[0]
			case fill >= subsPerRow:
				line[col] = blocks[subsPerRow]
			default:
				line[col] = blocks[fill]
			}
		}
		grid[row] = line
	}

	var marked map[int]bool
	if marks {
		marked = make(map[int]bool, len(values))
		for i := range values {
			col := pointColumn(i, len(values), width)
			level := cols[col]
			row := rows - 1
			if level > 0 {
				row = rows - 1 - (level-1)/subsPerRow
			}
			if row < 0 {
				row = 0
			}
			grid[row][col] = markRune
			marked[row*width+col] = true
		}
	}

	out := make([]string, rows)
	for row, line := range grid {
		var b strings.Builder
		for col, r := range line {
			if marked[row*width+col] {
				b.WriteString(markStyle.Render(string(r)))
				continue
			}
			b.WriteString(areaStyle.Render(string(r)))
		}
		out[row] = b.String()
	}
	return out
}

// pointColumn returns the first plot column showing point i of n.
func pointColumn(i, n, width int) int {
	if n <= 0 {
		return 0
	}
	col := (i*width + n - 1) / n
	if col >= width {
		col = width - 1
	}
	return col
}

// tickLine lays the chart tick labels out under the plot, skipping labels
// that would overlap the previous one.
func tickLine(spec chart.Spec, width int) string {
	line := []rune(strings.Repeat(" ", width))
	next := 0
	n := spec.Points()

	for _, tick := range spec.Ticks() {
		label := []rune(tick.Label)
		pos := pointColumn(tick.Index, n, width)
		if pos+len(label) > width {
			pos = width - len(label)
		}
		if pos < next || pos < 0 {
			continue
		}
		copy(line[pos:], label)
		next = pos + len(label) + 1
	}

	return string(line)
}
