package tui

import (
	"fmt"
	"io"
	"time"
)

const (
	clearLine       = "\033[2K"
	carriageReturn  = "\r"
	clearLineReturn = clearLine + carriageReturn
)

// ProgressWriter writes refresh status to a single terminal line.
// On anything other than a terminal it stays silent.
type ProgressWriter struct {
	w          io.Writer
	color      *Colorizer
	isTerminal bool
}

// NewProgressWriter creates a new ProgressWriter.
func NewProgressWriter(w io.Writer, useColors bool) *ProgressWriter {
	return &ProgressWriter{
		w:          w,
		color:      NewColorizer(useColors),
		isTerminal: IsWriterTerminal(w),
	}
}

// Update clears the line and writes new progress text.
func (p *ProgressWriter) Update(format string, args ...any) {
	if !p.isTerminal {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprint(p.w, clearLineReturn+p.color.Dim(msg))
}

// Waiting shows when the next refresh is due.
func (p *ProgressWriter) Waiting(next time.Time) {
	p.Update("next refresh at %s", next.Format("15:04:05"))
}

// Clear clears the progress line.
func (p *ProgressWriter) Clear() {
	if !p.isTerminal {
		return
	}
	fmt.Fprint(p.w, clearLineReturn)
}
