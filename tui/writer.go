package tui

import (
	"fmt"
	"io"
)

// tableWriter is the line sink of the table presenter. A series or status
// block is printed as many small writes; the first failed write is kept and
// the rest of the block is skipped, so Render* reports one error.
type tableWriter struct {
	w   io.Writer
	err error
}

func (tw *tableWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func (tw *tableWriter) println(args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintln(tw.w, args...)
}

// Err returns the first write error, or nil.
func (tw *tableWriter) Err() error {
	return tw.err
}
