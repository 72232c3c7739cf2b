package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type spinnerWriter struct {
	writer   io.Writer
	interval time.Duration
	err      error
}

func (sw *spinnerWriter) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}

	_, sw.err = fmt.Fprintf(sw.writer, format, args...)
}

type SpinnerOption func(*spinnerWriter)

func WithWriter(w io.Writer) SpinnerOption {
	return func(c *spinnerWriter) {
		c.writer = w
	}
}

func WithInterval(d time.Duration) SpinnerOption {
	return func(c *spinnerWriter) {
		c.interval = d
	}
}

// RunWithSpinner runs fn while animating message on a terminal. The spinner
// stops when fn returns or ctx is done, whichever comes first; fn receives
// ctx and is expected to honour its cancellation.
func RunWithSpinner[T any](ctx context.Context, message string, fn func(context.Context) (T, error), opts ...SpinnerOption) (T, error) {
	writer := spinnerWriter{
		writer:   os.Stderr,
		interval: 100 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(&writer)
	}

	if !IsWriterTerminal(writer.writer) {
		return fn(ctx)
	}

	spinCtx, stop := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		ticker := time.NewTicker(writer.interval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			frame := spinnerFrames[i%len(spinnerFrames)]
			writer.printf("\033[2K\r%s%s%s %s", Cyan, frame, Reset, message)

			select {
			case <-spinCtx.Done():
				writer.printf("\033[2K\r")
				return
			case <-ticker.C:
			}
		}
	}()

	result, err := fn(ctx)

	stop()
	wg.Wait()

	if err != nil {
		return result, err
	}

	return result, writer.err
}
