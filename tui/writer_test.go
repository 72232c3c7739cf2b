package tui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errClosedPipe = errors.New("closed pipe")

// brokenPipe accepts limit bytes and fails every write after that.
type brokenPipe struct {
	limit  int
	writes int
	buf    bytes.Buffer
}

func (b *brokenPipe) Write(p []byte) (int, error) {
	b.writes++
	if b.buf.Len()+len(p) > b.limit {
		return 0, errClosedPipe
	}
	return b.buf.Write(p)
}

func TestTableWriter_WritesLines(t *testing.T) {
	var buf bytes.Buffer
	tw := &tableWriter{w: &buf}

	tw.printf("%-10s %s\n", "Bucket", "6 min")
	tw.println("Peak", 23)

	require.NoError(t, tw.Err())
	assert.Equal(t, "Bucket     6 min\nPeak 23\n", buf.String())
}

func TestTableWriter_KeepsFirstError(t *testing.T) {
	pipe := &brokenPipe{limit: 8}
	tw := &tableWriter{w: pipe}

	tw.printf("Window\n")
	require.NoError(t, tw.Err())

	tw.printf("Bucket     6 min\n")
	tw.println("Peak", 23)
	tw.printf("Points %d\n", 24)

	assert.ErrorIs(t, tw.Err(), errClosedPipe)
	assert.Equal(t, 2, pipe.writes)
	assert.Equal(t, "Window\n", pipe.buf.String())
}
