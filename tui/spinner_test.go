package tui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWithSpinner(t *testing.T) {
	tests := []struct {
		name      string
		fn        func(context.Context) (string, error)
		wantVal   string
		wantErr   error
		wantEmpty bool
	}{
		{
			name:      "returns value from fn",
			fn:        func(context.Context) (string, error) { return "hello", nil },
			wantVal:   "hello",
			wantEmpty: true,
		},
		{
			name:      "propagates error from fn",
			fn:        func(context.Context) (string, error) { return "", errors.New("fail") },
			wantErr:   errors.New("fail"),
			wantEmpty: true,
		},
		{
			name:      "returns value even when fn also returns error",
			fn:        func(context.Context) (string, error) { return "partial", errors.New("warn") },
			wantVal:   "partial",
			wantErr:   errors.New("warn"),
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			got, err := RunWithSpinner(context.Background(), "loading...", tt.fn, WithWriter(&buf))

			assert.Equal(t, tt.wantVal, got)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
			if tt.wantEmpty {
				assert.Empty(t, buf.String(), "non-TTY writer should produce no spinner output")
			}
		})
	}
}

func TestRunWithSpinner_PassesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := RunWithSpinner(ctx, "loading...", func(ctx context.Context) (int, error) {
		return 0, ctx.Err()
	}, WithWriter(&buf))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestProgressWriter_NonTerminalIsSilent(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressWriter(&buf, true)

	p.Update("refreshing %s", "1d")
	p.Clear()

	assert.Empty(t, buf.String())
}
