package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatWindow(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{6 * time.Hour, "6h"},
		{24 * time.Hour, "1d"},
		{7 * 24 * time.Hour, "7d"},
		{365 * 24 * time.Hour, "365d"},
		{36 * time.Hour, "36h"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatWindow(tt.in), tt.in.String())
	}
}

func TestFormatBucket(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{1, "1m"},
		{42, "42m"},
		{120, "2h"},
		{2190, "36h30m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBucket(tt.in))
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250ms", FormatDuration(250*time.Millisecond))
	assert.Equal(t, "1.5s", FormatDuration(1500*time.Millisecond))
	assert.Equal(t, "2m 5s", FormatDuration(125*time.Second))
	assert.Equal(t, "1h 30m", FormatDuration(90*time.Minute))
}

func TestFormatTime_Zero(t *testing.T) {
	assert.Equal(t, "-", FormatTime(time.Time{}))
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, "   42", PadLeft("42", 5))
	assert.Equal(t, "123456", PadLeft("123456", 3))
}

func TestClampWidth(t *testing.T) {
	assert.Equal(t, MinTerminalWidth, clampWidth(10))
	assert.Equal(t, 100, clampWidth(100))
	assert.Equal(t, MaxTerminalWidth, clampWidth(1000))
}
