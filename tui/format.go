package tui

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration formats a duration as a human-readable string.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatWindow formats a preset window in hours below a day and whole days
// otherwise.
func FormatWindow(d time.Duration) string {
	if d < 24*time.Hour || d%(24*time.Hour) != 0 {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	return fmt.Sprintf("%dd", int(d.Hours()/24))
}

// FormatBucket formats a bucket size given in minutes.
func FormatBucket(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}

// FormatTime formats a time for display.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}

// FormatNumber formats a number with thousand separators.
func FormatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return formatNumberWithSep(n)
}

func formatNumberWithSep(n int) string {
	s := fmt.Sprintf("%d", n)
	var result strings.Builder
	l := len(s)
	for i, c := range s {
		if i > 0 && (l-i)%3 == 0 {
			result.WriteByte(',')
		}
		result.WriteRune(c)
	}
	return result.String()
}

// PadLeft pads a string to the left to achieve the given width.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// HorizontalLine returns a horizontal line of the given width.
func HorizontalLine(width int) string {
	return strings.Repeat("─", width)
}
