// Package axis picks the date/time format of the chart's x-axis from the
// length of the displayed window.
package axis

import (
	"time"
)

const day = 24 * time.Hour

// Format identifies the fields shown on x-axis tick labels.
type Format int

const (
	// HourMinute shows hour and minute, for windows up to one day.
	HourMinute Format = iota
	// WeekdayHour shows the short weekday and hour, up to 14 days.
	WeekdayHour
	// DayMonth shows day of month and short month, up to 90 days.
	DayMonth
	// MonthYear shows short month and year for anything longer.
	MonthYear
)

// Select returns the format for a window of the given length.
func Select(window time.Duration) Format {
	switch {
	case window <= day:
		return HourMinute
	case window <= 14*day:
		return WeekdayHour
	case window <= 90*day:
		return DayMonth
	default:
		return MonthYear
	}
}

// String returns the format name.
func (f Format) String() string {
	switch f {
	case HourMinute:
		return "hour:minute"
	case WeekdayHour:
		return "weekday+hour"
	case DayMonth:
		return "day+month"
	case MonthYear:
		return "month+year"
	default:
		return "unknown"
	}
}

// Layout returns the Go time layout of the format.
func (f Format) Layout() string {
	switch f {
	case HourMinute:
		return "15:04"
	case WeekdayHour:
		return "Mon 15h"
	case DayMonth:
		return "02 Jan"
	default:
		return "Jan 2006"
	}
}

// IntlOptions returns the equivalent Intl.DateTimeFormat options, used by
// browser-side label formatters.
func (f Format) IntlOptions() map[string]string {
	switch f {
	case HourMinute:
		return map[string]string{"hour": "2-digit", "minute": "2-digit"}
	case WeekdayHour:
		return map[string]string{"weekday": "short", "hour": "2-digit"}
	case DayMonth:
		return map[string]string{"day": "2-digit", "month": "short"}
	default:
		return map[string]string{"month": "short", "year": "numeric"}
	}
}

// Formatter renders instants with a fixed format and location.
type Formatter struct {
	format Format
	loc    *time.Location
}

// NewFormatter creates a formatter. A nil location means local time.
func NewFormatter(f Format, loc *time.Location) Formatter {
	if loc == nil {
		loc = time.Local
	}
	return Formatter{format: f, loc: loc}
}

// ForWindow creates a formatter for a window of the given length.
func ForWindow(window time.Duration, loc *time.Location) Formatter {
	return NewFormatter(Select(window), loc)
}

// Format returns the format in use.
func (f Formatter) Format() Format {
	return f.format
}

// Location returns the display location.
func (f Formatter) Location() *time.Location {
	return f.loc
}

// Label formats a single tick.
func (f Formatter) Label(t time.Time) string {
	loc := f.loc
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(f.format.Layout())
}
