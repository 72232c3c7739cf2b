package concurrency

import (
	"math"
	"strings"
	"time"
)

// SecondsThreshold separates epoch seconds from epoch milliseconds. Epoch
// seconds for realistic dates stay below it, epoch milliseconds exceed it.
const SecondsThreshold = 2_000_000_000

// maxEpochMillis is the largest representable instant, +/- 100,000,000 days.
const maxEpochMillis = 8.64e15

// Series is the plot-ready form of a sample list. X and Y are index aligned.
type Series struct {
	X []time.Time `json:"x"`
	Y []int       `json:"y"`
}

// Len returns the number of points.
func (s Series) Len() int {
	return len(s.X)
}

// Empty reports whether the series has no points.
func (s Series) Empty() bool {
	return len(s.X) == 0
}

// Max returns the largest y value, or 0 for an empty series.
func (s Series) Max() int {
	max := 0
	for _, v := range s.Y {
		if v > max {
			max = v
		}
	}
	return max
}

// Normalize converts samples into a series, dropping every sample whose
// timestamp cannot be resolved.
func Normalize(samples []Sample) Series {
	s := Series{
		X: make([]time.Time, 0, len(samples)),
		Y: make([]int, 0, len(samples)),
	}
	for _, sample := range samples {
		ts, ok := sample.Timestamp.Resolve()
		if !ok {
			continue
		}
		s.X = append(s.X, ts)
		s.Y = append(s.Y, int(sample.Players))
	}
	return s
}

// Resolve returns the instant the timestamp denotes.
func (t Timestamp) Resolve() (time.Time, bool) {
	switch t.kind {
	case timestampNumber:
		ms := t.num
		if ms < SecondsThreshold {
			ms *= 1000
		}
		return fromMillis(ms)
	case timestampString:
		return parseTimeString(t.str)
	default:
		return time.Time{}, false
	}
}

func fromMillis(ms float64) (time.Time, bool) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)).UTC(), true
}

// Date-time layouts without a zone are read in local time, date-only forms
// in UTC.
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04Z07:00",
		time.RFC1123Z,
		time.RFC1123,
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
	}
	dateLayouts = []string{
		"2006-01-02",
		"2006-01",
		"2006",
	}
)

func parseTimeString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return checkRange(t)
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return checkRange(t)
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return checkRange(t)
		}
	}
	return time.Time{}, false
}

func checkRange(t time.Time) (time.Time, bool) {
	return fromMillis(float64(t.UnixMilli()))
}
