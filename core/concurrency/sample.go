// Package concurrency decodes the concurrent-player samples returned by the
// stats endpoint and normalizes them into plot-ready series.
package concurrency

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

var (
	// ErrNotArray is returned when the payload is not a JSON array.
	ErrNotArray = errors.New("concurrency payload is not an array")

	// ErrMalformedResponse is returned when the payload is an array that
	// does not match the sample schema.
	ErrMalformedResponse = errors.New("malformed concurrency payload")
)

// Sample is one aggregated bucket as sent by the stats endpoint.
type Sample struct {
	Timestamp Timestamp   `json:"tsUtc"`
	Players   PlayerCount `json:"players"`
}

// DecodeSamples validates and decodes a stats endpoint payload.
func DecodeSamples(data []byte) ([]Sample, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var samples []Sample
	if err := json.Unmarshal(trimmed, &samples); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if samples == nil {
		samples = []Sample{}
	}
	return samples, nil
}

type timestampKind int

const (
	timestampMissing timestampKind = iota
	timestampNumber
	timestampString
	timestampInvalid
)

// Timestamp holds the raw tsUtc value. The endpoint may send epoch seconds,
// epoch milliseconds or a date/time string; Resolve turns it into an instant.
type Timestamp struct {
	kind timestampKind
	num  float64
	str  string
}

// NumericTimestamp builds a numeric timestamp (epoch seconds or milliseconds).
func NumericTimestamp(v float64) Timestamp {
	return Timestamp{kind: timestampNumber, num: v}
}

// StringTimestamp builds a textual timestamp.
func StringTimestamp(s string) Timestamp {
	return Timestamp{kind: timestampString, str: s}
}

// UnmarshalJSON accepts any JSON value. Kinds other than numbers and strings
// are kept as unresolvable rather than failing the whole payload.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*t = Timestamp{}
		return nil
	}

	switch c := b[0]; {
	case c == 'n':
		*t = Timestamp{}
	case c == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = StringTimestamp(s)
	case c == '-' || (c >= '0' && c <= '9'):
		v, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			*t = Timestamp{kind: timestampInvalid}
			return nil
		}
		*t = NumericTimestamp(v)
	default:
		*t = Timestamp{kind: timestampInvalid}
	}
	return nil
}

// MarshalJSON writes the timestamp back in its original shape.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	switch t.kind {
	case timestampNumber:
		return []byte(strconv.FormatFloat(t.num, 'f', -1, 64)), nil
	case timestampString:
		return json.Marshal(t.str)
	default:
		return []byte("null"), nil
	}
}

// String renders the raw value for diagnostics.
func (t Timestamp) String() string {
	switch t.kind {
	case timestampNumber:
		return strconv.FormatFloat(t.num, 'f', -1, 64)
	case timestampString:
		return strconv.Quote(t.str)
	case timestampInvalid:
		return "<invalid>"
	default:
		return "<missing>"
	}
}

// MaxPlayers is the largest players value a sample may carry.
const MaxPlayers = math.MaxInt32

// PlayerCount is the players field of a sample. Absent or null decodes to 0.
type PlayerCount int

// UnmarshalJSON accepts numbers, numeric strings and null. Values are
// rounded and must fall within [0, MaxPlayers].
func (p *PlayerCount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] == 'n' {
		*p = 0
		return nil
	}

	raw := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid players value %s", string(b))
	}
	v = math.Round(v)
	if v < 0 || v > MaxPlayers {
		return fmt.Errorf("players value %s out of range [0, %d]", string(b), MaxPlayers)
	}
	*p = PlayerCount(v)
	return nil
}
