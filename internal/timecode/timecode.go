package timecode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field separator and centisecond scale
const (
	Separator       = ":"
	CentisPerSecond = 100
	CentisPerMinute = 60 * CentisPerSecond
	CentisPerHour   = 60 * CentisPerMinute

	// MaxField bounds each field so the centisecond total cannot overflow
	MaxField = 1_000_000_000
)

// Kind classifies why a time string was rejected.
type Kind int

const (
	// EmptyInput means the text was empty or whitespace only
	EmptyInput Kind = iota + 1
	// NonNumeric means at least one field is not a number
	NonNumeric
	// BadFieldCount means the text did not have 2, 3 or 4 fields
	BadFieldCount
	// NegativeTime means the fields added up to a negative time
	NegativeTime
	// OutOfRange means a field is larger than MaxField
	OutOfRange
)

// Sentinel errors matched by errors.Is against a *ParseError of the same kind.
var (
	ErrEmptyInput    = errors.New("enter begin and end times as hh:mm:ss")
	ErrNonNumeric    = errors.New("times must be numeric (hh:mm:ss:cc)")
	ErrBadFieldCount = errors.New("use mm:ss, hh:mm:ss or hh:mm:ss:cc format")
	ErrNegativeTime  = errors.New("time cannot be negative")
	ErrOutOfRange    = errors.New("time is too large")
)

// String returns a short name for the kind
func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case NonNumeric:
		return "NonNumeric"
	case BadFieldCount:
		return "BadFieldCount"
	case NegativeTime:
		return "NegativeTime"
	case OutOfRange:
		return "OutOfRange"
	default:
		return "Unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case EmptyInput:
		return ErrEmptyInput
	case NonNumeric:
		return ErrNonNumeric
	case BadFieldCount:
		return ErrBadFieldCount
	case NegativeTime:
		return ErrNegativeTime
	case OutOfRange:
		return ErrOutOfRange
	default:
		return nil
	}
}

// ParseError reports malformed time text.
type ParseError struct {
	Kind  Kind
	Input string
}

// Error returns the user-facing message for the failure kind
func (e *ParseError) Error() string {
	if err := e.Kind.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("invalid time %q", e.Input)
}

// Unwrap exposes the sentinel error for errors.Is
func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}

// Format renders seconds as HH:MM:SS:CC. Negative input is treated as zero,
// the value is rounded to the nearest hundredth and hours are not clamped.
func Format(seconds float64) string {
	return FormatCentis(ToCentis(seconds))
}

// FormatCentis renders a centisecond count as HH:MM:SS:CC.
func FormatCentis(total int64) string {
	if total < 0 {
		total = 0
	}
	h := total / CentisPerHour
	m := (total / CentisPerMinute) % 60
	s := (total / CentisPerSecond) % 60
	cs := total % CentisPerSecond
	return fmt.Sprintf("%02d:%02d:%02d:%02d", h, m, s, cs)
}

// ToCentis rounds seconds to the nearest whole centisecond, clamping
// negative and NaN input to zero.
func ToCentis(seconds float64) int64 {
	if seconds <= 0 || math.IsNaN(seconds) {
		return 0
	}
	return int64(math.Round(seconds * CentisPerSecond))
}

// Parse accepts MM:SS, HH:MM:SS or HH:MM:SS:CC and returns the time in
// seconds. The centisecond field may carry a fraction which is truncated.
func Parse(text string) (float64, error) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return 0, &ParseError{Kind: EmptyInput, Input: text}
	}

	parts := strings.Split(cleaned, Separator)
	if len(parts) < 2 || len(parts) > 4 {
		return 0, &ParseError{Kind: BadFieldCount, Input: text}
	}
	// Left-pad MM:SS to HH:MM:SS so field positions are fixed.
	if len(parts) == 2 {
		parts = append([]string{"0"}, parts...)
	}

	var fields [3]int64
	for i := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(parts[i]), 10, 64)
		if errors.Is(err, strconv.ErrRange) || n > MaxField || n < -MaxField {
			return 0, &ParseError{Kind: OutOfRange, Input: text}
		}
		if err != nil {
			return 0, &ParseError{Kind: NonNumeric, Input: text}
		}
		fields[i] = n
	}
	h, m, s := fields[0], fields[1], fields[2]

	var cs int64
	if len(parts) == 4 {
		n, kind := parseCentis(parts[3])
		if kind != 0 {
			return 0, &ParseError{Kind: kind, Input: text}
		}
		cs = n
	}

	total := h*CentisPerHour + m*CentisPerMinute + s*CentisPerSecond + cs
	if total < 0 {
		return 0, &ParseError{Kind: NegativeTime, Input: text}
	}
	return float64(total) / CentisPerSecond, nil
}

// parseCentis parses the centisecond field as a real number and truncates
// it. A non-zero Kind reports why the field was rejected.
func parseCentis(field string) (int64, Kind) {
	f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, NonNumeric
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		if err != nil {
			return 0, OutOfRange
		}
		return 0, NonNumeric
	}
	if math.Abs(f) > MaxField {
		return 0, OutOfRange
	}
	return int64(f), 0
}
