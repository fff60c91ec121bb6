package timecode

import (
	"errors"
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "00:00:00:00"},
		{-5, "00:00:00:00"},
		{math.NaN(), "00:00:00:00"},
		{1.234, "00:00:01:23"},
		{1.236, "00:00:01:24"},
		{59.999, "00:01:00:00"},
		{125.0, "00:02:05:00"},
		{20.5, "00:00:20:50"},
		{3661.07, "01:01:01:07"},
		{100 * 3600, "100:00:00:00"},
	}

	for _, test := range tests {
		result := Format(test.seconds)
		if result != test.expected {
			t.Errorf("Format(%v) = %s, expected %s", test.seconds, result, test.expected)
		}
	}
}

func TestFormat_MonotonicFields(t *testing.T) {
	prev := Format(0)
	for i := 1; i <= 500000; i += 37 {
		cur := Format(float64(i) / 100)
		// Fixed-width fields compare lexicographically while hours stay two digits.
		if cur < prev {
			t.Fatalf("Format not monotonic: %s after %s", cur, prev)
		}
		prev = cur
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		text     string
		expected float64
	}{
		{"02:05", 125},
		{"00:02:05", 125},
		{"00:02:05:00", 125},
		{"00:00:20:50", 20.5},
		{" 1:2:3 ", 3723},
		{"00:00:01:33.5", 1.33},
		{"00:00:01:99.99", 1.99},
		{"1:00:00:07", 3600.07},
		{"0:90", 90},
	}

	for _, test := range tests {
		result, err := Parse(test.text)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", test.text, err)
			continue
		}
		if result != test.expected {
			t.Errorf("Parse(%q) = %v, expected %v", test.text, result, test.expected)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		text     string
		kind     Kind
		sentinel error
	}{
		{"", EmptyInput, ErrEmptyInput},
		{"  ", EmptyInput, ErrEmptyInput},
		{"a:b:c", NonNumeric, ErrNonNumeric},
		{"1:x", NonNumeric, ErrNonNumeric},
		{"00:00:01:inf", NonNumeric, ErrNonNumeric},
		{"1::2", NonNumeric, ErrNonNumeric},
		{"1:2:3:4:5", BadFieldCount, ErrBadFieldCount},
		{"42", BadFieldCount, ErrBadFieldCount},
		{"-1:00", NegativeTime, ErrNegativeTime},
		{"00:00:00:-5", NegativeTime, ErrNegativeTime},
		{"99999999999999:00:00", OutOfRange, ErrOutOfRange},
		{"99999999999999999999:00", OutOfRange, ErrOutOfRange},
		{"0:0:0:1e30", OutOfRange, ErrOutOfRange},
		{"0:0:0:1e400", OutOfRange, ErrOutOfRange},
		{"-99999999999999:00:00", OutOfRange, ErrOutOfRange},
	}

	for _, test := range tests {
		_, err := Parse(test.text)
		if err == nil {
			t.Errorf("Parse(%q) expected error, got nil", test.text)
			continue
		}

		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q) error %T is not *ParseError", test.text, err)
			continue
		}
		if perr.Kind != test.kind {
			t.Errorf("Parse(%q) kind = %s, expected %s", test.text, perr.Kind, test.kind)
		}
		if !errors.Is(err, test.sentinel) {
			t.Errorf("Parse(%q) error should match %v", test.text, test.sentinel)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	values := []float64{0, 0.01, 0.1, 0.29, 1.005, 10, 20.5, 59.99, 125, 3599.99, 3600, 86399.99, 123456.78}
	for i := 0; i < 20000; i++ {
		values = append(values, float64(i)*1.37)
	}

	for _, v := range values {
		rounded := math.Round(v*100) / 100
		got, err := Parse(Format(rounded))
		if err != nil {
			t.Fatalf("Parse(Format(%v)) error: %v", rounded, err)
		}
		if got != rounded {
			t.Fatalf("Parse(Format(%v)) = %v, expected exact round trip", rounded, got)
		}
	}
}

func TestKind_String(t *testing.T) {
	if EmptyInput.String() != "EmptyInput" {
		t.Errorf("EmptyInput.String() = %s", EmptyInput.String())
	}
	if Kind(0).String() != "Unknown" {
		t.Errorf("Kind(0).String() = %s", Kind(0).String())
	}
}
