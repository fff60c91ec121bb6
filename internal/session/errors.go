package session

import (
	"errors"
)

// Validation sentinels
var (
	ErrNoSource     = errors.New("no WAV file loaded")
	ErrNoOutputDir  = errors.New("no output folder selected")
	ErrInvalidRange = errors.New("end time must be after begin time")
)

// ValidationError reports a request rejected before any external tool ran
type ValidationError struct {
	Op  string
	Err error
}

// Error formats validation failures for dialogs
func (e *ValidationError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap exposes the sentinel
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(op string, err error) error {
	return &ValidationError{Op: op, Err: err}
}
