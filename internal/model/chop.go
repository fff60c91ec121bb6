package model

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/wav-chopper/internal/timecode"
)

// Chop naming constants
const (
	ChopFilePrefix    = "chop_"
	ChopFileExtension = ".wav"
	ChopIDPrefix      = "chop-"
)

// ChopMark is the begin/end pair being edited before export. Either side may
// be unset; the end > begin rule is only checked at export time.
type ChopMark struct {
	Begin *float64
	End   *float64
}

// SetBegin records the begin time in seconds
func (m *ChopMark) SetBegin(seconds float64) {
	m.Begin = &seconds
}

// SetEnd records the end time in seconds
func (m *ChopMark) SetEnd(seconds float64) {
	m.End = &seconds
}

// Clear unsets both sides of the mark
func (m *ChopMark) Clear() {
	m.Begin = nil
	m.End = nil
}

// Complete reports whether both sides are set
func (m ChopMark) Complete() bool {
	return m.Begin != nil && m.End != nil
}

// ChopRecord describes one successfully exported chop. Records are immutable
// once created.
type ChopRecord struct {
	ID            string
	SequenceIndex int // 1-based, never reused within a session
	OutputPath    string
	Begin         float64
	End           float64
	CreatedAt     time.Time
}

// FileName returns the base name of the exported file
func (r ChopRecord) FileName() string {
	return filepath.Base(r.OutputPath)
}

// Length returns the chop length in seconds
func (r ChopRecord) Length() float64 {
	return r.End - r.Begin
}

// Label renders the list entry, e.g. "chop_001.wav (00:00:10:00 - 00:00:20:50)"
func (r ChopRecord) Label() string {
	return fmt.Sprintf("%s (%s - %s)", r.FileName(), timecode.Format(r.Begin), timecode.Format(r.End))
}

// ChopFileName returns the output file name for a sequence index
func ChopFileName(index int) string {
	return fmt.Sprintf("%s%03d%s", ChopFilePrefix, index, ChopFileExtension)
}

// generateChopID generates a unique chop ID using UUID v7 for time ordering
func generateChopID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(ChopIDPrefix+"%d", time.Now().UnixNano())
	}
	return ChopIDPrefix + id.String()
}
