package model

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ytget/wav-chopper/internal/timecode"
)

// AudioSource is a loaded WAV file with its probed duration in seconds.
// The duration is derived once on load and never re-probed.
type AudioSource struct {
	Path     string
	Duration float64
}

// Name returns the base file name of the source
func (s AudioSource) Name() string {
	return filepath.Base(s.Path)
}

// Label returns the file name followed by its formatted duration
func (s AudioSource) Label() string {
	return fmt.Sprintf("%s (%s)", s.Name(), timecode.Format(s.Duration))
}

// PlaybackState is a snapshot of the playback position tracker.
// StartWallTime is the zero time whenever IsPlaying is false.
type PlaybackState struct {
	IsPlaying       bool
	StartWallTime   time.Time
	StartPosition   float64
	CurrentPosition float64
}

// Transport maps the snapshot onto a TransportState
func (ps PlaybackState) Transport() TransportState {
	if ps.IsPlaying {
		return TransportPlaying
	}
	return TransportStopped
}
