package playback

import (
	"math"
	"time"

	"github.com/ytget/wav-chopper/internal/model"
)

// TickInterval is the nominal refresh period while playing
const TickInterval = 100 * time.Millisecond

// Clock returns the current time. time.Now carries a monotonic reading, so
// differences between two calls are immune to wall clock adjustments.
type Clock func() time.Time

// Tracker is a two-state (Stopped, Playing) position tracker.
// It is not safe for concurrent use.
type Tracker struct {
	now      Clock
	duration float64

	playing   bool
	startWall time.Time
	startPos  float64
	current   float64
}

// NewTracker creates a stopped tracker at position 0. A nil clock uses time.Now.
func NewTracker(duration float64, clock Clock) *Tracker {
	if clock == nil {
		clock = time.Now
	}
	t := &Tracker{now: clock}
	t.Reset(duration)
	return t
}

// Reset stops the tracker and rewinds it to 0 for a new duration
func (t *Tracker) Reset(duration float64) {
	if duration < 0 {
		duration = 0
	}
	t.duration = duration
	t.playing = false
	t.startWall = time.Time{}
	t.startPos = 0
	t.current = 0
}

// Duration returns the length of the tracked source in seconds
func (t *Tracker) Duration() float64 {
	return t.duration
}

// Playing reports whether the tracker is in the Playing state
func (t *Tracker) Playing() bool {
	return t.playing
}

// ResolveStart returns the position playback would actually start from:
// clamped to [0, duration], and rewound to 0 when at or past the end.
func (t *Tracker) ResolveStart(at float64) float64 {
	at = t.clamp(at)
	if at >= t.duration {
		return 0
	}
	return at
}

// Start moves Stopped -> Playing from at. Starting while already playing
// re-bases the tracker at the new position.
func (t *Tracker) Start(at float64) {
	pos := t.ResolveStart(at)
	t.startPos = pos
	t.current = pos
	t.startWall = t.now()
	t.playing = true
}

// Position returns the current position. While playing it is the baseline
// plus elapsed wall time, clamped to [0, duration].
func (t *Tracker) Position() float64 {
	if !t.playing {
		return t.current
	}
	elapsed := t.now().Sub(t.startWall).Seconds()
	return t.clamp(t.startPos + elapsed)
}

// Stop moves Playing -> Stopped. With commit the computed position becomes
// the new baseline; without it elapsed time is discarded.
func (t *Tracker) Stop(commit bool) {
	if t.playing && commit {
		t.current = t.Position()
	}
	t.playing = false
	t.startWall = time.Time{}
}

// Finish stops the tracker and pins the baseline at the computed position.
// It is used when the end is reached or the player exits on its own.
func (t *Tracker) Finish() {
	t.Stop(true)
}

// Tick recomputes the position. Reaching the end stops the tracker with the
// position pinned at the duration.
func (t *Tracker) Tick() (pos float64, ended bool) {
	if !t.playing {
		return t.current, false
	}
	pos = t.Position()
	if pos >= t.duration {
		t.Finish()
		t.current = t.duration
		return t.duration, true
	}
	return pos, false
}

// Seek moves the baseline to target. While playing this restarts the Playing
// state at target and reports true so the caller can relaunch the player.
func (t *Tracker) Seek(target float64) (wasPlaying bool) {
	if t.playing {
		t.Stop(false)
		t.Start(target)
		return true
	}
	t.current = t.clamp(target)
	t.startPos = t.current
	return false
}

// State returns a snapshot of the tracker
func (t *Tracker) State() model.PlaybackState {
	return model.PlaybackState{
		IsPlaying:       t.playing,
		StartWallTime:   t.startWall,
		StartPosition:   t.startPos,
		CurrentPosition: t.Position(),
	}
}

func (t *Tracker) clamp(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > t.duration {
		return t.duration
	}
	return v
}
