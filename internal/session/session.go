package session

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/ytget/wav-chopper/internal/model"
	"github.com/ytget/wav-chopper/internal/playback"
	"github.com/ytget/wav-chopper/internal/timecode"
	"github.com/ytget/wav-chopper/internal/toolchain"
)

// TickResult is the outcome of one periodic refresh
type TickResult struct {
	Position float64
	// Ended is true when this tick moved the session from Playing to Stopped
	Ended bool
}

// Session is the controller for one window. It is not safe for concurrent
// use; every call is expected on the UI goroutine.
type Session struct {
	gateway   toolchain.Gateway
	tracker   *playback.Tracker
	player    toolchain.Playback
	source    *model.AudioSource
	mark      model.ChopMark
	chops     *model.ChopList
	outputDir string
}

// Option configures a Session
type Option func(*Session)

// WithClock sets the clock used by the playback tracker
func WithClock(clock playback.Clock) Option {
	return func(s *Session) {
		s.tracker = playback.NewTracker(0, clock)
	}
}

// WithFirstIndex numbers exported chops from n instead of 1
func WithFirstIndex(n int) Option {
	return func(s *Session) {
		s.chops = model.NewChopListFrom(n)
	}
}

// WithOutputDir sets the initial output folder
func WithOutputDir(dir string) Option {
	return func(s *Session) {
		s.outputDir = dir
	}
}

// New creates a session with no source loaded
func New(gateway toolchain.Gateway, opts ...Option) *Session {
	s := &Session{
		gateway: gateway,
		tracker: playback.NewTracker(0, nil),
		chops:   model.NewChopList(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetGateway replaces the toolchain, stopping any running player first
func (s *Session) SetGateway(gateway toolchain.Gateway) {
	s.stopPlayer(true)
	s.gateway = gateway
}

// Load probes path and makes it the current source. A failed probe leaves
// the previous source, position and marks untouched.
func (s *Session) Load(ctx context.Context, path string) (model.AudioSource, error) {
	duration, err := s.gateway.ProbeDuration(ctx, path)
	if err != nil {
		return model.AudioSource{}, err
	}

	s.stopPlayer(false)
	s.tracker.Reset(duration)
	s.mark.Clear()
	src := model.AudioSource{Path: path, Duration: duration}
	s.source = &src

	log.Printf("Loaded %s (%s)", path, timecode.Format(duration))
	return src, nil
}

// Source returns the loaded source
func (s *Session) Source() (model.AudioSource, bool) {
	if s.source == nil {
		return model.AudioSource{}, false
	}
	return *s.source, true
}

// SetOutputDir sets the folder exported chops are written to
func (s *Session) SetOutputDir(dir string) {
	s.outputDir = strings.TrimSpace(dir)
}

// OutputDir returns the folder exported chops are written to
func (s *Session) OutputDir() string {
	return s.outputDir
}

// Playing reports whether a player is running
func (s *Session) Playing() bool {
	return s.tracker.Playing()
}

// Position returns the current playback position in seconds
func (s *Session) Position() float64 {
	return s.tracker.Position()
}

// Duration returns the loaded source duration, or 0
func (s *Session) Duration() float64 {
	return s.tracker.Duration()
}

// State returns a snapshot of the playback state
func (s *Session) State() model.PlaybackState {
	return s.tracker.State()
}

// Mark returns the pending begin/end marks
func (s *Session) Mark() model.ChopMark {
	return s.mark
}

// Chops returns the list of exported chops
func (s *Session) Chops() *model.ChopList {
	return s.chops
}

// Play starts the player from the current position. Playing from the end
// rewinds to 0. Calling Play while playing is a no-op.
func (s *Session) Play() error {
	if s.source == nil {
		return invalid("play", ErrNoSource)
	}
	if s.tracker.Playing() {
		return nil
	}
	return s.launch(s.tracker.ResolveStart(s.tracker.Position()))
}

// Stop kills the player and keeps the position it reached
func (s *Session) Stop() error {
	return s.stopPlayer(true)
}

// TogglePlay stops when playing and plays when stopped
func (s *Session) TogglePlay() error {
	if s.tracker.Playing() {
		return s.Stop()
	}
	return s.Play()
}

// Seek moves the position to target. While playing the player is
// relaunched from the new offset.
func (s *Session) Seek(target float64) error {
	if s.source == nil {
		return invalid("seek", ErrNoSource)
	}
	if !s.tracker.Seek(target) {
		return nil
	}

	from := s.tracker.Position()
	s.terminate()
	pb, err := s.gateway.StartPlayback(s.source.Path, from)
	if err != nil {
		s.tracker.Stop(false)
		return err
	}
	s.player = pb
	return nil
}

// Tick refreshes the position. It stops playback when the end is reached
// or the player has exited before the computed end.
func (s *Session) Tick() TickResult {
	if !s.tracker.Playing() {
		return TickResult{Position: s.tracker.Position()}
	}

	pos, ended := s.tracker.Tick()
	if ended {
		s.terminate()
		return TickResult{Position: pos, Ended: true}
	}

	if s.player == nil || s.player.Exited() {
		var exitErr error
		if s.player != nil {
			exitErr = s.player.Err()
		}
		s.tracker.Finish()
		s.player = nil
		pos = s.tracker.Position()
		if exitErr != nil {
			log.Printf("Player exited at %s: %v", timecode.Format(pos), exitErr)
		} else {
			log.Printf("Player exited at %s", timecode.Format(pos))
		}
		return TickResult{Position: pos, Ended: true}
	}

	return TickResult{Position: pos}
}

// MarkBegin records the current position as the chop begin
func (s *Session) MarkBegin() float64 {
	pos := s.tracker.Position()
	s.mark.SetBegin(pos)
	return pos
}

// MarkEnd records the current position as the chop end
func (s *Session) MarkEnd() float64 {
	pos := s.tracker.Position()
	s.mark.SetEnd(pos)
	return pos
}

// Export validates the begin/end time codes and writes the range to the
// next chop_<NNN>.wav in the output folder. The record is appended and the
// marks cleared only when the export succeeds.
func (s *Session) Export(ctx context.Context, beginText, endText string) (model.ChopRecord, error) {
	if s.source == nil {
		return model.ChopRecord{}, invalid("export", ErrNoSource)
	}
	if s.outputDir == "" {
		return model.ChopRecord{}, invalid("export", ErrNoOutputDir)
	}

	begin, err := timecode.Parse(beginText)
	if err != nil {
		return model.ChopRecord{}, fmt.Errorf("begin time: %w", err)
	}
	end, err := timecode.Parse(endText)
	if err != nil {
		return model.ChopRecord{}, fmt.Errorf("end time: %w", err)
	}
	if end <= begin {
		return model.ChopRecord{}, invalid("export", ErrInvalidRange)
	}

	outputPath := filepath.Join(s.outputDir, s.chops.NextFileName())
	if err := s.gateway.ExportRange(ctx, s.source.Path, begin, end, outputPath); err != nil {
		log.Printf("Export to %s failed: %v", outputPath, err)
		return model.ChopRecord{}, err
	}

	record := s.chops.Append(outputPath, begin, end)
	s.mark.Clear()
	log.Printf("Exported %s", record.Label())
	return record, nil
}

// Close terminates any running player
func (s *Session) Close() error {
	return s.stopPlayer(false)
}

// launch starts a new player at from, replacing any previous one. The
// tracker only enters Playing once the player is running.
func (s *Session) launch(from float64) error {
	s.terminate()
	pb, err := s.gateway.StartPlayback(s.source.Path, from)
	if err != nil {
		log.Printf("Failed to start playback: %v", err)
		return err
	}
	s.tracker.Start(from)
	s.player = pb
	return nil
}

// stopPlayer stops the tracker and kills the player
func (s *Session) stopPlayer(commit bool) error {
	s.tracker.Stop(commit)
	return s.terminate()
}

// terminate kills the current player, if any
func (s *Session) terminate() error {
	if s.player == nil {
		return nil
	}
	pb := s.player
	s.player = nil
	if err := s.gateway.TerminatePlayback(pb); err != nil {
		log.Printf("Failed to terminate player: %v", err)
		return err
	}
	return nil
}
