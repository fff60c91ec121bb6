package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ytget/wav-chopper/internal/timecode"
	"github.com/ytget/wav-chopper/internal/toolchain"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fakePlayback struct {
	exited bool
	err    error
	done   chan struct{}
}

func newFakePlayback() *fakePlayback {
	return &fakePlayback{done: make(chan struct{})}
}

func (p *fakePlayback) Exited() bool { return p.exited }

func (p *fakePlayback) Done() <-chan struct{} { return p.done }

func (p *fakePlayback) Err() error { return p.err }

func (p *fakePlayback) exit() {
	if !p.exited {
		p.exited = true
		close(p.done)
	}
}

type exportCall struct {
	path       string
	begin, end float64
	outputPath string
}

type fakeGateway struct {
	duration  float64
	probeErr  error
	startErr  error
	exportErr error

	starts     []float64
	players    []*fakePlayback
	terminated int
	exports    []exportCall
}

func (g *fakeGateway) ProbeDuration(_ context.Context, _ string) (float64, error) {
	if g.probeErr != nil {
		return 0, g.probeErr
	}
	return g.duration, nil
}

func (g *fakeGateway) StartPlayback(_ string, from float64) (toolchain.Playback, error) {
	if g.startErr != nil {
		return nil, g.startErr
	}
	g.starts = append(g.starts, from)
	p := newFakePlayback()
	g.players = append(g.players, p)
	return p, nil
}

func (g *fakeGateway) TerminatePlayback(pb toolchain.Playback) error {
	g.terminated++
	pb.(*fakePlayback).exit()
	return nil
}

func (g *fakeGateway) ExportRange(_ context.Context, path string, begin, end float64, outputPath string) error {
	g.exports = append(g.exports, exportCall{path: path, begin: begin, end: end, outputPath: outputPath})
	return g.exportErr
}

func newLoadedSession(t *testing.T, duration float64) (*Session, *fakeGateway, *fakeClock) {
	t.Helper()
	gw := &fakeGateway{duration: duration}
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := New(gw, WithClock(clock.Now), WithOutputDir("/chops"))
	if _, err := s.Load(context.Background(), "/music/song.wav"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s, gw, clock
}

func TestLoad(t *testing.T) {
	s, _, _ := newLoadedSession(t, 125)

	src, ok := s.Source()
	if !ok {
		t.Fatal("Expected a loaded source")
	}
	if src.Duration != 125 || src.Path != "/music/song.wav" {
		t.Errorf("unexpected source %+v", src)
	}
	if s.Position() != 0 || s.Playing() {
		t.Errorf("Expected stopped at 0, got pos=%v playing=%v", s.Position(), s.Playing())
	}
}

func TestLoad_FailureKeepsPreviousSource(t *testing.T) {
	s, gw, _ := newLoadedSession(t, 125)
	if err := s.Seek(30); err != nil {
		t.Fatal(err)
	}

	gw.probeErr = &toolchain.ProbeError{Path: "/bad.wav", Err: errors.New("boom")}
	_, err := s.Load(context.Background(), "/bad.wav")
	if !errors.Is(err, toolchain.ErrDurationUnknown) {
		t.Fatalf("Expected ErrDurationUnknown, got %v", err)
	}

	src, _ := s.Source()
	if src.Path != "/music/song.wav" || s.Position() != 30 {
		t.Errorf("previous state changed: %+v pos=%v", src, s.Position())
	}
}

func TestLoad_StopsPlaybackAndClearsMarks(t *testing.T) {
	s, gw, clock := newLoadedSession(t, 125)
	if err := s.Play(); err != nil {
		t.Fatal(err)
	}
	clock.Advance(5 * time.Second)
	s.MarkBegin()

	if _, err := s.Load(context.Background(), "/music/other.wav"); err != nil {
		t.Fatal(err)
	}
	if s.Playing() || gw.terminated != 1 {
		t.Errorf("Expected player terminated, playing=%v terminated=%d", s.Playing(), gw.terminated)
	}
	if s.Mark().Begin != nil || s.Position() != 0 {
		t.Errorf("Expected cleared mark at 0, got %+v pos=%v", s.Mark(), s.Position())
	}
}

func TestPlayStop(t *testing.T) {
	s, gw, clock := newLoadedSession(t, 125)

	if err := s.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !s.Playing() || len(gw.starts) != 1 || gw.starts[0] != 0 {
		t.Fatalf("Expected one player from 0, got %v", gw.starts)
	}

	clock.Advance(3 * time.Second)
	if got := s.Position(); got != 3 {
		t.Errorf("position = %v, want 3", got)
	}

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if s.Playing() || gw.terminated != 1 {
		t.Errorf("Expected stopped and terminated, playing=%v terminated=%d", s.Playing(), gw.terminated)
	}

	clock.Advance(10 * time.Second)
	if got := s.Position(); got != 3 {
		t.Errorf("Stop must keep the reached position, got %v", got)
	}

	// Resume from the committed position
	if err := s.TogglePlay(); err != nil {
		t.Fatal(err)
	}
	if gw.starts[1] != 3 {
		t.Errorf("resume from %v, want 3", gw.starts[1])
	}
}

func TestPlay_NoSource(t *testing.T) {
	s := New(&fakeGateway{})
	err := s.Play()
	if !errors.Is(err, ErrNoSource) {
		t.Fatalf("Expected ErrNoSource, got %v", err)
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("Expected *ValidationError, got %T", err)
	}
}

func TestPlay_LaunchFailureStaysStopped(t *testing.T) {
	s, gw, _ := newLoadedSession(t, 125)
	gw.startErr = &toolchain.LaunchError{Tool: "ffplay", NotFound: true}

	err := s.Play()
	var launchErr *toolchain.LaunchError
	if !errors.As(err, &launchErr) || !launchErr.NotFound {
		t.Fatalf("Expected not-found launch error, got %v", err)
	}
	if s.Playing() || s.State().IsPlaying {
		t.Error("tracker must stay stopped after a failed launch")
	}
	if !s.State().StartWallTime.IsZero() {
		t.Error("start wall time must stay unset")
	}
}

func TestPlay_FromEndRewinds(t *testing.T) {
	s, gw, _ := newLoadedSession(t, 125)
	if err := s.Seek(125); err != nil {
		t.Fatal(err)
	}
	if err := s.Play(); err != nil {
		t.Fatal(err)
	}
	if gw.starts[0] != 0 {
		t.Errorf("Expected playback from 0, got %v", gw.starts[0])
	}
}

func TestSeek_WhilePlayingRelaunches(t *testing.T) {
	s, gw, clock := newLoadedSession(t, 125)
	if err := s.Play(); err != nil {
		t.Fatal(err)
	}
	clock.Advance(2 * time.Second)

	if err := s.Seek(60); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if len(gw.starts) != 2 || gw.starts[1] != 60 {
		t.Fatalf("Expected relaunch at 60, got %v", gw.starts)
	}
	if !gw.players[0].Exited() {
		t.Error("previous player must be terminated before relaunch")
	}
	if !s.Playing() || s.Position() != 60 {
		t.Errorf("Expected playing at 60, got playing=%v pos=%v", s.Playing(), s.Position())
	}
}

func TestSeek_WhileStopped(t *testing.T) {
	s, gw, _ := newLoadedSession(t, 125)
	if err := s.Seek(200); err != nil {
		t.Fatal(err)
	}
	if s.Position() != 125 {
		t.Errorf("Expected clamp to 125, got %v", s.Position())
	}
	if len(gw.starts) != 0 {
		t.Error("seek while stopped must not launch a player")
	}
}

func TestSeek_RelaunchFailureStops(t *testing.T) {
	s, gw, _ := newLoadedSession(t, 125)
	if err := s.Play(); err != nil {
		t.Fatal(err)
	}
	gw.startErr = errors.New("spawn failed")

	if err := s.Seek(40); err == nil {
		t.Fatal("Expected relaunch error")
	}
	if s.Playing() {
		t.Error("Expected stopped after failed relaunch")
	}
	if s.Position() != 40 {
		t.Errorf("Expected position kept at seek target, got %v", s.Position())
	}
}

func TestTick(t *testing.T) {
	t.Run("advances while playing", func(t *testing.T) {
		s, _, clock := newLoadedSession(t, 125)
		if err := s.Play(); err != nil {
			t.Fatal(err)
		}
		clock.Advance(1500 * time.Millisecond)
		res := s.Tick()
		if res.Ended || res.Position != 1.5 {
			t.Errorf("unexpected tick %+v", res)
		}
	})

	t.Run("end reached", func(t *testing.T) {
		s, gw, clock := newLoadedSession(t, 10)
		if err := s.Play(); err != nil {
			t.Fatal(err)
		}
		clock.Advance(12 * time.Second)
		res := s.Tick()
		if !res.Ended || res.Position != 10 {
			t.Errorf("Expected end at 10, got %+v", res)
		}
		if s.Playing() || gw.terminated != 1 {
			t.Errorf("Expected stopped and terminated, playing=%v terminated=%d", s.Playing(), gw.terminated)
		}
		if s.Position() != 10 {
			t.Errorf("Expected position pinned at 10, got %v", s.Position())
		}
	})

	t.Run("player exited early", func(t *testing.T) {
		s, gw, clock := newLoadedSession(t, 125)
		if err := s.Play(); err != nil {
			t.Fatal(err)
		}
		clock.Advance(4 * time.Second)
		gw.players[0].exit()

		res := s.Tick()
		if !res.Ended || res.Position != 4 {
			t.Errorf("Expected end at 4, got %+v", res)
		}
		if s.Playing() {
			t.Error("Expected stopped")
		}
		clock.Advance(time.Second)
		if s.Position() != 4 {
			t.Errorf("Expected pinned position 4, got %v", s.Position())
		}
	})

	t.Run("player failed", func(t *testing.T) {
		s, gw, clock := newLoadedSession(t, 125)
		if err := s.Play(); err != nil {
			t.Fatal(err)
		}
		clock.Advance(time.Second)
		gw.players[0].err = errors.New("exit status 1")
		gw.players[0].exit()

		res := s.Tick()
		if !res.Ended || res.Position != 1 || s.Playing() {
			t.Errorf("Expected stopped at 1, got %+v playing=%v", res, s.Playing())
		}
	})

	t.Run("stopped tick is inert", func(t *testing.T) {
		s, _, _ := newLoadedSession(t, 125)
		res := s.Tick()
		if res.Ended || res.Position != 0 {
			t.Errorf("unexpected tick %+v", res)
		}
	})
}

func TestMarks(t *testing.T) {
	s, _, clock := newLoadedSession(t, 125)
	if err := s.Seek(10); err != nil {
		t.Fatal(err)
	}
	if got := s.MarkBegin(); got != 10 {
		t.Errorf("MarkBegin = %v", got)
	}
	if err := s.Play(); err != nil {
		t.Fatal(err)
	}
	clock.Advance(10500 * time.Millisecond)
	if got := s.MarkEnd(); got != 20.5 {
		t.Errorf("MarkEnd = %v", got)
	}
	if !s.Mark().Complete() {
		t.Error("Expected complete mark")
	}
}

func TestExport(t *testing.T) {
	s, gw, _ := newLoadedSession(t, 125)
	s.MarkBegin()

	rec, err := s.Export(context.Background(), "00:00:10:00", "00:00:20:50")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if rec.SequenceIndex != 1 || rec.OutputPath != filepath.Join("/chops", "chop_001.wav") {
		t.Errorf("unexpected record %+v", rec)
	}
	if want := "chop_001.wav (00:00:10:00 - 00:00:20:50)"; rec.Label() != want {
		t.Errorf("label = %q, want %q", rec.Label(), want)
	}
	if len(gw.exports) != 1 || gw.exports[0].begin != 10 || gw.exports[0].end != 20.5 {
		t.Errorf("unexpected export calls %+v", gw.exports)
	}
	if s.Mark().Begin != nil {
		t.Error("marks must be cleared after a successful export")
	}

	rec, err = s.Export(context.Background(), "00:30", "00:45")
	if err != nil {
		t.Fatalf("second Export: %v", err)
	}
	if rec.FileName() != "chop_002.wav" {
		t.Errorf("second file = %s", rec.FileName())
	}
	if s.Chops().Len() != 2 {
		t.Errorf("Expected 2 chops, got %d", s.Chops().Len())
	}
}

func TestExport_FailureKeepsCounter(t *testing.T) {
	s, gw, _ := newLoadedSession(t, 125)
	gw.exportErr = &toolchain.ExportError{OutputPath: "/chops/chop_001.wav", ExitCode: 1, Output: "Permission denied"}

	_, err := s.Export(context.Background(), "00:10", "00:20")
	var exportErr *toolchain.ExportError
	if !errors.As(err, &exportErr) {
		t.Fatalf("Expected *ExportError, got %v", err)
	}
	if s.Chops().Len() != 0 || s.Chops().NextFileName() != "chop_001.wav" {
		t.Errorf("failed export must not change the list, len=%d next=%s", s.Chops().Len(), s.Chops().NextFileName())
	}

	gw.exportErr = nil
	rec, err := s.Export(context.Background(), "00:10", "00:20")
	if err != nil {
		t.Fatal(err)
	}
	if rec.FileName() != "chop_001.wav" {
		t.Errorf("retry should reuse chop_001.wav, got %s", rec.FileName())
	}
}

func TestExport_Validation(t *testing.T) {
	tests := []struct {
		name     string
		begin    string
		end      string
		noSource bool
		noDir    bool
		wantErr  error
	}{
		{name: "no source", begin: "00:10", end: "00:20", noSource: true, wantErr: ErrNoSource},
		{name: "no output dir", begin: "00:10", end: "00:20", noDir: true, wantErr: ErrNoOutputDir},
		{name: "end equals begin", begin: "00:10", end: "00:10", wantErr: ErrInvalidRange},
		{name: "end before begin", begin: "00:20", end: "00:10", wantErr: ErrInvalidRange},
		{name: "empty begin", begin: " ", end: "00:10", wantErr: timecode.ErrEmptyInput},
		{name: "bad end", begin: "00:10", end: "ab:cd", wantErr: timecode.ErrNonNumeric},
		{name: "bad field count", begin: "1:2:3:4:5", end: "00:10", wantErr: timecode.ErrBadFieldCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{duration: 125}
			s := New(gw)
			if !tt.noDir {
				s.SetOutputDir("/chops")
			}
			if !tt.noSource {
				if _, err := s.Load(context.Background(), "/a.wav"); err != nil {
					t.Fatal(err)
				}
			}

			_, err := s.Export(context.Background(), tt.begin, tt.end)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			if len(gw.exports) != 0 {
				t.Error("exporter must not run for invalid input")
			}
		})
	}
}

func TestWithFirstIndex(t *testing.T) {
	gw := &fakeGateway{duration: 60}
	s := New(gw, WithFirstIndex(7), WithOutputDir("/out"))
	if _, err := s.Load(context.Background(), "/a.wav"); err != nil {
		t.Fatal(err)
	}
	rec, err := s.Export(context.Background(), "00:01", "00:02")
	if err != nil {
		t.Fatal(err)
	}
	if rec.FileName() != "chop_007.wav" {
		t.Errorf("file = %s, want chop_007.wav", rec.FileName())
	}
}

func TestClose(t *testing.T) {
	s, gw, _ := newLoadedSession(t, 125)
	if err := s.Play(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if !gw.players[0].Exited() || s.Playing() {
		t.Error("Close must terminate the player")
	}
	// Closing twice is harmless
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestSetGateway(t *testing.T) {
	s, gw, clock := newLoadedSession(t, 125)
	if err := s.Play(); err != nil {
		t.Fatal(err)
	}
	clock.Advance(2 * time.Second)

	next := &fakeGateway{duration: 125}
	s.SetGateway(next)
	if gw.terminated != 1 || s.Playing() {
		t.Error("swapping the gateway must stop the old player")
	}
	if s.Position() != 2 {
		t.Errorf("Expected position kept at 2, got %v", s.Position())
	}
	if err := s.Play(); err != nil {
		t.Fatal(err)
	}
	if len(next.starts) != 1 || next.starts[0] != 2 {
		t.Errorf("Expected new gateway to start at 2, got %v", next.starts)
	}
}
