package toolchain

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Executable and argument constants
const (
	FFmpegCommand  = "ffmpeg"
	FFprobeCommand = "ffprobe"
	FFplayCommand  = "ffplay"

	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "default=noprint_wrappers=1:nokey=1"

	PlayerLogLevel = "error"

	// Fixed uncompressed sample format for exported chops
	ExportAudioCodec = "pcm_s16le"

	// TerminateTimeout bounds the wait for a killed player to exit
	TerminateTimeout = 2 * time.Second
)

// Config selects the tool binaries and the optional decode acceleration hint.
// Empty paths fall back to the bare command names resolved on PATH.
type Config struct {
	FFmpegPath  string
	FFprobePath string
	FFplayPath  string

	// HWAccel is passed to ffmpeg as "-hwaccel <value>" when non-empty.
	// ffmpeg falls back to software decoding when the accelerator is absent.
	HWAccel string
}

// DefaultConfig returns a config using the tools found on PATH
func DefaultConfig() Config {
	return Config{
		FFmpegPath:  FFmpegCommand,
		FFprobePath: FFprobeCommand,
		FFplayPath:  FFplayCommand,
	}
}

// withDefaults fills empty tool paths
func (c Config) withDefaults() Config {
	if c.FFmpegPath == "" {
		c.FFmpegPath = FFmpegCommand
	}
	if c.FFprobePath == "" {
		c.FFprobePath = FFprobeCommand
	}
	if c.FFplayPath == "" {
		c.FFplayPath = FFplayCommand
	}
	c.HWAccel = strings.TrimSpace(c.HWAccel)
	return c
}

// Service runs the FFmpeg tools as local processes
type Service struct {
	cfg              Config
	runner           commandRunner
	probeWAV         func(path string) (float64, error)
	lookPath         func(string) (string, error)
	terminateTimeout time.Duration
}

// NewService creates a gateway backed by real processes
func NewService(cfg Config) *Service {
	return &Service{
		cfg:              cfg.withDefaults(),
		runner:           &execRunner{},
		probeWAV:         ProbeWAVHeader,
		lookPath:         exec.LookPath,
		terminateTimeout: TerminateTimeout,
	}
}

// Config returns the effective tool configuration
func (s *Service) Config() Config {
	return s.cfg
}

// ProbeDuration asks ffprobe for the duration and falls back to reading the
// WAV header when ffprobe is missing or fails.
func (s *Service) ProbeDuration(ctx context.Context, path string) (float64, error) {
	res, err := s.runner.Run(ctx, s.cfg.FFprobePath, BuildProbeArgs(path)...)
	var probeErr error
	if err != nil {
		if !res.Launched {
			probeErr = newLaunchError(FFprobeCommand, err)
		} else {
			probeErr = fmt.Errorf("ffprobe duration: %w\n%s", err, strings.TrimSpace(res.Stderr))
		}
	} else {
		duration, perr := parseProbeOutput(res.Stdout)
		if perr == nil {
			return duration, nil
		}
		probeErr = perr
	}

	log.Printf("ffprobe failed for %s, reading WAV header instead: %v", path, probeErr)

	duration, werr := s.probeWAV(path)
	if werr == nil && duration > 0 {
		return duration, nil
	}
	if werr == nil {
		werr = fmt.Errorf("wav header: non-positive duration %v", duration)
	}
	return 0, &ProbeError{Path: path, Err: errors.Join(probeErr, werr)}
}

// StartPlayback launches ffplay without a window, starting at fromSeconds
func (s *Service) StartPlayback(path string, fromSeconds float64) (Playback, error) {
	args := BuildPlaybackArgs(path, fromSeconds)
	p, err := startProcess(s.cfg.FFplayPath, args)
	if err != nil {
		return nil, newLaunchError(FFplayCommand, err)
	}
	log.Printf("ffplay started (pid %d) at %s for %s", p.Pid(), FormatSeconds(fromSeconds), path)
	return p, nil
}

// TerminatePlayback kills the player and waits up to TerminateTimeout.
// Terminating a player that already exited is not an error.
func (s *Service) TerminatePlayback(pb Playback) error {
	if pb == nil {
		return nil
	}
	p, ok := pb.(*Process)
	if !ok {
		return fmt.Errorf("unsupported playback handle %T", pb)
	}
	return p.Terminate(s.terminateTimeout)
}

// ExportRange runs ffmpeg to write [begin, end] of path to outputPath,
// overwriting any existing file. No retries are attempted.
func (s *Service) ExportRange(ctx context.Context, path string, begin, end float64, outputPath string) error {
	args := s.BuildExportArgs(path, begin, end, outputPath)
	res, err := s.runner.Run(ctx, s.cfg.FFmpegPath, args...)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return &ExportError{OutputPath: outputPath, ExitCode: res.ExitCode, Err: ctx.Err()}
	}
	if !res.Launched {
		return &ExportError{OutputPath: outputPath, ExitCode: -1, Err: newLaunchError(FFmpegCommand, err)}
	}
	return &ExportError{
		OutputPath: outputPath,
		ExitCode:   res.ExitCode,
		Output:     strings.TrimSpace(res.Stderr),
		Err:        fmt.Errorf("ffmpeg export: %w", err),
	}
}

// BuildProbeArgs builds the ffprobe arguments for a duration query
func BuildProbeArgs(path string) []string {
	return []string{
		"-v", FFprobeLogLevel,
		"-show_entries", FFprobeShowEntries,
		"-of", FFprobeOutputFormat,
		path,
	}
}

// BuildPlaybackArgs builds the ffplay arguments. The seek flag is omitted
// entirely when starting from 0.
func BuildPlaybackArgs(path string, fromSeconds float64) []string {
	args := []string{
		"-nodisp",   // No video window
		"-autoexit", // Exit at end of stream
		"-loglevel", PlayerLogLevel,
		"-hide_banner",
		"-vn",
	}
	if fromSeconds > 0 {
		args = append(args, "-ss", FormatSeconds(fromSeconds))
	}
	return append(args, "-i", path)
}

// BuildExportArgs builds the ffmpeg arguments for a trimmed export
func (s *Service) BuildExportArgs(path string, begin, end float64, outputPath string) []string {
	args := []string{"-y"} // Overwrite output file
	if s.cfg.HWAccel != "" {
		args = append(args, "-hwaccel", s.cfg.HWAccel)
	}
	return append(args,
		"-ss", FormatSeconds(begin),
		"-to", FormatSeconds(end),
		"-i", path,
		"-c:a", ExportAudioCodec,
		outputPath,
	)
}

// FormatSeconds renders seconds with millisecond precision for ffmpeg
func FormatSeconds(sec float64) string {
	return strconv.FormatFloat(sec, 'f', 3, 64)
}

// parseProbeOutput parses the single duration value printed by ffprobe
func parseProbeOutput(out string) (float64, error) {
	s := strings.TrimSpace(out)
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	if sec <= 0 {
		return 0, fmt.Errorf("parse duration %q: not positive", s)
	}
	return sec, nil
}
