package toolchain

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
)

// ErrDurationUnknown is matched by every probe failure
var ErrDurationUnknown = errors.New("audio duration could not be determined")

// ProbeError reports that neither ffprobe nor the WAV header reader produced
// a usable duration.
type ProbeError struct {
	Path string
	Err  error
}

// Error formats probe failures for logs and dialogs
func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe %s: %v: %v", e.Path, ErrDurationUnknown, e.Err)
}

// Unwrap exposes the underlying causes
func (e *ProbeError) Unwrap() error {
	return e.Err
}

// Is makes every ProbeError match ErrDurationUnknown
func (e *ProbeError) Is(target error) bool {
	return target == ErrDurationUnknown
}

// LaunchError reports that an external tool could not be started.
// NotFound distinguishes a missing binary from other spawn failures.
type LaunchError struct {
	Tool     string
	NotFound bool
	Err      error
}

// Error formats launch failures for logs and dialogs
func (e *LaunchError) Error() string {
	if e.NotFound {
		return fmt.Sprintf("%s not found: install FFmpeg and ensure %s is on PATH", e.Tool, e.Tool)
	}
	return fmt.Sprintf("failed to start %s: %v", e.Tool, e.Err)
}

// Unwrap exposes the underlying exec error
func (e *LaunchError) Unwrap() error {
	return e.Err
}

// newLaunchError classifies a spawn error
func newLaunchError(tool string, err error) *LaunchError {
	return &LaunchError{
		Tool:     tool,
		NotFound: errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist),
		Err:      err,
	}
}

// ExportError reports a failed export. Err is a *LaunchError when ffmpeg
// could not be started; otherwise Output carries ffmpeg's diagnostics.
type ExportError struct {
	OutputPath string
	ExitCode   int
	Output     string
	Err        error
}

// Error formats export failures for logs and dialogs
func (e *ExportError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("export %s: %v", e.OutputPath, e.Err)
	}
	return fmt.Sprintf("export %s: %v (exit=%d)\n%s", e.OutputPath, e.Err, e.ExitCode, e.Output)
}

// Unwrap exposes the underlying error
func (e *ExportError) Unwrap() error {
	return e.Err
}
