package toolchain

import (
	"context"
)

// Gateway defines the three external tool operations used by a session.
type Gateway interface {
	// ProbeDuration returns the duration of the file in seconds, or an error
	// matching ErrDurationUnknown.
	ProbeDuration(ctx context.Context, path string) (float64, error)

	// StartPlayback launches a player at fromSeconds. Launch failures are
	// returned as *LaunchError.
	StartPlayback(path string, fromSeconds float64) (Playback, error)

	// TerminatePlayback kills the player and waits a bounded time for exit.
	TerminatePlayback(p Playback) error

	// ExportRange writes [begin, end] of path to outputPath. Failures are
	// returned as *ExportError.
	ExportRange(ctx context.Context, path string, begin, end float64, outputPath string) error
}

// Playback is a handle to a running player process.
type Playback interface {
	// Exited reports whether the player has exited on its own or was killed
	Exited() bool

	// Done is closed once the player has exited
	Done() <-chan struct{}

	// Err returns the player's exit error once it has exited
	Err() error
}
