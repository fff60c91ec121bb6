package playback

// Package playback tracks the play position of an external player that
// reports nothing back. Position is derived from wall-clock time elapsed since
// the last start, so it drifts from the real player by at most one tick.
