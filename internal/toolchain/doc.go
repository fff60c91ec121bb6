package toolchain

// Package toolchain is the gateway to the external FFmpeg tools: ffprobe for
// duration, ffplay for live playback and ffmpeg for trimmed export. Every call
// goes through the Gateway interface so callers can substitute a fake.
