package toolchain

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// ErrInvalidWAV is returned when the file has no readable RIFF/WAVE header
var ErrInvalidWAV = errors.New("not a valid WAV file")

// WAVInfo is the subset of the WAV header used for the fallback probe
type WAVInfo struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Duration   float64
}

// ReadWAVInfo reads the RIFF/WAVE header of path. The duration comes from
// the data chunk size (frame count) and the sample rate.
func ReadWAVInfo(path string) (WAVInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return WAVInfo{}, err
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return WAVInfo{}, fmt.Errorf("%s: %w", path, ErrInvalidWAV)
	}

	d, err := decoder.Duration()
	if err != nil {
		return WAVInfo{}, fmt.Errorf("wav duration: %w", err)
	}

	return WAVInfo{
		SampleRate: int(decoder.SampleRate),
		Channels:   int(decoder.NumChans),
		BitDepth:   int(decoder.BitDepth),
		Duration:   d.Seconds(),
	}, nil
}

// ProbeWAVHeader returns the duration in seconds read from the WAV header
func ProbeWAVHeader(path string) (float64, error) {
	info, err := ReadWAVInfo(path)
	if err != nil {
		return 0, err
	}
	return info.Duration, nil
}
