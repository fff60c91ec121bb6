//go:build integration

package toolchain

import (
	"context"
	"math"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestIntegration_ProbeAndExport(t *testing.T) {
	for _, tool := range []string{FFmpegCommand, FFprobeCommand} {
		if _, err := exec.LookPath(tool); err != nil {
			t.Skipf("%s not installed", tool)
		}
	}

	src := writeTestWAV(t, 5)
	s := NewService(DefaultConfig())
	ctx := context.Background()

	d, err := s.ProbeDuration(ctx, src)
	if err != nil {
		t.Fatalf("ProbeDuration: %v", err)
	}
	if math.Abs(d-5) > 0.05 {
		t.Fatalf("duration = %v, want 5", d)
	}

	out := filepath.Join(t.TempDir(), "chop_001.wav")
	if err := s.ExportRange(ctx, src, 1, 2.5, out); err != nil {
		t.Fatalf("ExportRange: %v", err)
	}
	got, err := ProbeWAVHeader(out)
	if err != nil {
		t.Fatalf("probe export: %v", err)
	}
	if math.Abs(got-1.5) > 0.05 {
		t.Errorf("exported length = %v, want 1.5", got)
	}
}
