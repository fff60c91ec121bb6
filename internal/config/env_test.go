package config

import (
	"testing"

	"github.com/ytget/wav-chopper/internal/toolchain"
)

func TestLoadToolchain_Defaults(t *testing.T) {
	for _, key := range []string{EnvFFmpeg, EnvFFprobe, EnvFFplay, EnvHWAccel} {
		t.Setenv(key, "")
	}

	cfg := LoadToolchain()
	if cfg != toolchain.DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestMergeToolchain(t *testing.T) {
	base := toolchain.Config{FFmpegPath: "a", FFprobePath: "b", FFplayPath: "c"}
	got := MergeToolchain(base, toolchain.Config{FFprobePath: "x", HWAccel: "auto"})

	want := toolchain.Config{FFmpegPath: "a", FFprobePath: "x", FFplayPath: "c", HWAccel: "auto"}
	if got != want {
		t.Errorf("MergeToolchain = %+v, want %+v", got, want)
	}
}
