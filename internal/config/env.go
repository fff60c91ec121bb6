package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/ytget/wav-chopper/internal/toolchain"
)

// Environment variables for the toolchain
const (
	EnvFFmpeg  = "WAVCHOP_FFMPEG"
	EnvFFprobe = "WAVCHOP_FFPROBE"
	EnvFFplay  = "WAVCHOP_FFPLAY"
	EnvHWAccel = "WAVCHOP_HWACCEL"
)

var dotenvOnce sync.Once

// LoadDotEnv loads .env from the working directory once. A missing file is
// not an error; existing environment variables are not overridden.
func LoadDotEnv() {
	dotenvOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to load .env: %v", err)
		}
	})
}

// LoadToolchain builds the tool configuration from the environment
func LoadToolchain() toolchain.Config {
	LoadDotEnv()
	def := toolchain.DefaultConfig()
	return toolchain.Config{
		FFmpegPath:  envStr(EnvFFmpeg, def.FFmpegPath),
		FFprobePath: envStr(EnvFFprobe, def.FFprobePath),
		FFplayPath:  envStr(EnvFFplay, def.FFplayPath),
		HWAccel:     envStr(EnvHWAccel, def.HWAccel),
	}
}

// MergeToolchain applies non-empty override fields on top of base
func MergeToolchain(base, override toolchain.Config) toolchain.Config {
	if override.FFmpegPath != "" {
		base.FFmpegPath = override.FFmpegPath
	}
	if override.FFprobePath != "" {
		base.FFprobePath = override.FFprobePath
	}
	if override.FFplayPath != "" {
		base.FFplayPath = override.FFplayPath
	}
	if override.HWAccel != "" {
		base.HWAccel = override.HWAccel
	}
	return base
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
