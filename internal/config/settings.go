package config

import (
	"strings"

	"fyne.io/fyne/v2"
	"github.com/ytget/wav-chopper/internal/platform"
	"github.com/ytget/wav-chopper/internal/toolchain"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir   = "chop_output_directory"
	KeyLastOpenDir = "last_open_directory"
	KeyLanguage    = "app_language"
	KeyFFmpegPath  = "ffmpeg_path"
	KeyFFprobePath = "ffprobe_path"
	KeyFFplayPath  = "ffplay_path"
	KeyHWAccel     = "ffmpeg_hwaccel"
	KeyAutoReveal  = "auto_reveal_on_export"
)

// Default values
const (
	DefaultLanguage   = "system"
	DefaultAutoReveal = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the chop output folder. It is empty until the
// user picks one; exports are refused without it.
func (s *Settings) GetOutputDirectory() string {
	return s.app.Preferences().String(KeyOutputDir)
}

// SetOutputDirectory sets the chop output folder
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, strings.TrimSpace(dir))
}

// GetLastOpenDirectory returns the folder the file dialog starts in
func (s *Settings) GetLastOpenDirectory() string {
	dir := s.app.Preferences().String(KeyLastOpenDir)
	if dir != "" && platform.IsDirectory(dir) {
		return dir
	}
	defaultDir, err := platform.GetHomeMusicDir()
	if err != nil {
		return ""
	}
	return defaultDir
}

// SetLastOpenDirectory remembers the folder of the last loaded file
func (s *Settings) SetLastOpenDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastOpenDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnExport returns whether to reveal each chop after export
func (s *Settings) GetAutoRevealOnExport() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoReveal, DefaultAutoReveal)
}

// SetAutoRevealOnExport sets whether to reveal each chop after export
func (s *Settings) SetAutoRevealOnExport(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoReveal, autoReveal)
}

// GetToolOverrides returns tool paths set in the settings dialog. Empty
// fields mean no override.
func (s *Settings) GetToolOverrides() toolchain.Config {
	p := s.app.Preferences()
	return toolchain.Config{
		FFmpegPath:  p.String(KeyFFmpegPath),
		FFprobePath: p.String(KeyFFprobePath),
		FFplayPath:  p.String(KeyFFplayPath),
		HWAccel:     p.String(KeyHWAccel),
	}
}

// SetToolOverrides stores tool paths from the settings dialog
func (s *Settings) SetToolOverrides(cfg toolchain.Config) {
	p := s.app.Preferences()
	p.SetString(KeyFFmpegPath, strings.TrimSpace(cfg.FFmpegPath))
	p.SetString(KeyFFprobePath, strings.TrimSpace(cfg.FFprobePath))
	p.SetString(KeyFFplayPath, strings.TrimSpace(cfg.FFplayPath))
	p.SetString(KeyHWAccel, strings.TrimSpace(cfg.HWAccel))
}

// ToolchainConfig merges the environment configuration with the overrides
// saved in preferences. Preferences win.
func (s *Settings) ToolchainConfig() toolchain.Config {
	return MergeToolchain(LoadToolchain(), s.GetToolOverrides())
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
