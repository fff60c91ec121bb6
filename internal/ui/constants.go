package ui

import (
	"github.com/ytget/wav-chopper/internal/playback"
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Text fragments
const (
	TimeDisplayFormat  = "%s / %s"
	ChopsSummaryFormat = "%s (%d, %s)"
	CreatedTimeFormat  = "15:04:05"
)

// Layout sizing
const (
	WindowWidth  float32 = 820
	WindowHeight float32 = 560

	TimeEntryWidth float32 = 120

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 460
)

// Slider resolution in seconds
const (
	SliderStep = 0.01
)

// TickInterval is the refresh period of the time display while playing
const TickInterval = playback.TickInterval

// WAV file extensions accepted by the open dialog
var WAVExtensions = []string{".wav", ".WAV", ".wave"}
