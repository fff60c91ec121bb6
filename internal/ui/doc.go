package ui

// Package ui contains the Fyne desktop window for chopping WAV files.
// It forwards user gestures to a session.Session, refreshes the time display
// from a ticker while playing, and shows every failure as a single dialog.
// All UI strings are localized via Localization.
