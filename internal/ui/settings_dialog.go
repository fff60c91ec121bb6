package ui

import (
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/wav-chopper/internal/config"
	"github.com/ytget/wav-chopper/internal/toolchain"
)

// SettingsDialog edits tool paths, the hardware decoding hint, the language
// and the auto-reveal flag.
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	ffmpegEntry      *widget.Entry
	ffprobeEntry     *widget.Entry
	ffplayEntry      *widget.Entry
	hwaccelEntry     *widget.Entry
	languageSelect   *widget.Select
	autoRevealCheck  *widget.Check
	languageByLabel  map[string]string
	labelForLanguage map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.ffmpegEntry = sd.newToolEntry(toolchain.FFmpegCommand)
	sd.ffprobeEntry = sd.newToolEntry(toolchain.FFprobeCommand)
	sd.ffplayEntry = sd.newToolEntry(toolchain.FFplayCommand)

	sd.hwaccelEntry = widget.NewEntry()
	sd.hwaccelEntry.SetPlaceHolder(l.GetText(KeyHWAccelHint))

	// Language selection shows display names, stores codes
	sd.languageByLabel = make(map[string]string)
	sd.labelForLanguage = make(map[string]string)
	var labels []string
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageByLabel[label] = code
		sd.labelForLanguage[code] = label
		labels = append(labels, label)
	}
	sort.Strings(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	sd.autoRevealCheck = widget.NewCheck(l.GetText(KeyAutoReveal), nil)

	checkBtn := widget.NewButton(l.GetText(KeyCheckTools), sd.onCheckTools)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyFFprobePath)+":"),
		sd.ffprobeEntry,
		widget.NewLabel(l.GetText(KeyFFplayPath)+":"),
		sd.ffplayEntry,
		widget.NewLabel(l.GetText(KeyFFmpegPath)+":"),
		sd.ffmpegEntry,
		container.NewHBox(checkBtn),

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyHWAccel)+":"),
		sd.hwaccelEntry,
		sd.autoRevealCheck,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// newToolEntry creates a path entry showing the default command
func (sd *SettingsDialog) newToolEntry(tool string) *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder(tool)
	return e
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	overrides := sd.settings.GetToolOverrides()
	sd.ffmpegEntry.SetText(overrides.FFmpegPath)
	sd.ffprobeEntry.SetText(overrides.FFprobePath)
	sd.ffplayEntry.SetText(overrides.FFplayPath)
	sd.hwaccelEntry.SetText(overrides.HWAccel)
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnExport())
	if label, ok := sd.labelForLanguage[sd.settings.GetLanguage()]; ok {
		sd.languageSelect.SetSelected(label)
	}
}

// enteredOverrides returns the tool overrides currently typed in
func (sd *SettingsDialog) enteredOverrides() toolchain.Config {
	return toolchain.Config{
		FFmpegPath:  strings.TrimSpace(sd.ffmpegEntry.Text),
		FFprobePath: strings.TrimSpace(sd.ffprobeEntry.Text),
		FFplayPath:  strings.TrimSpace(sd.ffplayEntry.Text),
		HWAccel:     strings.TrimSpace(sd.hwaccelEntry.Text),
	}
}

// onCheckTools resolves the entered tools and reports what is missing
func (sd *SettingsDialog) onCheckTools() {
	cfg := config.MergeToolchain(config.LoadToolchain(), sd.enteredOverrides())
	statuses := toolchain.NewService(cfg).Check()

	missing := toolchain.MissingTools(statuses)
	if len(missing) == 0 {
		dialog.ShowInformation(sd.localization.GetText(KeyCheckTools), sd.localization.GetText(KeyToolsOK), sd.window)
		return
	}

	var lines []string
	for _, st := range statuses {
		lines = append(lines, fmt.Sprintf("%s: %s", st.Tool, st.Message))
	}
	dialog.ShowInformation(sd.localization.GetText(KeyCheckTools), strings.Join(lines, "\n"), sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetToolOverrides(sd.enteredOverrides())
	sd.settings.SetAutoRevealOnExport(sd.autoRevealCheck.Checked)

	if code, ok := sd.languageByLabel[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
