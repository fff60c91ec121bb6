package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/wav-chopper/internal/config"
	"github.com/ytget/wav-chopper/internal/model"
	"github.com/ytget/wav-chopper/internal/platform"
	"github.com/ytget/wav-chopper/internal/session"
	"github.com/ytget/wav-chopper/internal/timecode"
	"github.com/ytget/wav-chopper/internal/toolchain"
)

// GatewayFactory builds a toolchain for the given configuration
type GatewayFactory func(cfg toolchain.Config) toolchain.Gateway

// RootUI is the chopper window
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	session      *session.Session
	settings     *config.Settings
	localization *Localization
	newGateway   GatewayFactory

	// Source and output
	loadBtn     *widget.Button
	outputBtn   *widget.Button
	fileLabel   *widget.Label
	outputLabel *widget.Label

	// Transport
	timeText   *canvas.Text
	hoverLabel *widget.Label
	slider     *SeekSlider
	playBtn    *widget.Button

	// Chop group
	chopCard    *widget.Card
	beginLabel  *widget.Label
	endLabel    *widget.Label
	beginEntry  *widget.Entry
	endEntry    *widget.Entry
	setBeginBtn *widget.Button
	setEndBtn   *widget.Button
	exportBtn   *widget.Button

	chopsLabel *widget.Label
	chopList   *widget.List

	ticker *ticker
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, sess *session.Session, settings *config.Settings, newGateway GatewayFactory) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		session:      sess,
		settings:     settings,
		localization: localization,
		newGateway:   newGateway,
	}
	ui.ticker = newTicker(TickInterval, ui.onTick)

	if dir := settings.GetOutputDirectory(); dir != "" && sess.OutputDir() == "" {
		sess.SetOutputDir(dir)
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	window.SetOnClosed(ui.Close)

	log.Printf("UI setup completed successfully")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization
	ui.createMenu()

	// Source row
	ui.loadBtn = widget.NewButton(l.GetText(KeyLoadWAV), ui.onLoadClick)
	ui.loadBtn.Importance = widget.HighImportance
	ui.fileLabel = widget.NewLabel(l.GetText(KeyNoFileLoaded))
	ui.fileLabel.Truncation = fyne.TextTruncateEllipsis

	// Output row
	ui.outputBtn = widget.NewButton(l.GetText(KeySelectOutput), ui.onSelectOutputClick)
	ui.outputLabel = widget.NewLabel("")
	ui.outputLabel.Truncation = fyne.TextTruncateEllipsis
	ui.updateOutputLabel()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	sourceRow := container.NewBorder(nil, nil, ui.loadBtn, settingsBtn, ui.fileLabel)
	outputRow := container.NewBorder(nil, nil, ui.outputBtn, nil, ui.outputLabel)

	// Time display
	ui.timeText = canvas.NewText("", nil)
	ui.timeText.TextSize = theme.TextHeadingSize()
	ui.timeText.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	ui.timeText.Alignment = fyne.TextAlignCenter

	ui.hoverLabel = widget.NewLabel("")
	ui.hoverLabel.Alignment = fyne.TextAlignCenter
	ui.hoverLabel.TextStyle = fyne.TextStyle{Monospace: true}

	// Seek slider
	ui.slider = NewSeekSlider()
	ui.slider.OnDrag = ui.onSliderDrag
	ui.slider.OnSeek = ui.onSeek
	ui.slider.OnHover = ui.onHover
	ui.slider.OnHoverEnd = func() { ui.hoverLabel.SetText("") }

	ui.playBtn = widget.NewButton(l.GetText(KeyPlay), ui.onTogglePlay)

	transport := container.NewVBox(
		ui.timeText,
		ui.slider,
		ui.hoverLabel,
		container.NewCenter(ui.playBtn),
	)

	// Chop group
	ui.beginEntry = ui.newTimeEntry()
	ui.endEntry = ui.newTimeEntry()
	ui.beginLabel = widget.NewLabel(l.GetText(KeyBegin) + ":")
	ui.endLabel = widget.NewLabel(l.GetText(KeyEnd) + ":")
	ui.setBeginBtn = widget.NewButton(l.GetText(KeySetBegin), ui.onMarkBegin)
	ui.setEndBtn = widget.NewButton(l.GetText(KeySetEnd), ui.onMarkEnd)
	ui.exportBtn = widget.NewButton(l.GetText(KeyExport), ui.onExportClick)
	ui.exportBtn.Importance = widget.HighImportance

	beginRow := container.NewHBox(ui.beginLabel, fixedWidthEntry(ui.beginEntry), ui.setBeginBtn)
	endRow := container.NewHBox(ui.endLabel, fixedWidthEntry(ui.endEntry), ui.setEndBtn)
	ui.chopCard = widget.NewCard(l.GetText(KeyChop), "", container.NewVBox(beginRow, endRow, container.NewHBox(ui.exportBtn)))

	// Exported chops
	ui.chopsLabel = widget.NewLabel("")
	ui.chopsLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.chopList = widget.NewList(
		func() int { return ui.session.Chops().Len() },
		func() fyne.CanvasObject { return ui.createChopItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateChopItem(id, obj) },
	)

	top := container.NewVBox(
		sourceRow,
		outputRow,
		widget.NewSeparator(),
		transport,
		ui.chopCard,
		ui.chopsLabel,
	)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.chopList))
	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)

	ui.updateChopsLabel()
	ui.updateTimeDisplay(0)
}

// newTimeEntry creates an HH:MM:SS:CC entry
func (ui *RootUI) newTimeEntry() *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder("00:00:00:00")
	e.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		_, err := timecode.Parse(s)
		return err
	}
	return e
}

// fixedWidthEntry keeps time entries narrow inside an HBox
func fixedWidthEntry(e *widget.Entry) fyne.CanvasObject {
	return container.NewGridWrap(fyne.NewSize(TimeEntryWidth, e.MinSize().Height), e)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	quitItem := fyne.NewMenuItem(l.GetText(KeyQuit), ui.app.Quit)
	quitItem.IsQuit = true

	fileMenu := fyne.NewMenu(l.GetText(KeyFile),
		fyne.NewMenuItem(l.GetText(KeyLoadWAV), ui.onLoadClick),
		fyne.NewMenuItem(l.GetText(KeySelectOutput), ui.onSelectOutputClick),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings),
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	languages := l.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	for _, code := range codes {
		langCode := code
		item := fyne.NewMenuItem(languages[code], func() { ui.onLanguageChange(langCode) })
		item.Checked = l.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.loadBtn.SetText(l.GetText(KeyLoadWAV))
	ui.outputBtn.SetText(l.GetText(KeySelectOutput))
	ui.beginLabel.SetText(l.GetText(KeyBegin) + ":")
	ui.endLabel.SetText(l.GetText(KeyEnd) + ":")
	ui.setBeginBtn.SetText(l.GetText(KeySetBegin))
	ui.setEndBtn.SetText(l.GetText(KeySetEnd))
	ui.exportBtn.SetText(l.GetText(KeyExport))
	ui.chopCard.SetTitle(l.GetText(KeyChop))
	ui.updateChopsLabel()
	ui.updateFileLabel()
	ui.updateOutputLabel()
	ui.updateTransport()
	ui.chopList.Refresh()
}

// onLoadClick opens the WAV file picker
func (ui *RootUI) onLoadClick() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		ui.loadFile(path)
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(WAVExtensions))

	if dir := ui.settings.GetLastOpenDirectory(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fd.SetLocation(lister)
		}
	}
	fd.Show()
}

// loadFile probes path and resets the transport and chop fields
func (ui *RootUI) loadFile(path string) {
	ui.ticker.Stop()

	src, err := ui.session.Load(context.Background(), path)
	if err != nil {
		log.Printf("Failed to load %s: %v", path, err)
		ui.showError(err)
		ui.updateTransport()
		return
	}

	ui.settings.SetLastOpenDirectory(filepath.Dir(path))
	ui.slider.SetDuration(src.Duration)
	ui.beginEntry.SetText("")
	ui.endEntry.SetText("")
	ui.updateFileLabel()
	ui.updateTimeDisplay(0)
	ui.updateTransport()
}

// onSelectOutputClick opens the folder picker for chops
func (ui *RootUI) onSelectOutputClick() {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if uri == nil {
			return
		}
		ui.setOutputDir(uri.Path())
	}, ui.window)

	if dir := ui.outputDialogStart(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fd.SetLocation(lister)
		}
	}
	fd.Show()
}

// outputDialogStart returns the folder the output picker opens in: the
// current output folder, else the default chops folder, else Music.
func (ui *RootUI) outputDialogStart() string {
	if dir := ui.session.OutputDir(); platform.IsDirectory(dir) {
		return dir
	}
	if dir, err := platform.GetDefaultChopsDir(); err == nil && platform.IsDirectory(dir) {
		return dir
	}
	dir, err := platform.GetHomeMusicDir()
	if err != nil {
		return ""
	}
	return dir
}

// setOutputDir stores the chop folder in the session and preferences
func (ui *RootUI) setOutputDir(dir string) {
	ui.session.SetOutputDir(dir)
	ui.settings.SetOutputDirectory(dir)
	ui.updateOutputLabel()
}

// onTogglePlay handles the play/stop button
func (ui *RootUI) onTogglePlay() {
	if err := ui.session.TogglePlay(); err != nil {
		ui.showError(err)
	}
	ui.afterTransportChange()
}

// onTypedKey toggles playback with the space bar when no entry has focus
func (ui *RootUI) onTypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeySpace {
		ui.onTogglePlay()
	}
}

// onSliderDrag follows the handle. While stopped every move is a seek;
// while playing the player is relaunched only when the drag ends.
func (ui *RootUI) onSliderDrag(seconds float64) {
	if ui.session.Playing() {
		ui.timeText.Text = ui.formatTimeDisplay(seconds)
		ui.timeText.Refresh()
		return
	}
	ui.onSeek(seconds)
}

// onSeek moves the session position
func (ui *RootUI) onSeek(seconds float64) {
	if err := ui.session.Seek(seconds); err != nil {
		ui.showError(err)
	}
	ui.afterTransportChange()
}

// onHover shows the time under the pointer
func (ui *RootUI) onHover(seconds float64) {
	ui.hoverLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyHover), timecode.Format(seconds)))
}

// afterTransportChange syncs the ticker and widgets with the session
func (ui *RootUI) afterTransportChange() {
	if ui.session.State().Transport().IsActive() {
		ui.ticker.Start()
	} else {
		ui.ticker.Stop()
	}
	ui.updateTimeDisplay(ui.session.Position())
	ui.updateTransport()
}

// onTick runs on the UI goroutine every TickInterval while playing
func (ui *RootUI) onTick() {
	res := ui.session.Tick()
	ui.updateTimeDisplay(res.Position)
	if res.Ended {
		ui.ticker.Stop()
		ui.updateTransport()
	}
}

// onMarkBegin copies the current position into the begin field
func (ui *RootUI) onMarkBegin() {
	if _, ok := ui.session.Source(); !ok {
		ui.showError(&session.ValidationError{Op: "mark", Err: session.ErrNoSource})
		return
	}
	ui.beginEntry.SetText(timecode.Format(ui.session.MarkBegin()))
}

// onMarkEnd copies the current position into the end field
func (ui *RootUI) onMarkEnd() {
	if _, ok := ui.session.Source(); !ok {
		ui.showError(&session.ValidationError{Op: "mark", Err: session.ErrNoSource})
		return
	}
	ui.endEntry.SetText(timecode.Format(ui.session.MarkEnd()))
}

// onExportClick exports the typed range as the next chop
func (ui *RootUI) onExportClick() {
	record, err := ui.session.Export(context.Background(), ui.beginEntry.Text, ui.endEntry.Text)
	if err != nil {
		ui.showError(err)
		return
	}

	ui.beginEntry.SetText("")
	ui.endEntry.SetText("")
	ui.updateChopsLabel()
	ui.chopList.Refresh()
	ui.chopList.ScrollToBottom()

	if ui.settings.GetAutoRevealOnExport() {
		ui.onRevealFile(record.OutputPath)
	}
}

// createChopItem creates a list row template
func (ui *RootUI) createChopItem() fyne.CanvasObject {
	row := NewChopRow(model.ChopRecord{}, ui.localization)
	row.SetCallbacks(ui.onRevealFile, ui.onOpenFile, ui.onCopyPath)
	return row
}

// updateChopItem binds a record to a list row
func (ui *RootUI) updateChopItem(id widget.ListItemID, item fyne.CanvasObject) {
	record, ok := ui.session.Chops().At(id)
	if !ok {
		return
	}
	if row, ok := item.(*ChopRow); ok {
		row.refreshTexts()
		row.UpdateRecord(record)
	}
}

// onRevealFile reveals a chop in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		dialog.ShowInformation(ui.localization.GetText(KeyErrorOpenFile), err.Error(), ui.window)
	}
}

// onOpenFile opens a chop with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		dialog.ShowInformation(ui.localization.GetText(KeyErrorOpenFile), err.Error(), ui.window)
	}
}

// onCopyPath copies a chop path to the clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	ui.app.Clipboard().SetContent(filePath)
	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyPathCopied)), ui.window.Canvas())
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies new tool paths and language
func (ui *RootUI) onSettingsSaved() {
	if ui.newGateway != nil {
		ui.session.SetGateway(ui.newGateway(ui.settings.ToolchainConfig()))
	}
	ui.onLanguageChange(ui.settings.GetLanguage())
	ui.afterTransportChange()
	dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeySettingsSaved), ui.window)
}

// ReportMissingTools shows one dialog naming any tool that cannot be found
func (ui *RootUI) ReportMissingTools(statuses []toolchain.ToolStatus) {
	missing := toolchain.MissingTools(statuses)
	if len(missing) == 0 {
		return
	}
	err := &toolchain.LaunchError{Tool: strings.Join(missing, ", "), NotFound: true}
	ui.showError(err)
}

// updateTimeDisplay shows seconds on the time label and slider
func (ui *RootUI) updateTimeDisplay(seconds float64) {
	if ui.slider.Dragging() {
		return
	}
	ui.timeText.Text = ui.formatTimeDisplay(seconds)
	ui.timeText.Refresh()
	ui.slider.SetPosition(seconds)
}

// formatTimeDisplay renders "current / total"
func (ui *RootUI) formatTimeDisplay(seconds float64) string {
	return fmt.Sprintf(TimeDisplayFormat, timecode.Format(seconds), timecode.Format(ui.session.Duration()))
}

// updateTransport sets the play button caption from the session state
func (ui *RootUI) updateTransport() {
	switch ui.session.State().Transport() {
	case model.TransportPlaying:
		ui.playBtn.SetText(ui.localization.GetText(KeyStop))
	default:
		ui.playBtn.SetText(ui.localization.GetText(KeyPlay))
	}
}

// updateChopsLabel shows the chop count and their total length
func (ui *RootUI) updateChopsLabel() {
	title := ui.localization.GetText(KeyChops)
	chops := ui.session.Chops()
	if chops.Len() == 0 {
		ui.chopsLabel.SetText(title)
		return
	}
	ui.chopsLabel.SetText(fmt.Sprintf(ChopsSummaryFormat, title, chops.Len(), timecode.Format(chops.TotalLength())))
}

// updateFileLabel shows the loaded file and its duration
func (ui *RootUI) updateFileLabel() {
	src, ok := ui.session.Source()
	if !ok {
		ui.fileLabel.SetText(ui.localization.GetText(KeyNoFileLoaded))
		return
	}
	ui.fileLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyLoaded), src.Label()))
}

// updateOutputLabel shows the chop folder
func (ui *RootUI) updateOutputLabel() {
	dir := ui.session.OutputDir()
	if dir == "" {
		ui.outputLabel.SetText(ui.localization.GetText(KeyOutputNotSet))
		return
	}
	ui.outputLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyOutput), dir))
}

// showError shows err as a single dialog
func (ui *RootUI) showError(err error) {
	title, message := ui.describeError(err)
	dialog.ShowInformation(title, message, ui.window)
}

// describeError maps an error to a dialog title and message
func (ui *RootUI) describeError(err error) (string, string) {
	l := ui.localization

	var launchErr *toolchain.LaunchError
	var exportErr *toolchain.ExportError
	var parseErr *timecode.ParseError

	switch {
	case errors.Is(err, session.ErrNoSource):
		return l.GetText(KeyNoFile), l.GetText(KeyNoFileMsg)
	case errors.Is(err, session.ErrNoOutputDir):
		return l.GetText(KeyNoFolder), l.GetText(KeyNoFolderMsg)
	case errors.Is(err, session.ErrInvalidRange):
		return l.GetText(KeyInvalidRange), l.GetText(KeyInvalidRangeMsg)
	case errors.As(err, &parseErr):
		return l.GetText(KeyInvalidTime), err.Error()
	case errors.Is(err, toolchain.ErrDurationUnknown):
		return l.GetText(KeyInvalidFile), l.GetText(KeyInvalidFileMsg)
	case errors.As(err, &launchErr) && launchErr.NotFound:
		return fmt.Sprintf(l.GetText(KeyToolMissing), launchErr.Tool), err.Error()
	case errors.As(err, &exportErr):
		return l.GetText(KeyExportFailed), err.Error()
	case errors.As(err, &launchErr):
		return l.GetText(KeyPlaybackFailed), err.Error()
	default:
		return l.GetText(KeyError), err.Error()
	}
}

// Close stops the ticker and any running player
func (ui *RootUI) Close() {
	ui.ticker.Stop()
	if err := ui.session.Close(); err != nil {
		log.Printf("Failed to stop player on close: %v", err)
	}
}
