package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/wav-chopper/internal/model"
	"github.com/ytget/wav-chopper/internal/timecode"
)

// LengthLabelWidth keeps the chop length column aligned
const LengthLabelWidth float32 = 96

// ChopRow is one exported chop in the list: its label, export time, length
// and buttons to reveal, play or copy the file.
type ChopRow struct {
	widget.BaseWidget

	record       model.ChopRecord
	localization *Localization

	labelLabel   *widget.Label
	lengthLabel  *widget.Label
	createdLabel *widget.Label

	revealBtn *widget.Button // reveal in file manager
	openBtn   *widget.Button // open with default app (player)
	copyBtn   *widget.Button

	onReveal   func(filePath string)
	onOpen     func(filePath string)
	onCopyPath func(filePath string)
}

// NewChopRow creates a new chop row widget
func NewChopRow(record model.ChopRecord, localization *Localization) *ChopRow {
	cr := &ChopRow{
		record:       record,
		localization: localization,
	}
	cr.ExtendBaseWidget(cr)
	cr.createUI()
	cr.updateFromRecord()
	return cr
}

// SetCallbacks sets the action callbacks
func (cr *ChopRow) SetCallbacks(
	onReveal func(filePath string),
	onOpen func(filePath string),
	onCopyPath func(filePath string),
) {
	cr.onReveal = onReveal
	cr.onOpen = onOpen
	cr.onCopyPath = onCopyPath
}

// UpdateRecord shows another record in this row
func (cr *ChopRow) UpdateRecord(record model.ChopRecord) {
	cr.record = record
	cr.updateFromRecord()
	cr.Refresh()
}

// createUI creates the UI components
func (cr *ChopRow) createUI() {
	cr.labelLabel = widget.NewLabel("")
	cr.labelLabel.TextStyle = fyne.TextStyle{Monospace: true}
	cr.labelLabel.Truncation = fyne.TextTruncateEllipsis

	cr.lengthLabel = widget.NewLabel("")
	cr.lengthLabel.Alignment = fyne.TextAlignTrailing
	cr.lengthLabel.Importance = widget.SuccessImportance

	cr.createdLabel = widget.NewLabel("")
	cr.createdLabel.Importance = widget.LowImportance

	cr.revealBtn = widget.NewButton(cr.localization.GetText(KeyReveal), func() {
		cr.invoke(cr.onReveal)
	})
	cr.openBtn = widget.NewButton(cr.localization.GetText(KeyOpen), func() {
		cr.invoke(cr.onOpen)
	})
	cr.copyBtn = widget.NewButton(cr.localization.GetText(KeyCopyPath), func() {
		cr.invoke(cr.onCopyPath)
	})
	for _, btn := range []*widget.Button{cr.revealBtn, cr.openBtn, cr.copyBtn} {
		btn.Importance = widget.MediumImportance
	}
}

// invoke calls an action with the current output path
func (cr *ChopRow) invoke(action func(string)) {
	if action == nil {
		log.Printf("No action set for chop %s", cr.record.ID)
		return
	}
	if cr.record.OutputPath == "" {
		return
	}
	action(cr.record.OutputPath)
}

// updateFromRecord updates UI components from the record
func (cr *ChopRow) updateFromRecord() {
	cr.labelLabel.SetText(cr.record.Label())
	cr.lengthLabel.SetText(timecode.Format(cr.record.Length()))
	if cr.record.CreatedAt.IsZero() {
		cr.createdLabel.SetText("")
	} else {
		cr.createdLabel.SetText(cr.record.CreatedAt.Format(CreatedTimeFormat))
	}

	if cr.record.OutputPath == "" {
		cr.revealBtn.Disable()
		cr.openBtn.Disable()
		cr.copyBtn.Disable()
		return
	}
	cr.revealBtn.Enable()
	cr.openBtn.Enable()
	cr.copyBtn.Enable()
}

// refreshTexts updates button captions after a language change
func (cr *ChopRow) refreshTexts() {
	cr.revealBtn.SetText(cr.localization.GetText(KeyReveal))
	cr.openBtn.SetText(cr.localization.GetText(KeyOpen))
	cr.copyBtn.SetText(cr.localization.GetText(KeyCopyPath))
}

// CreateRenderer creates the widget renderer
func (cr *ChopRow) CreateRenderer() fyne.WidgetRenderer {
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	actions := container.NewHBox(cr.revealBtn, cr.openBtn, cr.copyBtn)
	right := container.NewHBox(cr.createdLabel, fixedWidth(LengthLabelWidth, cr.lengthLabel), actions)
	content := container.NewBorder(nil, nil, nil, right, cr.labelLabel)

	return widget.NewSimpleRenderer(content)
}
