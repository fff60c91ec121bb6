package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// SeekSlider is a slider measured in seconds. Clicking or dragging reports
// seek targets; hovering reports the time under the pointer.
type SeekSlider struct {
	widget.Slider

	duration float64
	updating bool // set while the position is changed from code
	dragging bool // set between the first Dragged and DragEnd

	// OnDrag is called for every value change made by the user
	OnDrag func(seconds float64)
	// OnSeek is called once the user releases the slider or clicks it
	OnSeek func(seconds float64)
	// OnHover is called with the time under the pointer
	OnHover func(seconds float64)
	// OnHoverEnd is called when the pointer leaves the slider
	OnHoverEnd func()
}

var (
	_ desktop.Hoverable = (*SeekSlider)(nil)
	_ fyne.Draggable    = (*SeekSlider)(nil)
)

// NewSeekSlider creates a seek slider with no duration. It reports nothing
// until SetDuration is called.
func NewSeekSlider() *SeekSlider {
	s := &SeekSlider{}
	s.Min = 0
	s.Max = 1
	s.Step = SliderStep
	s.ExtendBaseWidget(s)
	s.Slider.OnChanged = s.changed
	s.Slider.OnChangeEnded = s.changeEnded
	return s
}

// SetDuration sets the slider range to [0, seconds] and resets it to 0
func (s *SeekSlider) SetDuration(seconds float64) {
	s.duration = seconds
	s.updating = true
	defer func() { s.updating = false }()

	if seconds <= 0 {
		s.Max = 1
	} else {
		s.Max = seconds
	}
	s.SetValue(0)
	s.Refresh()
}

// Duration returns the slider range
func (s *SeekSlider) Duration() float64 {
	return s.duration
}

// SetPosition moves the handle without reporting a seek. It does nothing
// while the user holds the handle.
func (s *SeekSlider) SetPosition(seconds float64) {
	if s.dragging {
		return
	}
	s.updating = true
	defer func() { s.updating = false }()
	s.SetValue(clampSeconds(seconds, s.duration))
}

// Seconds returns the handle position in seconds
func (s *SeekSlider) Seconds() float64 {
	return s.Value
}

// Dragging reports whether the user is holding the handle
func (s *SeekSlider) Dragging() bool {
	return s.dragging
}

// Dragged implements fyne.Draggable
func (s *SeekSlider) Dragged(e *fyne.DragEvent) {
	s.dragging = true
	s.Slider.Dragged(e)
}

// DragEnd implements fyne.Draggable. The release is reported as one seek to
// the dragged value.
func (s *SeekSlider) DragEnd() {
	if !s.dragging {
		s.Slider.DragEnd()
		return
	}
	s.dragging = false

	s.updating = true
	s.Slider.DragEnd()
	s.updating = false

	s.seek(s.Value)
}

// MouseIn implements desktop.Hoverable
func (s *SeekSlider) MouseIn(e *desktop.MouseEvent) {
	s.Slider.MouseIn(e)
	s.hover(e.Position)
}

// MouseMoved implements desktop.Hoverable
func (s *SeekSlider) MouseMoved(e *desktop.MouseEvent) {
	s.Slider.MouseMoved(e)
	s.hover(e.Position)
}

// MouseOut implements desktop.Hoverable
func (s *SeekSlider) MouseOut() {
	s.Slider.MouseOut()
	if s.OnHoverEnd != nil {
		s.OnHoverEnd()
	}
}

func (s *SeekSlider) hover(pos fyne.Position) {
	if s.OnHover == nil || s.duration <= 0 {
		return
	}
	s.OnHover(secondsAt(pos.X, s.Size().Width, s.duration))
}

func (s *SeekSlider) changed(v float64) {
	if s.updating || s.duration <= 0 || s.OnDrag == nil {
		return
	}
	s.OnDrag(v)
}

func (s *SeekSlider) changeEnded(v float64) {
	if s.updating || s.dragging {
		return
	}
	s.seek(v)
}

func (s *SeekSlider) seek(v float64) {
	if s.duration <= 0 || s.OnSeek == nil {
		return
	}
	s.OnSeek(v)
}

// secondsAt maps a horizontal offset within width to a time in [0, duration]
func secondsAt(x, width float32, duration float64) float64 {
	if width <= 0 || duration <= 0 {
		return 0
	}
	ratio := float64(x / width)
	return clampSeconds(ratio*duration, duration)
}

func clampSeconds(v, duration float64) float64 {
	if v < 0 {
		return 0
	}
	if v > duration {
		return duration
	}
	return v
}
