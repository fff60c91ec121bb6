package ui

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
)

func TestSecondsAt(t *testing.T) {
	tests := []struct {
		x, width float32
		duration float64
		want     float64
	}{
		{0, 100, 125, 0},
		{50, 100, 125, 62.5},
		{100, 100, 125, 125},
		{150, 100, 125, 125},
		{-5, 100, 125, 0},
		{50, 0, 125, 0},
		{50, 100, 0, 0},
	}

	for _, tt := range tests {
		if got := secondsAt(tt.x, tt.width, tt.duration); got != tt.want {
			t.Errorf("secondsAt(%v, %v, %v) = %v, want %v", tt.x, tt.width, tt.duration, got, tt.want)
		}
	}
}

func TestSeekSlider_SetPositionIsSilent(t *testing.T) {
	test.NewApp()
	s := NewSeekSlider()
	s.SetDuration(125)

	drags := 0
	s.OnDrag = func(float64) { drags++ }
	s.SetPosition(30)
	s.SetPosition(500)

	if drags != 0 {
		t.Errorf("SetPosition must not report drags, got %d", drags)
	}
	if s.Seconds() != 125 {
		t.Errorf("Expected clamp to 125, got %v", s.Seconds())
	}
}

func TestSeekSlider_Hover(t *testing.T) {
	test.NewApp()
	s := NewSeekSlider()
	s.SetDuration(100)
	s.Resize(fyne.NewSize(200, 20))

	var hovered float64
	ended := false
	s.OnHover = func(sec float64) { hovered = sec }
	s.OnHoverEnd = func() { ended = true }

	s.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(50, 10)}})
	if hovered != 25 {
		t.Errorf("hover = %v, want 25", hovered)
	}
	s.MouseOut()
	if !ended {
		t.Error("Expected hover end")
	}
}

func TestSeekSlider_NoDurationIgnoresInput(t *testing.T) {
	test.NewApp()
	s := NewSeekSlider()

	called := false
	s.OnDrag = func(float64) { called = true }
	s.OnSeek = func(float64) { called = true }
	s.changed(0.5)
	s.changeEnded(0.5)

	if called {
		t.Error("Expected no callbacks without a duration")
	}
}

func TestSeekSlider_DragReportsOneSeekOnRelease(t *testing.T) {
	test.NewApp()
	s := NewSeekSlider()
	s.SetDuration(100)
	s.Resize(fyne.NewSize(200, 20))

	var seeks []float64
	s.OnSeek = func(sec float64) { seeks = append(seeks, sec) }

	s.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(150, 10)}})
	dragged := s.Seconds()
	if !s.Dragging() || dragged <= 0 {
		t.Fatalf("Expected an active drag, dragging=%v value=%v", s.Dragging(), dragged)
	}

	s.SetPosition(12.3)
	if s.Seconds() != dragged {
		t.Errorf("SetPosition moved a held handle to %v", s.Seconds())
	}

	s.DragEnd()
	if len(seeks) != 1 || seeks[0] != dragged {
		t.Errorf("seeks = %v, want [%v]", seeks, dragged)
	}

	s.SetPosition(12.3)
	if math.Abs(s.Seconds()-12.3) > SliderStep {
		t.Errorf("Expected position updates after release, got %v", s.Seconds())
	}
}
