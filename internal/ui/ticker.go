package ui

import (
	"time"

	"fyne.io/fyne/v2"
)

// ticker calls fn on the UI goroutine every interval between Start and Stop.
// Start and Stop must be called from the UI goroutine.
type ticker struct {
	interval time.Duration
	fn       func()
	stop     chan struct{}
}

func newTicker(interval time.Duration, fn func()) *ticker {
	return &ticker{interval: interval, fn: fn}
}

// Running reports whether the ticker is started
func (t *ticker) Running() bool {
	return t.stop != nil
}

// Start begins ticking; it is a no-op when already running
func (t *ticker) Start() {
	if t.stop != nil {
		return
	}
	stop := make(chan struct{})
	t.stop = stop

	go func() {
		tk := time.NewTicker(t.interval)
		defer tk.Stop()
		for {
			select {
			case <-stop:
				return
			case <-tk.C:
				fyne.Do(func() {
					// Drop ticks queued before Stop
					if t.stop != stop {
						return
					}
					t.fn()
				})
			}
		}
	}()
}

// Stop halts ticking
func (t *ticker) Stop() {
	if t.stop == nil {
		return
	}
	close(t.stop)
	t.stop = nil
}
