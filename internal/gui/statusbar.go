package gui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// flashDuration is how long a transient message stays visible before the
// status bar reverts to its base text.
const flashDuration = 2500 * time.Millisecond

// StatusBar is a single-line label with a persistent base message and
// transient flash messages (save confirmations, hints).
type StatusBar struct {
	label *widget.Label

	mu    sync.Mutex
	base  string
	timer *time.Timer
}

func NewStatusBar() *StatusBar {
	return &StatusBar{label: widget.NewLabel("")}
}

func (s *StatusBar) Object() fyne.CanvasObject {
	return s.label
}

// Set replaces the base message and cancels any pending flash.
func (s *StatusBar) Set(text string) {
	s.mu.Lock()
	s.base = text
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.label.SetText(text)
}

// Flash shows a transient message, then reverts to the base message.
func (s *StatusBar) Flash(text string) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(flashDuration, func() {
		s.mu.Lock()
		base := s.base
		s.timer = nil
		s.mu.Unlock()
		fyne.Do(func() {
			s.label.SetText(base)
		})
	})
	s.mu.Unlock()
	s.label.SetText(text)
}
