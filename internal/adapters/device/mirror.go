package device

import (
	"iss-display-gadget/internal/domain"
	"iss-display-gadget/internal/ports"
	"sync"
)

// Mirror sits in front of the real display and backlight and keeps a copy
// of what they show, so the API can read the current frame.
type Mirror struct {
	display   ports.Display
	backlight ports.Backlight

	mu    sync.RWMutex
	frame domain.Frame
}

func NewMirror(display ports.Display, backlight ports.Backlight) *Mirror {
	return &Mirror{display: display, backlight: backlight}
}

func (m *Mirror) Render(frame domain.Frame) error {
	m.mu.Lock()
	m.frame = frame
	m.frame.Lines = append([]domain.TextLine(nil), frame.Lines...)
	m.mu.Unlock()

	return m.display.Render(frame)
}

func (m *Mirror) SetBacklight(c domain.Color) error {
	m.mu.Lock()
	m.frame.Backlight = c
	m.mu.Unlock()

	return m.backlight.SetBacklight(c)
}

// Snapshot returns a copy of the current frame.
func (m *Mirror) Snapshot() domain.Frame {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f := m.frame
	f.Lines = append([]domain.TextLine(nil), m.frame.Lines...)
	return f
}
