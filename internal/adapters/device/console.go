package device

import (
	"iss-display-gadget/internal/domain"
	"log"
	"strings"
	"sync"
)

// ConsoleDisplay logs frames instead of drawing them. Repeated identical
// frames are logged once.
type ConsoleDisplay struct {
	mu   sync.Mutex
	last string
}

func (d *ConsoleDisplay) Render(frame domain.Frame) error {
	texts := make([]string, 0, len(frame.Lines))
	for _, l := range frame.Lines {
		texts = append(texts, l.Text)
	}
	line := strings.Join(texts, " | ")

	d.mu.Lock()
	defer d.mu.Unlock()
	if line == d.last {
		return nil
	}
	d.last = line

	log.Printf("display mode=%s text=%q", frame.Mode, line)
	return nil
}

// ConsoleBacklight logs backlight changes.
type ConsoleBacklight struct {
	// Quiet suppresses logging; flashes are otherwise very chatty.
	Quiet bool
}

func (b ConsoleBacklight) SetBacklight(c domain.Color) error {
	if !b.Quiet {
		log.Printf("backlight color=%s", c)
	}
	return nil
}
