package services

import (
	"context"
	"iss-display-gadget/internal/domain"
	"iss-display-gadget/internal/ports"
	"log"
	"time"
)

// FlashStep is the on and off time of one backlight flash.
const FlashStep = 200 * time.Millisecond

// Screen drives the display and backlight together. Hardware errors are
// logged; a broken display never stops a mode.
type Screen struct {
	display   ports.Display
	backlight ports.Backlight
	sleeper   ports.Sleeper
	now       func() time.Time
}

func NewScreen(display ports.Display, backlight ports.Backlight, sleeper ports.Sleeper) *Screen {
	if sleeper == nil {
		sleeper = SystemSleeper{}
	}
	return &Screen{display: display, backlight: backlight, sleeper: sleeper, now: time.Now}
}

// Show sets the backlight, then clears the display and draws lines.
func (s *Screen) Show(mode domain.Mode, backlight domain.Color, lines ...domain.TextLine) {
	s.Backlight(backlight)

	frame := domain.Frame{
		Mode:      mode,
		Lines:     lines,
		Backlight: backlight,
		UpdatedAt: s.now(),
	}
	if err := s.display.Render(frame); err != nil {
		log.Printf("display render failed mode=%s: %v", mode, err)
	}
}

func (s *Screen) Backlight(c domain.Color) {
	if err := s.backlight.SetBacklight(c); err != nil {
		log.Printf("backlight set failed color=%s: %v", c, err)
	}
}

// Flash blinks the backlight times times. When offFirst is set each blink
// is off-then-on, leaving the backlight at on; otherwise on-then-off.
func (s *Screen) Flash(ctx context.Context, on domain.Color, times int, offFirst bool) error {
	first, second := on, domain.Off
	if offFirst {
		first, second = domain.Off, on
	}

	for i := 0; i < times; i++ {
		s.Backlight(first)
		if err := s.sleeper.Sleep(ctx, FlashStep); err != nil {
			return err
		}
		s.Backlight(second)
		if err := s.sleeper.Sleep(ctx, FlashStep); err != nil {
			return err
		}
	}
	return nil
}
