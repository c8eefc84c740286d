package services

import (
	"context"
	"fmt"
	"iss-display-gadget/internal/domain"
	"iss-display-gadget/internal/ports"
	"log"
	"time"
)

// ModeRunner is one screen of the gadget. Run returns nil when ctx is
// cancelled or the mode has nothing more to do.
type ModeRunner interface {
	Run(ctx context.Context) error
}

const clockTick = 500 * time.Millisecond

// ClockMode shows a 12 hour clock synced once via the time source.
type ClockMode struct {
	screen  *Screen
	clock   ports.TimeSource
	sleeper ports.Sleeper
}

func NewClockMode(screen *Screen, clock ports.TimeSource, sleeper ports.Sleeper) *ClockMode {
	if sleeper == nil {
		sleeper = SystemSleeper{}
	}
	return &ClockMode{screen: screen, clock: clock, sleeper: sleeper}
}

func (m *ClockMode) Run(ctx context.Context) error {
	if err := m.clock.Sync(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		log.Printf("clock sync failed, using host clock: %v", err)
	}

	for {
		m.screen.Show(domain.ModeClock, domain.Dusk, domain.Line(FormatClock(m.clock.Now()), 10, 15))

		if err := m.sleeper.Sleep(ctx, clockTick); err != nil {
			return nil
		}
	}
}

// FormatClock renders t as hh:mm:ss on a 12 hour dial (00 shows as 12).
func FormatClock(t time.Time) string {
	h := t.Hour()
	if h > 12 {
		h -= 12
	}
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, t.Minute(), t.Second())
}

// StaticMode draws a fixed screen once.
type StaticMode struct {
	screen    *Screen
	mode      domain.Mode
	backlight domain.Color
	lines     []domain.TextLine
}

func (m *StaticMode) Run(ctx context.Context) error {
	m.screen.Show(m.mode, m.backlight, m.lines...)
	return nil
}

func NewWeatherMode(screen *Screen) *StaticMode {
	return &StaticMode{
		screen:    screen,
		mode:      domain.ModeWeather,
		backlight: domain.Magenta,
		lines:     []domain.TextLine{domain.Line("Weather mode...", 0, 0)},
	}
}

func NewGameMode(screen *Screen) *StaticMode {
	return &StaticMode{
		screen:    screen,
		mode:      domain.ModeGame,
		backlight: domain.Blue,
		lines: []domain.TextLine{
			domain.Line("Game mode...", 0, 0),
			domain.Line("Game mode...", 0, 40),
		},
	}
}

// NewSetupMode builds the setup screen. A non-nil cause adds a line naming
// the failure kind that led here.
func NewSetupMode(screen *Screen, cause error) *StaticMode {
	lines := []domain.TextLine{domain.Line("Setup mode...", 0, 0)}
	if cause != nil {
		lines = append(lines, domain.Line(KindOf(cause).String(), 0, 22))
	}
	return &StaticMode{
		screen:    screen,
		mode:      domain.ModeSetup,
		backlight: domain.Magenta,
		lines:     lines,
	}
}
