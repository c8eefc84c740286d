package ports

import (
	"context"
	"iss-display-gadget/internal/domain"
	"time"
)

// Display draws text frames. The backlight is driven separately.
type Display interface {
	Render(frame domain.Frame) error
}

// Backlight sets the RGB backlight behind the display.
type Backlight interface {
	SetBacklight(c domain.Color) error
}

// ButtonPanel reports switch presses. Pressed returns each press once.
type ButtonPanel interface {
	Pressed() (domain.Button, bool)
}

// FrameSource exposes the last frame shown, for read-only consumers.
type FrameSource interface {
	Snapshot() domain.Frame
}

// NetworkConnector brings the uplink up.
type NetworkConnector interface {
	// Start association. Non-blocking.
	Connect(ctx context.Context) error
	// Connected reports whether the link is usable. A non-nil error means
	// association failed and will not recover.
	Connected(ctx context.Context) (bool, error)
}

// TimeSource supplies wall clock time for the clock mode.
type TimeSource interface {
	// Sync aligns the source with a reference clock.
	Sync(ctx context.Context) error
	Now() time.Time
}

// Sleeper pauses the caller. Sleep returns ctx.Err() if cancelled first.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}
