package domain

import "fmt"

// Backlight intensity triple.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var (
	Off = Color{}

	// Distance tiers, nearest first.
	TierNear    = Color{R: 0, G: 64, B: 0}
	TierClose   = Color{R: 0, G: 32, B: 0}
	TierMid     = Color{R: 128, G: 64, B: 0}
	TierFar     = Color{R: 128, G: 16, B: 0}
	TierDistant = Color{R: 64, G: 0, B: 0}

	Orange  = Color{R: 128, G: 16, B: 0}
	Green   = Color{R: 0, G: 64, B: 0}
	Magenta = Color{R: 255, G: 0, B: 255}
	Blue    = Color{R: 0, G: 0, B: 255}
	Dusk    = Color{R: 77, G: 77, B: 128}
)

func (c Color) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}
