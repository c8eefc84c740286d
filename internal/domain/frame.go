package domain

import "time"

// A line of text drawn at pixel offset (X, Y), magnified by Scale.
type TextLine struct {
	Text  string `json:"text"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Scale int    `json:"scale"`
}

// Frame is everything the gadget currently shows: the text on the
// display and the backlight color behind it.
type Frame struct {
	Mode      Mode
	Lines     []TextLine
	Backlight Color
	UpdatedAt time.Time
}

// Line builds a scale-2 line, the size every mode draws with.
func Line(text string, x, y int) TextLine {
	return TextLine{Text: text, X: x, Y: y, Scale: 2}
}
