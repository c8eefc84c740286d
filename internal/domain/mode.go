package domain

import (
	"fmt"
	"strings"
)

// Mode selects what the gadget shows.
type Mode int

const (
	ModeNone Mode = iota
	ModeClock
	ModeWeather
	ModeISS
	ModeGame
	ModeSetup
)

func (m Mode) String() string {
	switch m {
	case ModeClock:
		return "clock"
	case ModeWeather:
		return "weather"
	case ModeISS:
		return "iss"
	case ModeGame:
		return "game"
	case ModeSetup:
		return "setup"
	default:
		return "none"
	}
}

// One of the five front panel switches.
type Button int

const (
	ButtonA Button = iota + 1
	ButtonB
	ButtonC
	ButtonD
	ButtonE
)

// Buttons lists the switches in panel order.
var Buttons = []Button{ButtonA, ButtonB, ButtonC, ButtonD, ButtonE}

// Mode returns the mode a switch selects.
func (b Button) Mode() Mode {
	switch b {
	case ButtonA:
		return ModeClock
	case ButtonB:
		return ModeWeather
	case ButtonC:
		return ModeISS
	case ButtonD:
		return ModeGame
	case ButtonE:
		return ModeSetup
	default:
		return ModeNone
	}
}

func (b Button) String() string {
	if b < ButtonA || b > ButtonE {
		return "?"
	}
	return string(rune('a' + int(b-ButtonA)))
}

// ParseButton accepts a single letter a-e, case-insensitive.
func ParseButton(s string) (Button, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 1 || s[0] < 'a' || s[0] > 'e' {
		return 0, fmt.Errorf("parse button: unknown button %q", s)
	}
	return ButtonA + Button(s[0]-'a'), nil
}
