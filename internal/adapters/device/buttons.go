package device

import (
	"iss-display-gadget/internal/domain"
	"iss-display-gadget/internal/ports"

	"go.uber.org/atomic"
)

// VirtualButtons is a button panel pressed from software, e.g. the HTTP API.
// It latches the most recent press until it is read.
type VirtualButtons struct {
	pending atomic.Int32
}

func (v *VirtualButtons) Press(b domain.Button) {
	v.pending.Store(int32(b))
}

func (v *VirtualButtons) Pressed() (domain.Button, bool) {
	b := domain.Button(v.pending.Swap(0))
	if b == 0 {
		return 0, false
	}
	return b, true
}

// MultiPanel reads several panels and reports the first press found.
type MultiPanel []ports.ButtonPanel

func (m MultiPanel) Pressed() (domain.Button, bool) {
	for _, p := range m {
		if b, ok := p.Pressed(); ok {
			return b, true
		}
	}
	return 0, false
}
