package device

import (
	"iss-display-gadget/internal/domain"
	"testing"
)

type nopDisplay struct{ renders int }

func (d *nopDisplay) Render(domain.Frame) error { d.renders++; return nil }

func TestMirrorTracksFrameAndBacklight(t *testing.T) {
	inner := &nopDisplay{}
	m := NewMirror(inner, ConsoleBacklight{Quiet: true})

	lines := []domain.TextLine{domain.Line("ISS 812 mi", 0, 0)}
	if err := m.Render(domain.Frame{Mode: domain.ModeISS, Lines: lines, Backlight: domain.TierClose}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if inner.renders != 1 {
		t.Fatalf("inner display renders = %d", inner.renders)
	}

	if err := m.SetBacklight(domain.Off); err != nil {
		t.Fatalf("SetBacklight: %v", err)
	}

	snap := m.Snapshot()
	if snap.Mode != domain.ModeISS || snap.Backlight != domain.Off {
		t.Fatalf("snapshot = %+v", snap)
	}

	lines[0].Text = "mutated"
	snap.Lines[0].Text = "mutated too"
	if got := m.Snapshot().Lines[0].Text; got != "ISS 812 mi" {
		t.Fatalf("mirror shares line storage: %q", got)
	}
}

func TestVirtualButtonsLatchOnePress(t *testing.T) {
	var v VirtualButtons

	if _, ok := v.Pressed(); ok {
		t.Fatalf("fresh panel reports a press")
	}

	v.Press(domain.ButtonB)
	v.Press(domain.ButtonC)

	b, ok := v.Pressed()
	if !ok || b != domain.ButtonC {
		t.Fatalf("Pressed = %v, %v; want c, true", b, ok)
	}
	if _, ok := v.Pressed(); ok {
		t.Fatalf("press reported twice")
	}
}

func TestMultiPanel(t *testing.T) {
	var first, second VirtualButtons
	panel := MultiPanel{&first, &second}

	second.Press(domain.ButtonE)
	if b, ok := panel.Pressed(); !ok || b != domain.ButtonE {
		t.Fatalf("Pressed = %v, %v", b, ok)
	}

	first.Press(domain.ButtonA)
	second.Press(domain.ButtonD)
	if b, _ := panel.Pressed(); b != domain.ButtonA {
		t.Fatalf("first panel should win, got %v", b)
	}
	if b, _ := panel.Pressed(); b != domain.ButtonD {
		t.Fatalf("second panel press lost, got %v", b)
	}
}

func TestConsoleDisplaySkipsRepeats(t *testing.T) {
	var d ConsoleDisplay
	f := domain.Frame{Mode: domain.ModeClock, Lines: []domain.TextLine{domain.Line("12:00:00", 10, 15)}}

	if err := d.Render(f); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if d.last != "12:00:00" {
		t.Fatalf("last = %q", d.last)
	}
	if err := d.Render(f); err != nil {
		t.Fatalf("Render repeat: %v", err)
	}
}
