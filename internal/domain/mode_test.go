package domain

import "testing"

func TestButtonModeMapping(t *testing.T) {
	want := map[Button]Mode{
		ButtonA: ModeClock,
		ButtonB: ModeWeather,
		ButtonC: ModeISS,
		ButtonD: ModeGame,
		ButtonE: ModeSetup,
	}

	for b, m := range want {
		if got := b.Mode(); got != m {
			t.Errorf("button %s mode = %s, want %s", b, got, m)
		}
	}
}

func TestParseButton(t *testing.T) {
	for _, b := range Buttons {
		got, err := ParseButton(b.String())
		if err != nil {
			t.Fatalf("parse %q: unexpected error: %v", b.String(), err)
		}
		if got != b {
			t.Errorf("parse %q = %v, want %v", b.String(), got, b)
		}
	}

	if got, err := ParseButton(" C "); err != nil || got != ButtonC {
		t.Errorf("parse \" C \" = %v, %v; want c, nil", got, err)
	}

	for _, bad := range []string{"", "f", "ab", "1"} {
		if _, err := ParseButton(bad); err == nil {
			t.Errorf("parse %q: expected error", bad)
		}
	}
}

func TestCoordinatesCacheKey(t *testing.T) {
	c := Coordinates{Lat: 51.5074, Lon: -0.1278}
	if got := c.CacheKey(1); got != "51.5,-0.1" {
		t.Fatalf("cache key = %q, want %q", got, "51.5,-0.1")
	}
	if got := c.CacheKey(-3); got != "52,-0" {
		t.Fatalf("cache key = %q, want %q", got, "52,-0")
	}
}
