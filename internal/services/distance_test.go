package services

import (
	"iss-display-gadget/internal/domain"
	"math"
	"testing"
)

func TestHaversineMiles(t *testing.T) {
	tests := []struct {
		name      string
		from, to  domain.Coordinates
		want      float64
		tolerance float64
	}{
		{
			name: "same point",
			from: domain.Coordinates{Lat: 52.967658, Lon: -1.163135},
			to:   domain.Coordinates{Lat: 52.967658, Lon: -1.163135},
			want: 0,
		},
		{
			name:      "one degree of latitude at the equator",
			from:      domain.Coordinates{Lat: 0, Lon: 0},
			to:        domain.Coordinates{Lat: 1, Lon: 0},
			want:      69.04,
			tolerance: 0.05,
		},
		{
			name:      "antipodes",
			from:      domain.Coordinates{Lat: 0, Lon: 0},
			to:        domain.Coordinates{Lat: 0, Lon: 180},
			want:      math.Pi * EarthRadiusMiles,
			tolerance: 0.01,
		},
		{
			name:      "nottingham to paris",
			from:      domain.Coordinates{Lat: 52.967658, Lon: -1.163135},
			to:        domain.Coordinates{Lat: 48.8566, Lon: 2.3522},
			want:      322.4,
			tolerance: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineMiles(tt.from, tt.to)
			if math.IsNaN(got) {
				t.Fatalf("distance is NaN")
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Fatalf("distance = %.3f, want %.3f ± %.3f", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestHaversineMilesSymmetric(t *testing.T) {
	a := domain.Coordinates{Lat: 51.5, Lon: -0.12}
	b := domain.Coordinates{Lat: -33.86, Lon: 151.2}

	ab := HaversineMiles(a, b)
	ba := HaversineMiles(b, a)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("asymmetric: %f vs %f", ab, ba)
	}
}

func TestRoundMiles(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{499.4, 499},
		{500.5, 500},
		{501.5, 502},
		{1000.6, 1001},
	}
	for _, tt := range tests {
		if got := RoundMiles(tt.in); got != tt.want {
			t.Fatalf("RoundMiles(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
