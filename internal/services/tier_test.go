package services

import (
	"iss-display-gadget/internal/domain"
	"math"
	"testing"
)

func TestTierForDistance(t *testing.T) {
	tests := []struct {
		miles float64
		want  domain.Color
	}{
		{0, domain.Color{R: 0, G: 64, B: 0}},
		{500, domain.Color{R: 0, G: 64, B: 0}},
		{500.1, domain.Color{R: 0, G: 32, B: 0}},
		{1000, domain.Color{R: 0, G: 32, B: 0}},
		{1000.1, domain.Color{R: 128, G: 64, B: 0}},
		{2000, domain.Color{R: 128, G: 64, B: 0}},
		{2000.1, domain.Color{R: 128, G: 16, B: 0}},
		{4000, domain.Color{R: 128, G: 16, B: 0}},
		{4000.1, domain.Color{R: 64, G: 0, B: 0}},
		{10000, domain.Color{R: 64, G: 0, B: 0}},
		{math.NaN(), domain.Color{R: 64, G: 0, B: 0}},
	}

	for _, tt := range tests {
		if got := TierForDistance(tt.miles); got != tt.want {
			t.Errorf("TierForDistance(%v) = %s, want %s", tt.miles, got, tt.want)
		}
	}
}
