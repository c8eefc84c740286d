package services

import "iss-display-gadget/internal/domain"

type tier struct {
	maxMiles float64
	color    domain.Color
}

// Ordered by distance; the first tier whose bound is not exceeded wins.
var tiers = []tier{
	{maxMiles: 500, color: domain.TierNear},
	{maxMiles: 1000, color: domain.TierClose},
	{maxMiles: 2000, color: domain.TierMid},
	{maxMiles: 4000, color: domain.TierFar},
}

// TierForDistance maps a distance in miles to its backlight color.
// Anything beyond the last bound, NaN included, is TierDistant.
func TierForDistance(miles float64) domain.Color {
	for _, t := range tiers {
		if miles <= t.maxMiles {
			return t.color
		}
	}
	return domain.TierDistant
}
