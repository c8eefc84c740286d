package services

import (
	"iss-display-gadget/internal/domain"
	"math"
)

// Mean Earth radius in miles.
const EarthRadiusMiles = 3956

// HaversineMiles returns the great-circle distance between two points.
func HaversineMiles(from, to domain.Coordinates) float64 {
	lat1, lon1 := from.Radians()
	lat2, lon2 := to.Radians()

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)

	// Floating point error can push √a past 1 near antipodes.
	h := math.Min(1, math.Max(0, math.Sqrt(a)))
	c := 2 * math.Asin(h)

	return c * EarthRadiusMiles
}

// RoundMiles rounds a distance to whole miles, half to even.
func RoundMiles(d float64) int {
	return int(math.RoundToEven(d))
}
