package domain

import (
	"fmt"
	"math"
)

// Immutable geographic coordinates in degrees (latitude, longitude).
// Values are not range-checked.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return both components converted to radians.
func (c Coordinates) Radians() (lat, lon float64) {
	return c.Lat * math.Pi / 180, c.Lon * math.Pi / 180
}

// CacheKey rounds the coordinates to the given number of decimals so that
// nearby fixes share a reverse-geocode cache entry.
func (c Coordinates) CacheKey(decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("%.*f,%.*f", decimals, c.Lat, decimals, c.Lon)
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lon)
}
