package domain

import "time"

// Observation records one ISS refresh cycle.
type Observation struct {
	ID            int64
	ObservedAt    time.Time
	Position      Coordinates
	DistanceMiles int
	Country       string
	City          string
}
