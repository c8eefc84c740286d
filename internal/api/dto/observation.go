package dto

import "time"

type ObservationResponse struct {
	ObservedAt    time.Time `json:"observed_at"`
	Lat           float64   `json:"lat"`
	Lon           float64   `json:"lon"`
	DistanceMiles int       `json:"distance_miles"`
	Country       string    `json:"country"`
	City          string    `json:"city"`
}

type ListObservationsResponse struct {
	Observations []ObservationResponse `json:"observations"`
}
