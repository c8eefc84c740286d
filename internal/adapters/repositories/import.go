package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"iss-display-gadget/internal/domain"
	"iss-display-gadget/internal/ports"
	"os"
	"strings"
	"time"
)

// ObservationRecord is one entry of an observations export read by
// ImportFromJSON.
type ObservationRecord struct {
	ObservedAt    time.Time `json:"observed_at"`
	Lat           float64   `json:"lat"`
	Lon           float64   `json:"lon"`
	DistanceMiles int       `json:"distance_miles"`
	Country       string    `json:"country"`
	City          string    `json:"city"`
}

// Populate the observation history from a JSON file (an array of records).
// Returns the number of rows imported.
func ImportFromJSON(ctx context.Context, repo ports.ObservationRepository, jsonPath string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("import observations: read %q: %w", jsonPath, err)
	}

	var data []ObservationRecord
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("import observations: parse json: %w", err)
	}

	for i, item := range data {
		if item.ObservedAt.IsZero() {
			return i, fmt.Errorf("import observations: item at index %d: observed_at is required", i+1)
		}

		country := strings.TrimSpace(item.Country)
		if country == "" {
			country = domain.OceanCountry
		}

		obs := domain.Observation{
			ObservedAt:    item.ObservedAt,
			Position:      domain.Coordinates{Lat: item.Lat, Lon: item.Lon},
			DistanceMiles: item.DistanceMiles,
			Country:       country,
			City:          strings.TrimSpace(item.City),
		}
		if err := repo.Record(ctx, obs); err != nil {
			return i, fmt.Errorf("import observations: item at index %d: %w", i+1, err)
		}
	}

	return len(data), nil
}
