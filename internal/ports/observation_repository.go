package ports

import (
	"context"
	"iss-display-gadget/internal/domain"
)

// Port: a boundary for recording and listing ISS observations.
type ObservationRepository interface {
	// Append one observation.
	Record(ctx context.Context, obs domain.Observation) error
	// Return the most recent observations, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Observation, error)
}
