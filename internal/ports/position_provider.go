package ports

import (
	"context"
	"iss-display-gadget/internal/domain"
)

// Contract for retrieving the current ground position of the ISS.
type PositionProvider interface {
	// Return the sub-satellite point in degrees.
	Position(ctx context.Context) (domain.Coordinates, error)
}
