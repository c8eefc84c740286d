package ports

import (
	"context"
	"iss-display-gadget/internal/domain"
)

// Contract for turning a coordinate into address fields.
type ReverseGeocoder interface {
	// Return the address at the coordinate. Fields the service does not
	// know are left empty; that is not an error.
	Reverse(ctx context.Context, at domain.Coordinates) (domain.Address, error)
}

// Persistent store for reverse-geocode results keyed by rounded coordinates.
type GeocodeCache interface {
	// Return the cached address and whether it was found.
	Get(ctx context.Context, key string) (domain.Address, bool, error)
	// Store an address under key.
	Put(ctx context.Context, key string, addr domain.Address) error
}
