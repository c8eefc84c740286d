package geocode

import (
	"context"
	"errors"
	"fmt"
	"iss-display-gadget/internal/domain"
	"iss-display-gadget/internal/platform/obs"
	"iss-display-gadget/internal/ports"
	"log"
)

// CachedGeocoder checks a persistent cache before delegating to the
// upstream geocoder. Keys round coordinates to Precision decimals.
//
// Cache read or write failures are logged and never fail a lookup.
type CachedGeocoder struct {
	upstream  ports.ReverseGeocoder
	cache     ports.GeocodeCache
	precision int
}

func NewCachedGeocoder(upstream ports.ReverseGeocoder, cache ports.GeocodeCache, precision int) (*CachedGeocoder, error) {
	if upstream == nil {
		return nil, errors.New("cached geocoder: upstream is nil")
	}
	if cache == nil {
		return nil, errors.New("cached geocoder: cache is nil")
	}
	return &CachedGeocoder{upstream: upstream, cache: cache, precision: precision}, nil
}

func (c *CachedGeocoder) Reverse(ctx context.Context, at domain.Coordinates) (_ domain.Address, err error) {
	defer obs.Time(ctx, "geocode.cached.Reverse")(&err)

	key := at.CacheKey(c.precision)

	addr, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		log.Printf("geocode cache read failed key=%s: %v", key, err)
	} else if ok {
		return addr, nil
	}

	addr, err = c.upstream.Reverse(ctx, at)
	if err != nil {
		return domain.Address{}, fmt.Errorf("cached geocoder: %w", err)
	}

	if err := c.cache.Put(ctx, key, addr); err != nil {
		log.Printf("geocode cache write failed key=%s: %v", key, err)
	}

	return addr, nil
}
