package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iss-display-gadget/internal/domain"
	"iss-display-gadget/internal/platform/obs"
	"strings"
	"time"
)

// SQLGeocodeCache is a Postgres-backed cache mapping rounded coordinates
// to reverse-geocoded addresses. Entries older than TTL are ignored when
// TTL is positive.
type SQLGeocodeCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSQLGeocodeCache(db *sql.DB, ttl time.Duration) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db, TTL: ttl}
}

// Fetch the cached address for a coordinate key.
func (s *SQLGeocodeCache) Get(ctx context.Context, key string) (_ domain.Address, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.Address{}, false, errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return domain.Address{}, false, errors.New("get geocode cache: key must not be empty")
	}

	q := `
	SELECT country, city, suburb, state
    FROM reverse_geocode_cache
    WHERE coord_key = $1
        AND cached_at >= $2;
	`

	var addr domain.Address
	err = s.DB.QueryRowContext(ctx, q, key, cutoff(s.TTL)).
		Scan(&addr.Country, &addr.City, &addr.Suburb, &addr.State)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Address{}, false, nil
	}
	if err != nil {
		return domain.Address{}, false, fmt.Errorf("get geocode cache: query reverse_geocode_cache table: %w", err)
	}

	return addr, true, nil
}

// Store a coordinate key -> address mapping in the cache.
func (s *SQLGeocodeCache) Put(ctx context.Context, key string, addr domain.Address) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("insert geocode cache: empty coordinate key")
	}

	_, err := s.DB.ExecContext(ctx, `
	INSERT INTO reverse_geocode_cache (coord_key, country, city, suburb, state, cached_at)
    VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (coord_key) DO UPDATE
	SET country = EXCLUDED.country,
		city = EXCLUDED.city,
		suburb = EXCLUDED.suburb,
		state = EXCLUDED.state,
		cached_at = EXCLUDED.cached_at;
	`, key, addr.Country, addr.City, addr.Suburb, addr.State, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("insert geocode cache key=%q: %w", key, err)
	}

	return nil
}

// cutoff returns the oldest acceptable cached_at in unix seconds.
func cutoff(ttl time.Duration) int64 {
	if ttl <= 0 {
		return 0
	}
	return time.Now().Add(-ttl).Unix()
}
