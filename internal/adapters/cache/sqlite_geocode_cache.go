package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iss-display-gadget/internal/domain"
	"strings"
	"time"
)

// SQLite backed cache mapping rounded coordinates to addresses.
// Keys are expected to be consistent (e.g., produced by
// Coordinates.CacheKey) by the caller.
type SqliteGeocodeCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSqliteGeocodeCache(db *sql.DB, ttl time.Duration) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db, TTL: ttl}
}

// Fetch the cached address for a coordinate key.
func (s *SqliteGeocodeCache) Get(ctx context.Context, key string) (domain.Address, bool, error) {
	if s.DB == nil {
		return domain.Address{}, false, errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return domain.Address{}, false, errors.New("get geocode cache: key must not be empty")
	}

	q := `
	SELECT 
        country,
        city,
        suburb,
        state
    FROM reverse_geocode_cache
    WHERE coord_key = ?
        AND cached_at >= ?;
	`

	var addr domain.Address
	err := s.DB.QueryRowContext(ctx, q, key, cutoff(s.TTL)).
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
func (s *SqliteGeocodeCache) Put(ctx context.Context, key string, addr domain.Address) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("insert geocode cache: empty coordinate key")
	}

	_, err := s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO reverse_geocode_cache (
        coord_key,
        country,
        city,
        suburb,
        state,
        cached_at
    )
    VALUES (?, ?, ?, ?, ?, ?);
	`, key, addr.Country, addr.City, addr.Suburb, addr.State, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("insert geocode cache key=%q: %w", key, err)
	}

	return nil
}
