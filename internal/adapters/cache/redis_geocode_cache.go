package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iss-display-gadget/internal/domain"
	"iss-display-gadget/internal/platform/obs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "iss:geocode:"

// RedisGeocodeCache stores addresses as JSON strings with an optional
// expiry. A zero TTL keeps entries until evicted.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

func (r *RedisGeocodeCache) Get(ctx context.Context, key string) (_ domain.Address, _ bool, err error) {
	defer obs.Time(ctx, "geocode.redis.Get")(&err)

	if r.Client == nil {
		return domain.Address{}, false, errors.New("geocode cache: redis client is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return domain.Address{}, false, errors.New("get geocode cache: key must not be empty")
	}

	raw, err := r.Client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Address{}, false, nil
	}
	if err != nil {
		return domain.Address{}, false, fmt.Errorf("get geocode cache: redis get: %w", err)
	}

	var addr domain.Address
	if err := json.Unmarshal(raw, &addr); err != nil {
		return domain.Address{}, false, fmt.Errorf("get geocode cache: decode %q: %w", key, err)
	}

	return addr, true, nil
}

func (r *RedisGeocodeCache) Put(ctx context.Context, key string, addr domain.Address) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("insert geocode cache: empty coordinate key")
	}

	raw, err := json.Marshal(addr)
	if err != nil {
		return fmt.Errorf("insert geocode cache: encode: %w", err)
	}

	if err := r.Client.Set(ctx, redisKeyPrefix+key, raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert geocode cache key=%q: %w", key, err)
	}

	return nil
}
