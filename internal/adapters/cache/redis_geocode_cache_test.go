package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"iss-display-gadget/internal/domain"
)

func TestRedisGeocodeCacheRoundTripAndExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c := NewRedisGeocodeCache(client, time.Minute)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "0.0,0.0"); err != nil || ok {
		t.Fatalf("get on empty cache = ok=%v err=%v, want miss", ok, err)
	}

	want := domain.Address{Country: "Brazil", Suburb: "Copacabana"}
	if err := c.Put(ctx, "0.0,0.0", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "0.0,0.0")
	if err != nil || !ok {
		t.Fatalf("get = ok=%v err=%v, want hit", ok, err)
	}
	if got != want {
		t.Fatalf("address = %+v, want %+v", got, want)
	}

	if ttl := mr.TTL(redisKeyPrefix + "0.0,0.0"); ttl != time.Minute {
		t.Fatalf("ttl = %v, want 1m", ttl)
	}

	mr.FastForward(2 * time.Minute)
	if _, ok, _ := c.Get(ctx, "0.0,0.0"); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestRedisGeocodeCacheReportsCorruptEntries(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	mr.Set(redisKeyPrefix+"1.0,1.0", "not json")

	if _, _, err := NewRedisGeocodeCache(client, 0).Get(context.Background(), "1.0,1.0"); err == nil {
		t.Fatal("expected decode error")
	}
}
