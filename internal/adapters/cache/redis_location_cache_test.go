package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"travel-check-service/internal/domain"
)

func setupTestCache(t *testing.T, ttl time.Duration) (*RedisLocationCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	return NewRedisLocationCache(client, ttl), mr
}

func TestRedisLocationCacheRoundTrip(t *testing.T) {
	c, _ := setupTestCache(t, time.Hour)
	ctx := context.Background()

	observation := domain.Observation{
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Latitude:  40.7128,
		Longitude: -74.0060,
	}

	if err := c.SetLastObservation(ctx, "acct-1", observation); err != nil {
		t.Fatalf("SetLastObservation: %v", err)
	}

	got, ok, err := c.GetLastObservation(ctx, "acct-1")
	if err != nil {
		t.Fatalf("GetLastObservation: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if !got.Timestamp.Equal(observation.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, observation.Timestamp)
	}
	if got.Latitude != observation.Latitude || got.Longitude != observation.Longitude {
		t.Errorf("coordinates = (%v, %v), want (%v, %v)",
			got.Latitude, got.Longitude, observation.Latitude, observation.Longitude)
	}
}

func TestRedisLocationCacheMiss(t *testing.T) {
	c, _ := setupTestCache(t, time.Hour)

	got, ok, err := c.GetLastObservation(context.Background(), "acct-unknown")
	if err != nil {
		t.Fatalf("GetLastObservation: %v", err)
	}
	if ok || got != nil {
		t.Errorf("expected a miss, got ok=%v obs=%+v", ok, got)
	}
}

func TestRedisLocationCacheEntriesExpire(t *testing.T) {
	c, mr := setupTestCache(t, time.Minute)
	ctx := context.Background()

	observation := domain.Observation{
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Latitude:  1,
		Longitude: 2,
	}
	if err := c.SetLastObservation(ctx, "acct-1", observation); err != nil {
		t.Fatalf("SetLastObservation: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	_, ok, err := c.GetLastObservation(ctx, "acct-1")
	if err != nil {
		t.Fatalf("GetLastObservation: %v", err)
	}
	if ok {
		t.Error("expected the entry to expire")
	}
}

func TestRedisLocationCacheRejectsBlankAccount(t *testing.T) {
	c, _ := setupTestCache(t, time.Hour)
	ctx := context.Background()

	if _, _, err := c.GetLastObservation(ctx, " "); err == nil {
		t.Error("expected error for blank account id on get")
	}
	if err := c.SetLastObservation(ctx, "", domain.Observation{}); err == nil {
		t.Error("expected error for blank account id on set")
	}
}
