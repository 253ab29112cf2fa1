package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"travel-check-service/internal/domain"
	"travel-check-service/internal/platform/obs"
)

// DefaultObservationTTL bounds cache staleness. Accounts that stay quiet
// longer than this fall back to the repository on the next login.
const DefaultObservationTTL = 24 * time.Hour

type cachedObservation struct {
	ObservedAt time.Time `json:"observed_at"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
}

// RedisLocationCache stores each account's last known observation in Redis
// as a JSON value with a TTL. It implements the LocationCache port.
type RedisLocationCache struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

func NewRedisLocationCache(client goredis.UniversalClient, ttl time.Duration) *RedisLocationCache {
	if ttl <= 0 {
		ttl = DefaultObservationTTL
	}

	return &RedisLocationCache{client: client, ttl: ttl}
}

func locationKey(accountID string) string {
	return "lastloc:" + accountID
}

// Fetch the cached last observation for an account. A missing key is a
// miss, not an error.
func (c *RedisLocationCache) GetLastObservation(
	ctx context.Context,
	accountID string,
) (_ *domain.Observation, _ bool, err error) {
	defer obs.Time(ctx, "cache.GetLastObservation")(&err)

	if c.client == nil {
		return nil, false, errors.New("location cache: client is nil")
	}
	if strings.TrimSpace(accountID) == "" {
		return nil, false, errors.New("get last observation: account id must be non-empty")
	}

	raw, err := c.client.Get(ctx, locationKey(accountID)).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get last observation: redis get: %w", err)
	}

	var entry cachedObservation
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, false, fmt.Errorf("get last observation: decode entry: %w", err)
	}

	return &domain.Observation{
		Timestamp: entry.ObservedAt,
		Latitude:  entry.Latitude,
		Longitude: entry.Longitude,
	}, true, nil
}

// Store the last observation for an account, refreshing the TTL.
func (c *RedisLocationCache) SetLastObservation(
	ctx context.Context,
	accountID string,
	observation domain.Observation,
) (err error) {
	defer obs.Time(ctx, "cache.SetLastObservation")(&err)

	if c.client == nil {
		return errors.New("location cache: client is nil")
	}
	if strings.TrimSpace(accountID) == "" {
		return errors.New("set last observation: account id must be non-empty")
	}

	raw, err := json.Marshal(cachedObservation{
		ObservedAt: observation.Timestamp.UTC(),
		Latitude:   observation.Latitude,
		Longitude:  observation.Longitude,
	})
	if err != nil {
		return fmt.Errorf("set last observation: encode entry: %w", err)
	}

	if err := c.client.Set(ctx, locationKey(accountID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set last observation: redis set: %w", err)
	}

	return nil
}
