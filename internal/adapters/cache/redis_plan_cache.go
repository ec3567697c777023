package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"smart-routing-service/internal/platform/obs"
)

const planKeyPrefix = "routeplan:"

// RedisPlanCache is a Redis-backed cache for serialized optimize responses.
// Entries expire after the configured TTL; identical requests within the
// window are served without recomputation.
type RedisPlanCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisPlanCache(rdb *redis.Client, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{rdb: rdb, ttl: ttl}
}

// Get fetches a cached response by request digest. A missing key is not an
// error.
func (c *RedisPlanCache) Get(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	defer obs.Time(ctx, "plan.cache.Get")(&err)

	if c.rdb == nil {
		return nil, false, errors.New("plan cache: redis client is nil")
	}

	payload, err := c.rdb.Get(ctx, planKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: key %q: %w", key, err)
	}

	return payload, true, nil
}

// Put stores a serialized response under the request digest with the cache
// TTL.
func (c *RedisPlanCache) Put(ctx context.Context, key string, payload []byte) error {
	if c.rdb == nil {
		return errors.New("plan cache: redis client is nil")
	}

	if key == "" {
		return errors.New("put plan cache: key must not be empty")
	}

	if err := c.rdb.Set(ctx, planKeyPrefix+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("put plan cache: key %q: %w", key, err)
	}

	return nil
}
