package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsKey = "dashboard:stats"

// StatsCache keeps the computed dashboard aggregate for a short TTL so that
// a busy admin screen does not rescan orders on every poll.
type StatsCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewStatsCache creates a new StatsCache.
func NewStatsCache(redis *RedisClient, ttl time.Duration) *StatsCache {
	return &StatsCache{redis: redis, ttl: ttl}
}

// Get unmarshals the cached stats into dst. The bool reports a cache hit.
func (c *StatsCache) Get(ctx context.Context, dst interface{}) (bool, error) {
	raw, err := c.redis.Get(ctx, statsKey)
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		// Treat a corrupt entry as a miss; it will be overwritten.
		return false, nil
	}
	return true, nil
}

// Set stores the stats value under the cache TTL.
func (c *StatsCache) Set(ctx context.Context, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, statsKey, string(raw), c.ttl)
}

// Invalidate drops the cached stats. Called after writes that change the
// aggregate (checkout, order status updates).
func (c *StatsCache) Invalidate(ctx context.Context) error {
	return c.redis.Delete(ctx, statsKey)
}
