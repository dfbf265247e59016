package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"transport-optimizer/internal/domain"
	"transport-optimizer/internal/platform/obs"

	redis "github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "optimizer:result:"

// RedisResultCache stores optimizer responses in Redis with a per-key expiry.
type RedisResultCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisResultCache connects using a redis:// URL.
func NewRedisResultCache(url string, ttl time.Duration) (*RedisResultCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis result cache: parse url: %w", err)
	}
	return &RedisResultCache{rdb: redis.NewClient(opt), ttl: ttl}, nil
}

func NewRedisResultCacheFromClient(rdb *redis.Client, ttl time.Duration) *RedisResultCache {
	return &RedisResultCache{rdb: rdb, ttl: ttl}
}

func (c *RedisResultCache) Get(
	ctx context.Context,
	key string,
) (_ []domain.Route, _ bool, err error) {
	defer obs.Time(ctx, "result.cache.redis.Get")(&err)

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get result cache: key must not be empty")
	}

	b, err := c.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get result cache: redis get: %w", err)
	}

	routes, err := decodeRoutes(b)
	if err != nil {
		return nil, false, fmt.Errorf("get result cache key=%q: %w", key, err)
	}

	return routes, true, nil
}

// Put stores routes; a non-positive TTL keeps the entry until evicted.
func (c *RedisResultCache) Put(ctx context.Context, key string, routes []domain.Route) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("insert result cache: key must not be empty")
	}

	body, err := encodeRoutes(routes)
	if err != nil {
		return fmt.Errorf("insert result cache: %w", err)
	}

	ttl := c.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := c.rdb.Set(ctx, redisKeyPrefix+key, body, ttl).Err(); err != nil {
		return fmt.Errorf("insert result cache key=%q: %w", key, err)
	}

	return nil
}

func (c *RedisResultCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *RedisResultCache) Close() error {
	return c.rdb.Close()
}
