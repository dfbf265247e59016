package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
)

func newRedisCache(t *testing.T, ttl time.Duration) (*RedisResultCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewRedisResultCacheFromClient(rdb, ttl), mr
}

func TestRedisResultCacheRoundTrip(t *testing.T) {
	c, _ := newRedisCache(t, time.Hour)
	ctx := context.Background()

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	if _, ok, err := c.Get(ctx, "k1"); err != nil || ok {
		t.Fatalf("get before put = ok %v err %v, want miss", ok, err)
	}

	if err := c.Put(ctx, "k1", sampleRoutes()); err != nil {
		t.Fatalf("put: %v", err)
	}

	routes, ok, err := c.Get(ctx, "k1")
	if err != nil || !ok {
		t.Fatalf("get after put = ok %v err %v, want hit", ok, err)
	}
	if len(routes) != 1 || routes[0].Stops[0].FromStore != "A" {
		t.Fatalf("routes = %+v", routes)
	}
}

func TestRedisResultCacheExpires(t *testing.T) {
	c, mr := newRedisCache(t, time.Minute)
	ctx := context.Background()

	if err := c.Put(ctx, "k1", sampleRoutes()); err != nil {
		t.Fatalf("put: %v", err)
	}

	if ttl := mr.TTL(redisKeyPrefix + "k1"); ttl != time.Minute {
		t.Fatalf("ttl = %s, want 1m", ttl)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, err := c.Get(ctx, "k1"); err != nil || ok {
		t.Fatalf("get after expiry = ok %v err %v, want miss", ok, err)
	}
}

func TestRedisResultCacheCorruptEntry(t *testing.T) {
	c, mr := newRedisCache(t, 0)

	if err := mr.Set(redisKeyPrefix+"bad", "not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, _, err := c.Get(context.Background(), "bad"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNewRedisResultCacheBadURL(t *testing.T) {
	if _, err := NewRedisResultCache("http://not-redis", time.Minute); err == nil {
		t.Fatal("expected error for non-redis url")
	}
}
