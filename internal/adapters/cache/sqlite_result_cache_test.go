package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"
	"transport-optimizer/internal/domain"
	"transport-optimizer/internal/platform/db"
)

func newSqliteCache(t *testing.T, ttl time.Duration) *SqliteResultCache {
	t.Helper()

	conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := InitSqliteSchema(context.Background(), conn); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	return NewSqliteResultCache(conn, ttl)
}

func sampleRoutes() []domain.Route {
	return []domain.Route{
		{Stops: []domain.Stop{
			{FromStore: "A", ToStore: "B", Item: "X", Units: 5, Distance: 10, Cost: 50, Time: 15},
			{FromStore: "A", ToStore: "C", Item: "Y", Units: 2, Distance: 4.5, Cost: 8, Time: 6},
		}},
	}
}

func TestSqliteResultCacheRoundTrip(t *testing.T) {
	c := newSqliteCache(t, time.Hour)
	ctx := context.Background()

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
	if len(routes) != 1 || len(routes[0].Stops) != 2 {
		t.Fatalf("routes = %+v", routes)
	}
	if s := routes[0].Stops[1]; s.ToStore != "C" || s.Distance != 4.5 {
		t.Fatalf("second stop = %+v", s)
	}
}

func TestSqliteResultCacheEmptyListIsAHit(t *testing.T) {
	c := newSqliteCache(t, 0)
	ctx := context.Background()

	if err := c.Put(ctx, "empty", nil); err != nil {
		t.Fatalf("put: %v", err)
	}

	routes, ok, err := c.Get(ctx, "empty")
	if err != nil || !ok {
		t.Fatalf("get = ok %v err %v, want hit", ok, err)
	}
	if routes == nil || len(routes) != 0 {
		t.Fatalf("routes = %#v, want empty list", routes)
	}
}

func TestSqliteResultCacheExpiryAndPrune(t *testing.T) {
	c := newSqliteCache(t, time.Hour)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	if err := c.Put(ctx, "old", sampleRoutes()); err != nil {
		t.Fatalf("put: %v", err)
	}

	c.now = func() time.Time { return base.Add(2 * time.Hour) }
	if err := c.Put(ctx, "fresh", sampleRoutes()); err != nil {
		t.Fatalf("put: %v", err)
	}

	if _, ok, _ := c.Get(ctx, "old"); ok {
		t.Fatal("expired entry served as a hit")
	}
	if _, ok, _ := c.Get(ctx, "fresh"); !ok {
		t.Fatal("fresh entry missed")
	}

	n, err := c.Prune(ctx, base.Add(time.Hour))
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 1 {
		t.Fatalf("pruned = %d, want 1", n)
	}
}

func TestSqliteResultCacheRejectsEmptyKey(t *testing.T) {
	c := newSqliteCache(t, 0)
	if err := c.Put(context.Background(), " ", sampleRoutes()); err == nil {
		t.Fatal("expected error for empty key")
	}
}
