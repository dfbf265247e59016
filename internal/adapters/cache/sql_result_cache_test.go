package cache

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
	"transport-optimizer/internal/platform/db"
)

// newPostgresCache connects to DATABASE_URL; the tests skip without one.
func newPostgresCache(t *testing.T, ttl time.Duration) (*SQLResultCache, string) {
	t.Helper()

	url := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping postgres result cache tests")
	}

	conn, err := db.Open(url)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	ctx := context.Background()
	if err := InitPostgresSchema(ctx, conn); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	prefix := fmt.Sprintf("test:%s:%d:", t.Name(), time.Now().UnixNano())
	t.Cleanup(func() {
		_, _ = conn.ExecContext(context.Background(), `DELETE FROM result_cache WHERE request_key LIKE $1;`, prefix+"%")
	})

	return NewSQLResultCache(conn, ttl), prefix
}

func TestSQLResultCacheRoundTripAndUpsert(t *testing.T) {
	c, prefix := newPostgresCache(t, time.Hour)
	ctx := context.Background()
	key := prefix + "k1"

	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("get before put = ok %v err %v, want miss", ok, err)
	}

	if err := c.Put(ctx, key, sampleRoutes()); err != nil {
		t.Fatalf("put: %v", err)
	}
	routes, ok, err := c.Get(ctx, key)
	if err != nil || !ok || len(routes) != 1 || len(routes[0].Stops) != 2 {
		t.Fatalf("get after put = %+v ok %v err %v", routes, ok, err)
	}

	// Second put replaces the entry instead of failing on the primary key.
	if err := c.Put(ctx, key, nil); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	routes, ok, err = c.Get(ctx, key)
	if err != nil || !ok || routes == nil || len(routes) != 0 {
		t.Fatalf("get after upsert = %#v ok %v err %v, want empty hit", routes, ok, err)
	}
}

func TestSQLResultCacheExpiryAndPrune(t *testing.T) {
	c, prefix := newPostgresCache(t, time.Hour)
	ctx := context.Background()
	old, fresh := prefix+"old", prefix+"fresh"

	for _, k := range []string{old, fresh} {
		if err := c.Put(ctx, k, sampleRoutes()); err != nil {
			t.Fatalf("put %s: %v", k, err)
		}
	}

	backdated := time.Now().UTC().Add(-2 * time.Hour)
	if _, err := c.DB.ExecContext(ctx, `UPDATE result_cache SET created_at = $1 WHERE request_key = $2;`, backdated, old); err != nil {
		t.Fatalf("backdate entry: %v", err)
	}

	if _, ok, _ := c.Get(ctx, old); ok {
		t.Fatal("expired entry served as a hit")
	}
	if _, ok, _ := c.Get(ctx, fresh); !ok {
		t.Fatal("fresh entry missed")
	}

	// A zero TTL serves entries of any age.
	if _, ok, _ := NewSQLResultCache(c.DB, 0).Get(ctx, old); !ok {
		t.Fatal("zero TTL treated an old entry as expired")
	}

	n, err := c.Prune(ctx, time.Now().UTC().Add(-time.Hour))
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n < 1 {
		t.Fatalf("pruned = %d, want at least 1", n)
	}
	if _, ok, _ := NewSQLResultCache(c.DB, 0).Get(ctx, old); ok {
		t.Fatal("pruned entry still present")
	}
	if _, ok, _ := c.Get(ctx, fresh); !ok {
		t.Fatal("prune removed a fresh entry")
	}
}
