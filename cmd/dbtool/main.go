package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"
	"transport-optimizer/internal/adapters/cache"
	"transport-optimizer/internal/config"
	"transport-optimizer/internal/platform/db"

	"github.com/joho/godotenv"
)

type pruner interface {
	Prune(ctx context.Context, olderThan time.Time) (int64, error)
}

// dbtool prepares the result cache schema and optionally prunes expired rows.
// DATABASE_URL selects Postgres; otherwise CACHE_SQLITE_PATH selects SQLite.
func main() {
	prune := flag.Bool("prune", false, "delete cache entries older than CACHE_TTL")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	ttl, err := time.ParseDuration(config.Get("CACHE_TTL", "24h"))
	if err != nil {
		log.Fatalf("invalid CACHE_TTL: %v", err)
	}

	ctx := context.Background()

	var (
		conn *sql.DB
		p    pruner
	)
	switch {
	case config.Get("DATABASE_URL", "") != "":
		conn, err = db.Open(config.Get("DATABASE_URL", ""))
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		log.Println("Initializing postgres result cache schema...")
		if err := cache.InitPostgresSchema(ctx, conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		p = cache.NewSQLResultCache(conn, ttl)

	case config.Get("CACHE_SQLITE_PATH", "") != "":
		conn, err = db.OpenSQLite(config.Get("CACHE_SQLITE_PATH", ""))
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		log.Println("Initializing sqlite result cache schema...")
		if err := cache.InitSqliteSchema(ctx, conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		p = cache.NewSqliteResultCache(conn, ttl)

	default:
		log.Fatal("DATABASE_URL or CACHE_SQLITE_PATH is required")
	}
	log.Println("Schema ready.")

	if !*prune {
		return
	}
	if ttl <= 0 {
		log.Println("CACHE_TTL disables expiry; nothing to prune.")
		return
	}

	n, err := p.Prune(ctx, time.Now().Add(-ttl))
	if err != nil {
		log.Fatalf("prune failed: %v", err)
	}
	log.Printf("Pruned %d expired cache entries.", n)
}
