package main

import (
	"context"
	"database/sql"
	"fmt"
	"transport-optimizer/internal/adapters/cache"
	"transport-optimizer/internal/config"
	"transport-optimizer/internal/platform/db"
	"transport-optimizer/internal/ports"
)

type resultCache struct {
	backend string
	cache   ports.ResultCache
	ping    func(ctx context.Context) error
	close   func() error
}

func (r *resultCache) Close() error { return r.close() }

// openResultCache picks the first configured backend: Postgres, then SQLite,
// then Redis. It returns nil when no backend is configured.
func openResultCache(ctx context.Context, cfg config.Config) (*resultCache, error) {
	switch {
	case cfg.DatabaseURL != "":
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open result cache: %w", err)
		}
		if err := cache.InitPostgresSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("open result cache: %w", err)
		}
		return sqlCache("postgres", conn, cache.NewSQLResultCache(conn, cfg.CacheTTL)), nil

	case cfg.CacheSQLitePath != "":
		conn, err := db.OpenSQLite(cfg.CacheSQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open result cache: %w", err)
		}
		if err := cache.InitSqliteSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("open result cache: %w", err)
		}
		return sqlCache("sqlite", conn, cache.NewSqliteResultCache(conn, cfg.CacheTTL)), nil

	case cfg.RedisURL != "":
		rc, err := cache.NewRedisResultCache(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			return nil, fmt.Errorf("open result cache: %w", err)
		}
		if err := rc.Ping(ctx); err != nil {
			rc.Close()
			return nil, fmt.Errorf("open result cache: ping redis: %w", err)
		}
		return &resultCache{backend: "redis", cache: rc, ping: rc.Ping, close: rc.Close}, nil
	}

	return nil, nil
}

func sqlCache(backend string, conn *sql.DB, c ports.ResultCache) *resultCache {
	return &resultCache{backend: backend, cache: c, ping: conn.PingContext, close: conn.Close}
}
