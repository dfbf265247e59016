package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"transport-optimizer/internal/domain"
	"transport-optimizer/internal/platform/obs"
)

// SQLite backed cache of optimizer responses.
// Timestamps are stored as unix seconds so expiry is a plain integer comparison.
type SqliteResultCache struct {
	DB  *sql.DB
	TTL time.Duration

	now func() time.Time
}

func NewSqliteResultCache(db *sql.DB, ttl time.Duration) *SqliteResultCache {
	return &SqliteResultCache{DB: db, TTL: ttl, now: time.Now}
}

// Fetch the cached route list for a request digest.
func (s *SqliteResultCache) Get(
	ctx context.Context,
	key string,
) (_ []domain.Route, _ bool, err error) {
	defer obs.Time(ctx, "result.cache.sqlite.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("result cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get result cache: key must not be empty")
	}

	var cutoff int64
	if s.TTL > 0 {
		cutoff = s.clock().Add(-s.TTL).Unix()
	}

	q := `
	SELECT routes
	FROM result_cache
	WHERE request_key = ?
		AND created_at >= ?;
	`

	var body string
	err = s.DB.QueryRowContext(ctx, q, key, cutoff).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get result cache: query result_cache table: %w", err)
	}

	routes, err := decodeRoutes([]byte(body))
	if err != nil {
		return nil, false, fmt.Errorf("get result cache key=%q: %w", key, err)
	}

	return routes, true, nil
}

// Store the route list for a request digest.
func (s *SqliteResultCache) Put(
	ctx context.Context,
	key string,
	routes []domain.Route,
) error {
	if s.DB == nil {
		return errors.New("result cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert result cache: key must not be empty")
	}

	body, err := encodeRoutes(routes)
	if err != nil {
		return fmt.Errorf("insert result cache: %w", err)
	}

	q := `
	INSERT INTO result_cache (request_key, routes, created_at)
	VALUES (?, ?, ?)
	ON CONFLICT (request_key) DO UPDATE
	SET routes = excluded.routes,
		created_at = excluded.created_at;
	`

	if _, err := s.DB.ExecContext(ctx, q, key, string(body), s.clock().Unix()); err != nil {
		return fmt.Errorf("insert result cache key=%q: %w", key, err)
	}

	return nil
}

// Prune deletes entries created before olderThan and reports how many were removed.
func (s *SqliteResultCache) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("result cache: db is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM result_cache WHERE created_at < ?;`, olderThan.Unix())
	if err != nil {
		return 0, fmt.Errorf("prune result cache: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune result cache: rows affected: %w", err)
	}

	return n, nil
}

func (s *SqliteResultCache) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}
