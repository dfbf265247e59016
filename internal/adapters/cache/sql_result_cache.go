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

// SQLResultCache is a Postgres-backed cache of optimizer responses (pgx driver).
// Entries older than TTL are treated as misses; a zero TTL never expires.
type SQLResultCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSQLResultCache(db *sql.DB, ttl time.Duration) *SQLResultCache {
	return &SQLResultCache{DB: db, TTL: ttl}
}

// Fetch the cached route list for a request digest.
func (s *SQLResultCache) Get(
	ctx context.Context,
	key string,
) (_ []domain.Route, _ bool, err error) {
	defer obs.Time(ctx, "result.cache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("result cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get result cache: key must not be empty")
	}

	q := `
	SELECT routes
	FROM result_cache
	WHERE request_key = $1
		AND created_at >= $2;
	`

	var body []byte
	err = s.DB.QueryRowContext(ctx, q, key, s.cutoff()).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get result cache: query result_cache table: %w", err)
	}

	routes, err := decodeRoutes(body)
	if err != nil {
		return nil, false, fmt.Errorf("get result cache key=%q: %w", key, err)
	}

	return routes, true, nil
}

// Store the route list for a request digest.
func (s *SQLResultCache) Put(
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
	VALUES ($1, $2, $3)
	ON CONFLICT (request_key) DO UPDATE
	SET routes = EXCLUDED.routes,
		created_at = EXCLUDED.created_at;
	`

	if _, err := s.DB.ExecContext(ctx, q, key, string(body), time.Now().UTC()); err != nil {
		return fmt.Errorf("insert result cache key=%q: %w", key, err)
	}

	return nil
}

// Prune deletes entries created before olderThan and reports how many were removed.
func (s *SQLResultCache) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("result cache: db is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM result_cache WHERE created_at < $1;`, olderThan.UTC())
	if err != nil {
		return 0, fmt.Errorf("prune result cache: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune result cache: rows affected: %w", err)
	}

	return n, nil
}

// cutoff is the oldest created_at still served; the zero time disables expiry.
func (s *SQLResultCache) cutoff() time.Time {
	if s.TTL <= 0 {
		return time.Time{}
	}
	return time.Now().UTC().Add(-s.TTL)
}
