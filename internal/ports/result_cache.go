package ports

import (
	"context"
	"transport-optimizer/internal/domain"
)

// Port: a boundary for memoizing optimizer responses by request digest.
type ResultCache interface {
	// Return the cached routes for key, or ok=false on a miss.
	Get(ctx context.Context, key string) (routes []domain.Route, ok bool, err error)
	// Store routes under key, replacing any previous entry.
	Put(ctx context.Context, key string, routes []domain.Route) error
}
