package optimizer

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"transport-optimizer/internal/domain"
	"transport-optimizer/internal/platform/metrics"
	"transport-optimizer/internal/platform/obs"
	"transport-optimizer/internal/ports"
)

// CachedOptimizer consults a ResultCache before delegating to the service.
//
// Only successful route lists are stored. Cache failures are logged and never
// fail a submission.
type CachedOptimizer struct {
	next  ports.Optimizer
	cache ports.ResultCache
}

func NewCachedOptimizer(next ports.Optimizer, cache ports.ResultCache) (*CachedOptimizer, error) {
	if next == nil {
		return nil, errors.New("cached optimizer: delegate is nil")
	}
	return &CachedOptimizer{next: next, cache: cache}, nil
}

func (c *CachedOptimizer) Submit(
	ctx context.Context,
	req domain.OptimizationRequest,
) ([]domain.Route, error) {
	if c.cache == nil {
		return c.next.Submit(ctx, req)
	}

	key := CacheKey(req)

	routes, ok, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.CacheLookups.WithLabelValues("error").Inc()
		log.Printf("req_id=%s result cache read failed: %v", obs.RequestID(ctx), err)
	case ok:
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return routes, nil
	default:
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	routes, err = c.next.Submit(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Put(ctx, key, routes); err != nil {
		log.Printf("req_id=%s result cache write failed: %v", obs.RequestID(ctx), err)
	}

	return routes, nil
}

// CacheKey is a hex SHA-256 digest over the dataset and both parameters.
// Lengths are mixed in so field boundaries cannot collide.
func CacheKey(req domain.OptimizationRequest) string {
	h := sha256.New()

	writePart := func(b []byte) {
		var n [8]byte
		binary.BigEndian.PutUint64(n[:], uint64(len(b)))
		h.Write(n[:])
		h.Write(b)
	}

	writePart(req.Dataset)
	writePart([]byte(req.CostRateString()))
	writePart([]byte(fmt.Sprint(req.MinQuantity)))

	return hex.EncodeToString(h.Sum(nil))
}
