package ports

import (
	"context"
	"transport-optimizer/internal/domain"
)

// Contract for submitting a dataset to the remote optimization service.
type Optimizer interface {
	// Issue one submission and return the computed routes unchanged.
	// Failures are reported as *domain.ServiceError.
	Submit(ctx context.Context, req domain.OptimizationRequest) ([]domain.Route, error)
}
