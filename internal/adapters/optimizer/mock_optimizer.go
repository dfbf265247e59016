package optimizer

import (
	"context"
	"sync"
	"transport-optimizer/internal/domain"
)

// MockOptimizer returns canned results for tests.
type MockOptimizer struct {
	mu     sync.Mutex
	routes []domain.Route
	err    error
	calls  []domain.OptimizationRequest
}

func NewMockOptimizer(routes []domain.Route, err error) *MockOptimizer {
	return &MockOptimizer{routes: routes, err: err}
}

func (m *MockOptimizer) Submit(ctx context.Context, req domain.OptimizationRequest) ([]domain.Route, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)
	if err := ctx.Err(); err != nil {
		return nil, domain.NewTransportError(err)
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.routes, nil
}

// Calls returns the requests received so far.
func (m *MockOptimizer) Calls() []domain.OptimizationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.OptimizationRequest(nil), m.calls...)
}
