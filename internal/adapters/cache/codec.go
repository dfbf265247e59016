package cache

import (
	"encoding/json"
	"fmt"
	"transport-optimizer/internal/domain"
)

// Routes are stored as the same JSON the optimization service returns.
func encodeRoutes(routes []domain.Route) ([]byte, error) {
	if routes == nil {
		routes = []domain.Route{}
	}
	b, err := json.Marshal(routes)
	if err != nil {
		return nil, fmt.Errorf("encode routes: %w", err)
	}
	return b, nil
}

func decodeRoutes(b []byte) ([]domain.Route, error) {
	var routes []domain.Route
	if err := json.Unmarshal(b, &routes); err != nil {
		return nil, fmt.Errorf("decode routes: %w", err)
	}
	if routes == nil {
		routes = []domain.Route{}
	}
	return routes, nil
}
