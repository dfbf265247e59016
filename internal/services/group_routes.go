package services

import (
	"transport-optimizer/internal/domain"
)

// GroupRoutes buckets the stops of every route by the origin of its first stop.
//
// Groups appear in first-encounter order of their origin and each group holds
// the concatenation of its routes' stops in input order. Routes without stops
// contribute nothing. The map is only an index into the ordered slice, so the
// output never depends on map iteration order. The input is not modified.
func GroupRoutes(routes []domain.Route) domain.GroupedResult {
	index := make(map[domain.Identifier]int)
	groups := make([]domain.StopGroup, 0)

	for _, r := range routes {
		origin, ok := r.Origin()
		if !ok {
			continue
		}

		i, seen := index[origin]
		if !seen {
			i = len(groups)
			index[origin] = i
			groups = append(groups, domain.StopGroup{Origin: origin})
		}

		groups[i].Stops = append(groups[i].Stops, r.Stops...)
	}

	return domain.GroupedResult{Groups: groups}
}
