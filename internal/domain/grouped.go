package domain

// StopGroup is the concatenated stop sequence of every route leaving one origin store.
type StopGroup struct {
	Origin Identifier `json:"origin"`
	Stops  []Stop     `json:"stops"`
}

// GroupedResult maps origin stores to their stops.
// Groups are kept in first-encounter order of the origin across the route list,
// so every consumer (view, export, JSON) sees the same key order.
type GroupedResult struct {
	Groups []StopGroup `json:"groups"`
}

func (g GroupedResult) Empty() bool { return len(g.Groups) == 0 }

// Return the origin store identifiers in group order.
func (g GroupedResult) Origins() []Identifier {
	out := make([]Identifier, 0, len(g.Groups))
	for _, grp := range g.Groups {
		out = append(out, grp.Origin)
	}
	return out
}

// Return the stops for one origin.
func (g GroupedResult) Stops(origin Identifier) ([]Stop, bool) {
	for _, grp := range g.Groups {
		if grp.Origin == origin {
			return grp.Stops, true
		}
	}
	return nil, false
}

// Return the total number of stops across all groups.
func (g GroupedResult) StopCount() int {
	n := 0
	for _, grp := range g.Groups {
		n += len(grp.Stops)
	}
	return n
}
