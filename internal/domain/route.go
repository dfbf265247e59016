package domain

// Represents a single leg of an optimized transfer.
// A Stop moves a quantity of one item from one store to another, together with
// the distance (km), cost and travel time (minutes) computed by the optimizer.
type Stop struct {
	FromStore Identifier `json:"from_store"`
	ToStore   Identifier `json:"to_store"`
	Item      Identifier `json:"item"`
	Units     int        `json:"units"`
	Distance  float64    `json:"distance"`
	Cost      float64    `json:"cost"`
	Time      float64    `json:"time"`
}

// Represents one optimized transfer path.
// All stops of a route share the origin store of the first stop. A Route is
// immutable response data and is never modified after decoding.
type Route struct {
	Stops []Stop `json:"stops"`
}

// Origin returns the grouping key of the route, or false for a route with no stops.
func (r Route) Origin() (Identifier, bool) {
	if len(r.Stops) == 0 {
		return "", false
	}
	return r.Stops[0].FromStore, true
}
