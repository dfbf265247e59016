package report

import (
	"strconv"
	"transport-optimizer/internal/domain"
)

const NoResultsMessage = "No results available for this selection."

// ViewColumns are the per-stop columns of a section table, in display order.
var ViewColumns = []string{"To Store", "Item", "Units", "Distance (km)", "Cost", "Time (mins)"}

// View is the display model of a GroupedResult.
type View struct {
	NoResults bool      `json:"no_results"`
	Message   string    `json:"message,omitempty"`
	Columns   []string  `json:"columns,omitempty"`
	Sections  []Section `json:"sections"`
}

// Section is one origin store and its stops.
type Section struct {
	Origin string `json:"origin"`
	Header string `json:"header"`
	Rows   []Row  `json:"rows"`
}

type Row struct {
	ToStore  string  `json:"to_store"`
	Item     string  `json:"item"`
	Units    int     `json:"units"`
	Distance float64 `json:"distance"`
	Cost     float64 `json:"cost"`
	Time     float64 `json:"time"`
}

// Cells returns the row formatted as text in ViewColumns order.
func (r Row) Cells() []string {
	return []string{
		r.ToStore,
		r.Item,
		strconv.Itoa(r.Units),
		FormatNumber(r.Distance),
		FormatNumber(r.Cost),
		FormatNumber(r.Time),
	}
}

// BuildView turns a GroupedResult into sections in group order.
// An empty result yields an explicit no-results view instead of an empty table.
func BuildView(g domain.GroupedResult) View {
	if g.Empty() {
		return View{NoResults: true, Message: NoResultsMessage, Sections: []Section{}}
	}

	sections := make([]Section, 0, len(g.Groups))
	for _, grp := range g.Groups {
		rows := make([]Row, 0, len(grp.Stops))
		for _, s := range grp.Stops {
			rows = append(rows, Row{
				ToStore:  s.ToStore.String(),
				Item:     s.Item.String(),
				Units:    s.Units,
				Distance: s.Distance,
				Cost:     s.Cost,
				Time:     s.Time,
			})
		}

		sections = append(sections, Section{
			Origin: grp.Origin.String(),
			Header: "From Store: " + grp.Origin.String(),
			Rows:   rows,
		})
	}

	return View{Columns: ViewColumns, Sections: sections}
}

// FormatNumber renders a float in its shortest round-trip decimal form (10, 10.5).
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
