package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"transport-optimizer/internal/domain"
)

const (
	ExportFilename    = "grouped_transport_optimization.csv"
	ExportContentType = "text/csv"

	markerPrefix = "FROM "
)

// ExportHeader is the fixed first row of every export.
var ExportHeader = []string{"From Store", "To Store", "Item", "Units", "Distance (km)", "Cost", "Time (mins)"}

// WriteCSV writes the grouped export: the header row, then per origin a
// "FROM <origin>" marker row, one row per stop and a blank separator row.
//
// Fields are quoted as needed, so identifiers containing commas or quotes
// survive. An empty result returns domain.ErrNoResults and writes nothing.
func WriteCSV(w io.Writer, g domain.GroupedResult) error {
	if g.Empty() {
		return domain.ErrNoResults
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}

	for _, grp := range g.Groups {
		origin := grp.Origin.String()

		if err := cw.Write([]string{markerPrefix + origin}); err != nil {
			return fmt.Errorf("write export marker for %q: %w", origin, err)
		}

		for i, s := range grp.Stops {
			row := []string{
				origin,
				s.ToStore.String(),
				s.Item.String(),
				strconv.Itoa(s.Units),
				FormatNumber(s.Distance),
				FormatNumber(s.Cost),
				FormatNumber(s.Time),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write export row %d for %q: %w", i+1, origin, err)
			}
		}

		if err := cw.Write([]string{}); err != nil {
			return fmt.Errorf("write export separator for %q: %w", origin, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}

	return nil
}

// ExportCSV is WriteCSV into memory.
func ExportCSV(g domain.GroupedResult) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
