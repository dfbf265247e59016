package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"transport-optimizer/internal/domain"
	"transport-optimizer/internal/report"
)

// renderView prints one aligned table per section, or the no-results message.
func renderView(w io.Writer, v report.View) error {
	if v.NoResults {
		_, err := fmt.Fprintln(w, v.Message)
		return err
	}

	for i, sec := range v.Sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, sec.Header)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(v.Columns, "\t"))
		for _, row := range sec.Rows {
			fmt.Fprintln(tw, strings.Join(row.Cells(), "\t"))
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("render section %s: %w", sec.Origin, err)
		}
	}

	return nil
}

// compareExport checks that a re-read export holds the same stops per origin.
func compareExport(g domain.GroupedResult, got map[domain.Identifier][]domain.Stop) error {
	if len(got) != len(g.Groups) {
		return fmt.Errorf("origin count mismatch. Expected: %d, Got: %d", len(g.Groups), len(got))
	}

	for _, grp := range g.Groups {
		stops := got[grp.Origin]
		if len(stops) != len(grp.Stops) {
			return fmt.Errorf("origin %s: stop count mismatch. Expected: %d, Got: %d", grp.Origin, len(grp.Stops), len(stops))
		}
		for i := range stops {
			if stops[i] != grp.Stops[i] {
				return fmt.Errorf("origin %s stop %d mismatch. Expected: %+v, Got: %+v", grp.Origin, i, grp.Stops[i], stops[i])
			}
		}
	}

	return nil
}
