package report

import (
	"reflect"
	"testing"
	"transport-optimizer/internal/domain"
)

func TestBuildViewSections(t *testing.T) {
	v := BuildView(scenarioResult())

	if v.NoResults {
		t.Fatal("NoResults = true for a non-empty result")
	}
	if len(v.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(v.Sections))
	}

	sec := v.Sections[0]
	if sec.Origin != "A" || sec.Header != "From Store: A" {
		t.Fatalf("section = %q / %q", sec.Origin, sec.Header)
	}
	if len(sec.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(sec.Rows))
	}

	if got, want := sec.Rows[0].Cells(), []string{"B", "X", "5", "10", "50", "15"}; !reflect.DeepEqual(got, want) {
		t.Errorf("row 0 = %v, want %v", got, want)
	}
	if got, want := sec.Rows[1].Cells(), []string{"C", "Y", "2", "4", "8", "6"}; !reflect.DeepEqual(got, want) {
		t.Errorf("row 1 = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(v.Columns, ViewColumns) {
		t.Errorf("columns = %v", v.Columns)
	}
}

func TestBuildViewKeepsGroupOrder(t *testing.T) {
	g := domain.GroupedResult{Groups: []domain.StopGroup{
		{Origin: "C", Stops: []domain.Stop{{FromStore: "C", ToStore: "A"}}},
		{Origin: "A", Stops: []domain.Stop{{FromStore: "A", ToStore: "C"}}},
		{Origin: "B", Stops: []domain.Stop{{FromStore: "B", ToStore: "A"}}},
	}}

	v := BuildView(g)

	var origins []string
	for _, s := range v.Sections {
		origins = append(origins, s.Origin)
	}
	if want := []string{"C", "A", "B"}; !reflect.DeepEqual(origins, want) {
		t.Fatalf("origins = %v, want %v", origins, want)
	}
}

func TestBuildViewNoResults(t *testing.T) {
	v := BuildView(domain.GroupedResult{})

	if !v.NoResults || v.Message != NoResultsMessage {
		t.Fatalf("view = %+v, want explicit no-results indicator", v)
	}
	if v.Sections == nil || len(v.Sections) != 0 {
		t.Fatalf("sections = %#v, want empty list", v.Sections)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{10: "10", 10.5: "10.5", 0: "0", 0.125: "0.125", 1500000: "1500000"}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
