package domain

import (
	"encoding/json"
	"testing"
)

func TestStopDecodesMixedIdentifiers(t *testing.T) {
	body := `[{"stops":[{"from_store":12,"to_store":"S-7","item":"X","units":5,"distance":10,"cost":50.5,"time":15}]}]`

	var routes []Route
	if err := json.Unmarshal([]byte(body), &routes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(routes) != 1 || len(routes[0].Stops) != 1 {
		t.Fatalf("unexpected shape: %+v", routes)
	}

	s := routes[0].Stops[0]
	if s.FromStore != "12" {
		t.Errorf("from_store = %q, want 12", s.FromStore)
	}
	if s.ToStore != "S-7" {
		t.Errorf("to_store = %q, want S-7", s.ToStore)
	}
	if s.Cost != 50.5 {
		t.Errorf("cost = %v, want 50.5", s.Cost)
	}

	origin, ok := routes[0].Origin()
	if !ok || origin != "12" {
		t.Errorf("origin = %q, %v; want 12, true", origin, ok)
	}
}

func TestIdentifierRejectsObjects(t *testing.T) {
	var id Identifier
	if err := json.Unmarshal([]byte(`{"id":1}`), &id); err == nil {
		t.Fatal("expected error for object identifier")
	}
	if err := json.Unmarshal([]byte(`true`), &id); err == nil {
		t.Fatal("expected error for bool identifier")
	}
}

func TestRouteOriginEmpty(t *testing.T) {
	if _, ok := (Route{}).Origin(); ok {
		t.Fatal("empty route must not have an origin")
	}
}
