package domain

import (
	"errors"
	"testing"
)

func TestBuildRequestAccepts(t *testing.T) {
	req, err := BuildRequest([]byte("store,item,units\n"), "10.5", "0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.CostRateString() != "10.5" {
		t.Fatalf("cost rate = %q, want 10.5", req.CostRateString())
	}
	if req.MinQuantity != 0 {
		t.Fatalf("min quantity = %d, want 0", req.MinQuantity)
	}
	if req.Filename != DefaultDatasetFilename {
		t.Fatalf("filename = %q, want %q", req.Filename, DefaultDatasetFilename)
	}
}

func TestBuildRequestRejects(t *testing.T) {
	dataset := []byte("store,item,units\n")

	cases := []struct {
		name    string
		dataset []byte
		rate    string
		minQty  string
		msg     string
		field   string
	}{
		{"nil dataset", nil, "10", "1", MsgMissingDataset, "stock_file"},
		{"empty dataset", []byte{}, "10", "1", MsgMissingDataset, "stock_file"},
		{"non-numeric rate", dataset, "abc", "1", MsgInvalidParameter, "cost_rate"},
		{"empty rate", dataset, " ", "1", MsgInvalidParameter, "cost_rate"},
		{"nan rate", dataset, "NaN", "1", MsgInvalidParameter, "cost_rate"},
		{"inf rate", dataset, "Inf", "1", MsgInvalidParameter, "cost_rate"},
		{"zero rate", dataset, "0", "1", MsgInvalidParameter, "cost_rate"},
		{"negative rate", dataset, "-2.5", "1", MsgInvalidParameter, "cost_rate"},
		{"negative min", dataset, "10", "-1", MsgInvalidParameter, "min_quantity"},
		{"fractional min", dataset, "10", "1.5", MsgInvalidParameter, "min_quantity"},
		{"non-numeric min", dataset, "10", "x", MsgInvalidParameter, "min_quantity"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildRequest(tc.dataset, tc.rate, tc.minQty)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if ve.Message != tc.msg {
				t.Errorf("message = %q, want %q", ve.Message, tc.msg)
			}
			if ve.Field != tc.field {
				t.Errorf("field = %q, want %q", ve.Field, tc.field)
			}
		})
	}
}

func TestBuildRequestFileKeepsName(t *testing.T) {
	req, err := BuildRequestFile("  warehouse.csv ", []byte("x"), "1", "10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Filename != "warehouse.csv" {
		t.Fatalf("filename = %q, want warehouse.csv", req.Filename)
	}
	if req.MinQuantityString() != "10" {
		t.Fatalf("min quantity = %q, want 10", req.MinQuantityString())
	}
}
