package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"transport-optimizer/internal/domain"
)

// ReadCSV parses an export produced by WriteCSV back into stops per origin.
// The header, marker and blank separator rows are skipped.
func ReadCSV(r io.Reader) (map[domain.Identifier][]domain.Stop, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read export header: %w", err)
	}
	if !equalRow(header, ExportHeader) {
		return nil, fmt.Errorf("export header mismatch. Expected: %v, Got: %v", ExportHeader, header)
	}

	out := make(map[domain.Identifier][]domain.Stop)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read export row %d: %w", line, err)
		}

		if len(rec) == 1 && strings.HasPrefix(rec[0], markerPrefix) {
			continue
		}
		if len(rec) != len(ExportHeader) {
			return nil, fmt.Errorf("export row %d: expected %d columns, got %d", line, len(ExportHeader), len(rec))
		}

		stop, err := parseStop(rec)
		if err != nil {
			return nil, fmt.Errorf("export row %d: %w", line, err)
		}
		out[stop.FromStore] = append(out[stop.FromStore], stop)
	}

	return out, nil
}

func parseStop(rec []string) (domain.Stop, error) {
	units, err := strconv.Atoi(rec[3])
	if err != nil {
		return domain.Stop{}, fmt.Errorf("invalid units %q: %w", rec[3], err)
	}

	nums := make([]float64, 3)
	for i, s := range rec[4:7] {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return domain.Stop{}, fmt.Errorf("invalid %s %q: %w", ExportHeader[4+i], s, err)
		}
		nums[i] = f
	}

	return domain.Stop{
		FromStore: domain.Identifier(rec[0]),
		ToStore:   domain.Identifier(rec[1]),
		Item:      domain.Identifier(rec[2]),
		Units:     units,
		Distance:  nums[0],
		Cost:      nums[1],
		Time:      nums[2],
	}, nil
}

func equalRow(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if strings.TrimSpace(a[i]) != b[i] {
			return false
		}
	}
	return true
}
