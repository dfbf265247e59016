package main

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"transport-optimizer/internal/domain"
	"transport-optimizer/internal/report"
	"transport-optimizer/internal/services"
)

// writeExport writes the session export to path and optionally re-reads it.
// It reports false, and writes nothing, when the session has no results.
func writeExport(session *services.Session, path string, verify bool) (bool, error) {
	body, err := session.Export()
	if errors.Is(err, domain.ErrNoResults) {
		log.Printf("no results; export skipped path=%s", path)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("export: %w", err)
	}

	if err := os.WriteFile(path, body, 0o644); err != nil {
		return false, fmt.Errorf("write export: %w", err)
	}
	log.Printf("export written path=%s bytes=%d", path, len(body))

	if !verify {
		return true, nil
	}

	result := session.State().Result
	stops, err := report.ReadCSV(bytes.NewReader(body))
	if err != nil {
		return true, fmt.Errorf("verify export: %w", err)
	}
	if err := compareExport(result, stops); err != nil {
		return true, fmt.Errorf("verify export: %w", err)
	}
	log.Printf("export verified origins=%d stops=%d", len(stops), result.StopCount())

	return true, nil
}
