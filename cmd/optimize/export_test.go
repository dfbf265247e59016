package main

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"transport-optimizer/internal/adapters/optimizer"
	"transport-optimizer/internal/domain"
	"transport-optimizer/internal/report"
	"transport-optimizer/internal/services"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestWriteExportSkipsEmptyResult(t *testing.T) {
	logs := captureLog(t)

	session := services.NewSession(optimizer.NewMockOptimizer([]domain.Route{}, nil))
	if _, err := session.Submit(context.Background(), []byte("x"), "10", "10"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	path := filepath.Join(t.TempDir(), report.ExportFilename)
	written, err := writeExport(session, path, true)
	if err != nil || written {
		t.Fatalf("writeExport = %v, %v; want skipped without error", written, err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("export file exists after skip: %v", err)
	}
	if !strings.Contains(logs.String(), "no results; export skipped") {
		t.Fatalf("skip not logged: %q", logs.String())
	}
}

func TestWriteExportWritesAndVerifies(t *testing.T) {
	captureLog(t)

	session := services.NewSession(optimizer.NewMockOptimizer([]domain.Route{
		{Stops: []domain.Stop{{FromStore: "A", ToStore: "B", Item: "X", Units: 5, Distance: 10, Cost: 50, Time: 15}}},
	}, nil))
	if _, err := session.Submit(context.Background(), []byte("x"), "10", "10"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	path := filepath.Join(t.TempDir(), report.ExportFilename)
	written, err := writeExport(session, path, true)
	if err != nil || !written {
		t.Fatalf("writeExport = %v, %v; want written", written, err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(b), "FROM A\nA,B,X,5,10,50,15\n") {
		t.Fatalf("export =\n%s", b)
	}
}
