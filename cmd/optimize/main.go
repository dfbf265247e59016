package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"transport-optimizer/internal/adapters/optimizer"
	"transport-optimizer/internal/config"
	"transport-optimizer/internal/report"
	"transport-optimizer/internal/services"
)

// optimize submits one stock file, prints the grouped result and writes the export.
func main() {
	file := flag.String("file", "", "stock CSV file to upload (required)")
	costRate := flag.String("cost-rate", "", "cost per unit distance")
	minQuantity := flag.String("min-quantity", "", "minimum transfer quantity")
	endpoint := flag.String("endpoint", "", "optimization service URL (default OPTIMIZER_URL)")
	out := flag.String("out", report.ExportFilename, "export file path; empty disables the export")
	verify := flag.Bool("verify", false, "re-read the written export and compare it with the result")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *endpoint != "" {
		cfg.OptimizerURL = *endpoint
	}

	client, err := optimizer.NewHTTPOptimizer(cfg.OptimizerURL, cfg.OptimizerTimeout)
	if err != nil {
		log.Fatal(err)
	}

	dataset, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read stock file: %v", err)
	}

	session := services.NewSession(client)
	st, err := session.SubmitFile(context.Background(), filepath.Base(*file), dataset, *costRate, *minQuantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", st.Message)
		os.Exit(1)
	}

	if err := renderView(os.Stdout, report.BuildView(st.Result)); err != nil {
		log.Fatal(err)
	}

	if *out == "" {
		return
	}
	if _, err := writeExport(session, *out, *verify); err != nil {
		log.Fatal(err)
	}
}
