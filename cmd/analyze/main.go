package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"deal_diligence/pkg/core/analysis"
	"deal_diligence/pkg/core/benchmark"
	"deal_diligence/pkg/core/canon"
	"deal_diligence/pkg/core/ingest"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	var (
		file          = flag.String("file", "", "rows file to analyze (.csv, .xlsx or .json)")
		dealID        = flag.String("deal", "", "deal identifier (defaults to DEAL_ID env or the file name)")
		concentration = flag.Float64("concentration", -1, "top customer revenue share 0..1 (omit when unknown)")
		aliasFile     = flag.String("aliases", "", "optional hjson alias-override file")
		benchFile     = flag.String("benchmarks", "", "optional yaml benchmark band table")
	)
	flag.Parse()

	if *file == "" {
		log.Fatal("Error: -file is required.")
	}

	deal := *dealID
	if deal == "" {
		deal = os.Getenv("DEAL_ID")
	}
	if deal == "" {
		deal = strings.TrimSuffix(filepath.Base(*file), filepath.Ext(*file))
	}

	rows, err := readRows(*file)
	if err != nil {
		log.Fatalf("Failed to read rows: %v", err)
	}
	fmt.Printf("Loaded %d rows from %s\n", len(rows), *file)

	var overrides map[string]canon.Account
	if *aliasFile != "" {
		data, err := os.ReadFile(*aliasFile)
		if err != nil {
			log.Fatalf("Failed to read alias overrides: %v", err)
		}
		overrides, err = canon.ParseAliasOverrides(data)
		if err != nil {
			log.Fatalf("Bad alias overrides: %v", err)
		}
	}

	engine := analysis.NewEngine()
	if *benchFile != "" {
		data, err := os.ReadFile(*benchFile)
		if err != nil {
			log.Fatalf("Failed to read benchmark table: %v", err)
		}
		table, err := benchmark.Load(data)
		if err != nil {
			log.Fatalf("Bad benchmark table: %v", err)
		}
		engine = analysis.NewEngineWithBenchmarks(table)
	}

	in := analysis.Input{DealID: deal, Rows: rows, AliasOverrides: overrides}
	if *concentration >= 0 {
		c := *concentration
		in.ConcentrationRatio = &c
	}

	result, err := engine.Analyze(in)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(out))
}

func readRows(path string) ([]ingest.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ingest.ReadCSV(bytes.NewReader(data))
	case ".xlsx":
		return ingest.ReadXLSX(bytes.NewReader(data))
	case ".json":
		return ingest.ParseExtractedRows(data)
	}
	return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
}
