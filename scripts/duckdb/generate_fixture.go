package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"splatstat/internal/duckdb"
)

// fixtureConfig defines the JSON config for generating a DuckDB fixture.
type fixtureConfig struct {
	Name   string `json:"name"`
	Scenes int    `json:"scenes"`
	Cases  int    `json:"cases"`
	Runs   int    `json:"runs"`
}

func main() {
	configPath := flag.String("config", "", "path to fixture config JSON")
	outPath := flag.String("out", "", "output duckdb file path")
	flag.Parse()
	if *configPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: generate_fixture --config <path> --out <duckdb file>")
		os.Exit(2)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir output dir: %v\n", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := generateFixture(ctx, *outPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "generate fixture: %v\n", err)
		os.Exit(1)
	}
}

// generateFixture exports one synthetic summary per run into the
// database, so the runs, scenes, and stats tables all carry data.
func generateFixture(ctx context.Context, path string, cfg fixtureConfig) error {
	db, err := duckdb.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := duckdb.EnsureSchema(db); err != nil {
		return err
	}
	for run := 0; run < cfg.Runs; run++ {
		summary := fixtureSummary(cfg, run)
		if _, err := duckdb.Export(ctx, db, summary); err != nil {
			return fmt.Errorf("export run %d: %w", run, err)
		}
	}
	return nil
}
