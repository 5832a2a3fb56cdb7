package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"splatstat/internal/duckdb"
	"splatstat/internal/report"
	"splatstat/internal/results"
	"splatstat/internal/spec"
	"splatstat/internal/stats"
)

// ErrNoResults reports that a scan collected zero cases.
var ErrNoResults = errors.New("no results found")

// Params carries per-invocation overrides for an aggregation run.
// Empty fields fall back to the config.
type Params struct {
	ResultsDir string
	OutputDir  string
	Formats    []string
	Note       string
	Observer   results.ScanObserver
}

// Run scans the results tree and aggregates it into a summary. The
// collection is returned alongside so callers can report scan counts.
func Run(cfg spec.Config, params Params) (stats.Summary, results.Collection, error) {
	resultsDir := params.ResultsDir
	if resultsDir == "" {
		resultsDir = cfg.Results.Dir
	}
	info, err := os.Stat(resultsDir)
	if err != nil || !info.IsDir() {
		return stats.Summary{}, results.Collection{}, fmt.Errorf("results directory not found: %s", resultsDir)
	}

	collection, err := results.Scan(resultsDir, results.ScanOptions{
		FileName:      cfg.Results.FileName,
		CaseDelimiter: cfg.Results.CaseDelimiter,
	}, params.Observer)
	if err != nil {
		return stats.Summary{}, results.Collection{}, err
	}
	if collection.Empty() {
		return stats.Summary{}, collection, fmt.Errorf("%w in %s", ErrNoResults, resultsDir)
	}

	note := params.Note
	if note == "" {
		note = cfg.Report.Note
	}
	return stats.BuildSummary(collection, note), collection, nil
}

// RunAndWrite aggregates and writes the selected artifact formats.
// Nothing is written when the scan collects zero cases.
func RunAndWrite(ctx context.Context, cfg spec.Config, params Params) (stats.Summary, report.OutputPaths, error) {
	summary, _, err := Run(cfg, params)
	if err != nil {
		return stats.Summary{}, report.OutputPaths{}, err
	}

	paths, err := report.NewOutputPaths(ResolveOutputDir(cfg, params))
	if err != nil {
		return summary, report.OutputPaths{}, err
	}
	if err := paths.Ensure(); err != nil {
		return summary, report.OutputPaths{}, err
	}
	for _, format := range ResolveFormats(cfg, params) {
		if err := writeFormat(ctx, format, paths, summary, cfg); err != nil {
			return summary, paths, err
		}
	}
	return summary, paths, nil
}

// ResolveOutputDir picks the output directory: flag, then config, then
// the results directory itself.
func ResolveOutputDir(cfg spec.Config, params Params) string {
	if params.OutputDir != "" {
		return params.OutputDir
	}
	if cfg.Output.Dir != "" {
		return cfg.Output.Dir
	}
	if params.ResultsDir != "" {
		return params.ResultsDir
	}
	return cfg.Results.Dir
}

// ResolveFormats picks the artifact formats: flag, then config.
func ResolveFormats(cfg spec.Config, params Params) []string {
	if len(params.Formats) > 0 {
		return params.Formats
	}
	return cfg.Output.Formats
}

func writeFormat(ctx context.Context, format string, paths report.OutputPaths, summary stats.Summary, cfg spec.Config) error {
	switch format {
	case "json":
		return report.WriteJSON(paths.JSONPath(), summary)
	case "csv":
		return report.WriteCSV(paths.CSVPath(), summary.Overall)
	case "html":
		return report.WriteHTML(paths.HTMLPath(), summary, cfg.Report.MetricOrder)
	case "duckdb":
		return exportDuckDB(ctx, paths.DuckDBPath(), summary)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func exportDuckDB(ctx context.Context, path string, summary stats.Summary) error {
	db, err := duckdb.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := duckdb.EnsureSchema(db); err != nil {
		return fmt.Errorf("apply duckdb schema: %w", err)
	}
	if _, err := duckdb.Export(ctx, db, summary); err != nil {
		return fmt.Errorf("export duckdb: %w", err)
	}
	return nil
}
