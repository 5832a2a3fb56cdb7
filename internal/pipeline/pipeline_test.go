package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"splatstat/internal/config"
)

const caseJSON = `{"ours_7000": {"PSNR": 25.5, "SSIM": 0.9, "LPIPS": 0.1}}`

func writeCaseDir(t *testing.T, root, name, content string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", name, err)
	}
	if content == "" {
		return
	}
	if err := os.WriteFile(filepath.Join(dir, "results.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("write case %s: %v", name, err)
	}
}

func TestRunAggregates(t *testing.T) {
	root := t.TempDir()
	writeCaseDir(t, root, "lego_case0", caseJSON)
	writeCaseDir(t, root, "lego_case1", caseJSON)
	writeCaseDir(t, root, "ship_case0", caseJSON)

	summary, collection, err := Run(config.Default(), Params{ResultsDir: root})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Metadata.NumScenes != 2 || summary.Metadata.NumCases != 3 {
		t.Fatalf("unexpected metadata %+v", summary.Metadata)
	}
	if collection.Counts.Loaded != 3 {
		t.Fatalf("unexpected counts %+v", collection.Counts)
	}
	if summary.Metadata.Note != config.DefaultNote {
		t.Fatalf("expected default note, got %q", summary.Metadata.Note)
	}
}

func TestRunNoteOverride(t *testing.T) {
	root := t.TempDir()
	writeCaseDir(t, root, "lego_case0", caseJSON)

	summary, _, err := Run(config.Default(), Params{ResultsDir: root, Note: "depth sweep"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Metadata.Note != "depth sweep" {
		t.Fatalf("expected note override, got %q", summary.Metadata.Note)
	}
}

func TestRunMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	if _, _, err := Run(config.Default(), Params{ResultsDir: missing}); err == nil {
		t.Fatalf("expected error for missing results dir")
	}
}

func TestRunRootIsFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "results")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, _, err := Run(config.Default(), Params{ResultsDir: file}); err == nil {
		t.Fatalf("expected error for non-directory root")
	}
}

func TestRunZeroResults(t *testing.T) {
	root := t.TempDir()
	writeCaseDir(t, root, "notes", "")

	_, _, err := Run(config.Default(), Params{ResultsDir: root})
	if !errors.Is(err, ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
}

func TestRunAndWriteDefaultFormats(t *testing.T) {
	root := t.TempDir()
	writeCaseDir(t, root, "lego_case0", caseJSON)

	summary, paths, err := RunAndWrite(context.Background(), config.Default(), Params{ResultsDir: root})
	if err != nil {
		t.Fatalf("run and write: %v", err)
	}
	if summary.Metadata.NumCases != 1 {
		t.Fatalf("unexpected metadata %+v", summary.Metadata)
	}
	// Output defaults to the results dir.
	if paths.Dir != root {
		t.Fatalf("expected output dir %q, got %q", root, paths.Dir)
	}
	data, err := os.ReadFile(paths.JSONPath())
	if err != nil {
		t.Fatalf("expected json artifact: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode artifact: %v", err)
	}
	if _, err := os.Stat(paths.CSVPath()); err != nil {
		t.Fatalf("expected csv artifact: %v", err)
	}
	if _, err := os.Stat(paths.HTMLPath()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no html artifact, got %v", err)
	}
}

func TestRunAndWriteFormatSelection(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "artifacts")
	writeCaseDir(t, root, "lego_case0", caseJSON)

	_, paths, err := RunAndWrite(context.Background(), config.Default(), Params{
		ResultsDir: root,
		OutputDir:  out,
		Formats:    []string{"html"},
	})
	if err != nil {
		t.Fatalf("run and write: %v", err)
	}
	if paths.Dir != out {
		t.Fatalf("expected output dir %q, got %q", out, paths.Dir)
	}
	if _, err := os.Stat(paths.HTMLPath()); err != nil {
		t.Fatalf("expected html artifact: %v", err)
	}
	if _, err := os.Stat(paths.JSONPath()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no json artifact, got %v", err)
	}
}

func TestRunAndWriteUnknownFormat(t *testing.T) {
	root := t.TempDir()
	writeCaseDir(t, root, "lego_case0", caseJSON)

	_, _, err := RunAndWrite(context.Background(), config.Default(), Params{
		ResultsDir: root,
		Formats:    []string{"xml"},
	})
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestRunAndWriteZeroResultsWritesNothing(t *testing.T) {
	root := t.TempDir()

	_, _, err := RunAndWrite(context.Background(), config.Default(), Params{ResultsDir: root})
	if !errors.Is(err, ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("read root: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no artifacts, found %d entries", len(entries))
	}
}

func TestRunAndWriteDuckDB(t *testing.T) {
	root := t.TempDir()
	writeCaseDir(t, root, "lego_case0", caseJSON)

	_, paths, err := RunAndWrite(context.Background(), config.Default(), Params{
		ResultsDir: root,
		Formats:    []string{"duckdb"},
	})
	if err != nil {
		t.Fatalf("run and write: %v", err)
	}
	if _, err := os.Stat(paths.DuckDBPath()); err != nil {
		t.Fatalf("expected duckdb artifact: %v", err)
	}
}
