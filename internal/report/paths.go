package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// artifactBase is the shared stem of every artifact file name.
const artifactBase = "aggregate_results"

// OutputPaths describes filesystem locations for aggregation artifacts.
type OutputPaths struct {
	Dir string
}

// NewOutputPaths validates and constructs output path metadata.
func NewOutputPaths(dir string) (OutputPaths, error) {
	if strings.TrimSpace(dir) == "" {
		return OutputPaths{}, fmt.Errorf("output directory is empty")
	}
	return OutputPaths{Dir: dir}, nil
}

// Ensure creates the output directory.
func (o OutputPaths) Ensure() error {
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}

// JSONPath returns the path to the JSON summary artifact.
func (o OutputPaths) JSONPath() string {
	return filepath.Join(o.Dir, artifactBase+".json")
}

// CSVPath returns the path to the CSV artifact.
func (o OutputPaths) CSVPath() string {
	return filepath.Join(o.Dir, artifactBase+".csv")
}

// HTMLPath returns the path to the HTML report artifact.
func (o OutputPaths) HTMLPath() string {
	return filepath.Join(o.Dir, artifactBase+".html")
}

// DuckDBPath returns the path to the DuckDB database artifact.
func (o OutputPaths) DuckDBPath() string {
	return filepath.Join(o.Dir, artifactBase+".duckdb")
}
