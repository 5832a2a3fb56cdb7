package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"

	"splatstat/internal/stats"
)

const toolName = "splatstat"

// ScopeOverall marks stat rows aggregated across all scenes.
const ScopeOverall = "overall"

// ExportResult reports the run row an export resolved to.
type ExportResult struct {
	RunID   string
	RunKey  string
	Created bool
}

// Open opens a DuckDB database at path, creating the file if needed.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.New("duckdb: path is empty")
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb %s: %w", path, err)
	}
	return db, nil
}

// RunKey returns the deterministic fingerprint identifying a summary.
// Re-aggregating unchanged input yields the same key.
func RunKey(summary stats.Summary) (string, error) {
	return FingerprintJSON(summary)
}

// Export records a summary as one run with its scene and stat rows.
// Runs are deduplicated by run_key, so exporting the same summary
// again returns the existing row.
func Export(ctx context.Context, db *sql.DB, summary stats.Summary) (ExportResult, error) {
	if ctx == nil {
		return ExportResult{}, errors.New("duckdb: context is nil")
	}
	if db == nil {
		return ExportResult{}, errors.New("duckdb: db is nil")
	}
	key, err := RunKey(summary)
	if err != nil {
		return ExportResult{}, err
	}

	if id, err := lookupID(ctx, db, "runs", "run_id", "run_key", key); err == nil {
		return ExportResult{RunID: id, RunKey: key}, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return ExportResult{}, fmt.Errorf("lookup run id: %w", err)
	}

	runID := uuid.NewString()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ExportResult{}, fmt.Errorf("begin export: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	meta := summary.Metadata
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO runs (run_id, run_key, results_directory, note, num_scenes, num_cases, tool_name, collected_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, now())
		 ON CONFLICT (run_key) DO NOTHING`,
		runID,
		key,
		meta.ResultsDirectory,
		nullIfEmpty(meta.Note),
		meta.NumScenes,
		meta.NumCases,
		toolName,
	); err != nil {
		return ExportResult{}, fmt.Errorf("insert run: %w", err)
	}
	if err := insertScenes(ctx, tx, runID, summary); err != nil {
		return ExportResult{}, err
	}
	if err := insertStats(ctx, tx, runID, summary); err != nil {
		return ExportResult{}, err
	}
	if err := tx.Commit(); err != nil {
		return ExportResult{}, fmt.Errorf("commit export: %w", err)
	}

	outID, err := lookupID(ctx, db, "runs", "run_id", "run_key", key)
	if err != nil {
		return ExportResult{}, fmt.Errorf("lookup run id: %w", err)
	}
	return ExportResult{RunID: outID, RunKey: key, Created: true}, nil
}

// insertScenes writes one scenes row per scene in the summary.
func insertScenes(ctx context.Context, tx *sql.Tx, runID string, summary stats.Summary) error {
	stmt, err := tx.PrepareContext(
		ctx,
		`INSERT INTO scenes (scene_id, run_id, name, num_cases) VALUES (?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare scene insert: %w", err)
	}
	defer stmt.Close()
	for _, name := range summary.Metadata.SceneList {
		cases := sceneCaseCount(summary.PerScene[name])
		if _, err := stmt.ExecContext(ctx, uuid.NewString(), runID, name, cases); err != nil {
			return fmt.Errorf("insert scene %s: %w", name, err)
		}
	}
	return nil
}

// insertStats writes one stats row per scope, iteration and metric.
func insertStats(ctx context.Context, tx *sql.Tx, runID string, summary stats.Summary) error {
	stmt, err := tx.PrepareContext(
		ctx,
		`INSERT INTO stats (run_id, scope, iteration, metric, mean, std, min, max, count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare stat insert: %w", err)
	}
	defer stmt.Close()
	if err := execStatRows(ctx, stmt, runID, ScopeOverall, summary.Overall); err != nil {
		return err
	}
	for _, scene := range summary.Metadata.SceneList {
		if err := execStatRows(ctx, stmt, runID, scene, summary.PerScene[scene]); err != nil {
			return err
		}
	}
	return nil
}

func execStatRows(ctx context.Context, stmt *sql.Stmt, runID, scope string, iterations map[string]map[string]stats.StatBlock) error {
	for _, iteration := range sortedKeys(iterations) {
		blocks := iterations[iteration]
		for _, metric := range sortedKeys(blocks) {
			block := blocks[metric]
			if _, err := stmt.ExecContext(
				ctx,
				runID,
				scope,
				iteration,
				metric,
				block.Mean,
				block.Std,
				block.Min,
				block.Max,
				block.Count,
			); err != nil {
				return fmt.Errorf("insert stat %s/%s/%s: %w", scope, iteration, metric, err)
			}
		}
	}
	return nil
}

// sceneCaseCount derives a scene's case count from its stat blocks.
// Metrics absent from some cases carry smaller counts, so the largest
// block count is the number of cases seen.
func sceneCaseCount(iterations stats.IterationStats) int {
	most := 0
	for _, blocks := range iterations {
		for _, block := range blocks {
			if block.Count > most {
				most = block.Count
			}
		}
	}
	return most
}

// nullIfEmpty converts an optional string into a SQL argument.
func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

// lookupID fetches a single ID column value for a row keyed by keyColumn.
func lookupID(ctx context.Context, db *sql.DB, table, idColumn, keyColumn, key string) (string, error) {
	query := fmt.Sprintf("SELECT CAST(%s AS VARCHAR) FROM %s WHERE %s = ?", idColumn, table, keyColumn)
	var id string
	if err := db.QueryRowContext(ctx, query, key).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
