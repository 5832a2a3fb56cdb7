package duckdb_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	duckdbtesting "splatstat/internal/duckdb/testing"
	"splatstat/internal/testutil"
)

const (
	testTimeout = 2 * time.Second
)

// openTestDB opens an in-memory DuckDB instance with the schema applied.
func openTestDB(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()
	ctx := testutil.Context(t, testTimeout)
	db := duckdbtesting.Open(t, ":memory:")
	duckdbtesting.ApplySchema(t, db)
	return db, ctx
}

// queryInt returns a single integer value from the database.
func queryInt(t *testing.T, ctx context.Context, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var out int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&out); err != nil {
		t.Fatalf("query int failed: %v", err)
	}
	return out
}

// runWithTimeout ensures a test body finishes before the context deadline.
func runWithTimeout(t *testing.T, ctx context.Context, fn func() error) {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()
	select {
	case <-ctx.Done():
		t.Fatalf("test timed out: %v", ctx.Err())
	case err := <-done:
		if err != nil {
			t.Fatalf("test failed: %v", err)
		}
	}
}
