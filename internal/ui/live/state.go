package live

import (
	"time"

	"splatstat/internal/results"
)

// SceneRow holds UI state for a single scene.
type SceneRow struct {
	Name      string
	Cases     int
	Missing   int
	Malformed int
	LastDir   string
}

// State captures the live UI state for a scan.
type State struct {
	Root       string
	Candidates int
	Processed  int
	StartedAt  time.Time
	LastEvent  string
	Rows       []SceneRow
	Counts     results.ScanCounts
	Finished   bool
	Scenes     int
	Cases      int
}
