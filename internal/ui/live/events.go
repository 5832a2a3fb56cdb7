package live

import "splatstat/internal/results"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventScanStart signals the start of a scan.
	EventScanStart EventKind = iota
	// EventCase delivers a per-case scan diagnostic.
	EventCase
	// EventScanEnd signals scan completion.
	EventScanEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind       EventKind
	Root       string
	Candidates int
	Case       results.CaseEvent
	Counts     results.ScanCounts
	Scenes     int
	Cases      int
}
