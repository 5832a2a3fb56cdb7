package results

// CaseEventType identifies a per-case scan diagnostic for observers.
type CaseEventType string

const (
	// CaseLoaded marks a result file parsed into the collection.
	CaseLoaded CaseEventType = "loaded"
	// CaseMissing marks a recognized directory without a result file.
	CaseMissing CaseEventType = "missing"
	// CaseMalformed marks a result file that failed to parse.
	CaseMalformed CaseEventType = "malformed"
	// CaseSkippedName marks a directory whose name did not parse.
	CaseSkippedName CaseEventType = "skipped_name"
	// CaseValueDropped marks a non-numeric metric value excluded from a case.
	CaseValueDropped CaseEventType = "value_dropped"
	// CaseReplaced marks a case overwriting an earlier one for the same
	// scene and case id.
	CaseReplaced CaseEventType = "replaced"
)

// CaseEvent carries a single scan diagnostic.
type CaseEvent struct {
	Type   CaseEventType
	Dir    string // directory name under the results root
	Scene  string
	CaseID int
	Path   string // result file path, when one was involved
	Detail string // parse error text or dropped-value location
}

// ScanObserver receives scan lifecycle events for UI or logging. The
// scanner itself never writes to stdout or stderr.
type ScanObserver interface {
	// OnScanStart signals the start of a scan over candidate directories.
	OnScanStart(root string, candidates int)
	// OnCaseEvent delivers a per-case diagnostic.
	OnCaseEvent(event CaseEvent)
	// OnScanEnd signals scan completion with the final collection.
	OnScanEnd(c Collection)
}
