package results

import "sort"

// CaseMetrics holds one case's parsed result file: iteration label to
// metric name to value. Non-numeric values never make it in here; they
// are dropped at the parse boundary with a diagnostic event.
type CaseMetrics map[string]map[string]float64

// ScanCounts tallies what a scan saw under the results root.
type ScanCounts struct {
	Directories int // child directories containing the case delimiter
	Loaded      int // result files parsed into the collection
	Missing     int // recognized directories without a result file
	Malformed   int // result files that failed to parse
	SkippedName int // child directories whose name did not parse
	Dropped     int // non-numeric metric values excluded from loaded cases
}

// Collection is the output of a scan: loaded cases grouped by scene,
// plus counters and the diagnostic events emitted along the way. It is
// built once by the scanner and read-only afterwards.
type Collection struct {
	Root   string
	Scenes map[string]map[int]CaseMetrics
	Counts ScanCounts
	Events []CaseEvent
}

// NewCollection returns an empty collection for a results root.
func NewCollection(root string) Collection {
	return Collection{
		Root:   root,
		Scenes: map[string]map[int]CaseMetrics{},
	}
}

// Add stores a case's metrics, overwriting any previous entry for the
// same scene and case id.
func (c *Collection) Add(scene string, caseID int, metrics CaseMetrics) {
	cases, ok := c.Scenes[scene]
	if !ok {
		cases = map[int]CaseMetrics{}
		c.Scenes[scene] = cases
	}
	cases[caseID] = metrics
}

// Has reports whether a case is already present.
func (c *Collection) Has(scene string, caseID int) bool {
	cases, ok := c.Scenes[scene]
	if !ok {
		return false
	}
	_, ok = cases[caseID]
	return ok
}

// SceneNames returns the scene names in sorted order.
func (c Collection) SceneNames() []string {
	names := make([]string, 0, len(c.Scenes))
	for name := range c.Scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NumScenes returns the number of scenes holding at least one case.
func (c Collection) NumScenes() int {
	return len(c.Scenes)
}

// NumCases returns the total number of cases across all scenes.
func (c Collection) NumCases() int {
	total := 0
	for _, cases := range c.Scenes {
		total += len(cases)
	}
	return total
}

// Empty reports whether the collection holds no cases.
func (c Collection) Empty() bool {
	return c.NumCases() == 0
}
