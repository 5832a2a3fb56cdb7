package results

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// ParseCaseFile reads and parses one result file. The second return
// value lists "iteration/metric" locations whose values were not
// numeric and were dropped.
func ParseCaseFile(path string) (CaseMetrics, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read result file: %w", err)
	}
	return parseCaseData(data)
}

// parseCaseData decodes a result document: an object mapping iteration
// labels to objects mapping metric names to numbers. Any other
// top-level shape is malformed; non-numeric leaves are dropped.
func parseCaseData(data []byte) (CaseMetrics, []string, error) {
	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("parse result file: %w", err)
	}

	metrics := make(CaseMetrics, len(raw))
	var dropped []string
	for _, iteration := range sortedKeys(raw) {
		values := raw[iteration]
		kept := make(map[string]float64, len(values))
		for _, metric := range sortedKeys(values) {
			number, ok := values[metric].(float64)
			if !ok {
				dropped = append(dropped, iteration+"/"+metric)
				continue
			}
			kept[metric] = number
		}
		metrics[iteration] = kept
	}
	return metrics, dropped, nil
}

// sortedKeys returns a map's keys in sorted order so diagnostics and
// reductions are stable across runs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
