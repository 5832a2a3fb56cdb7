package report

import (
	"sort"
	"strings"

	"splatstat/internal/stats"
)

// centerText pads text on the left so it sits centered in width
// columns. No trailing padding is emitted.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return strings.Repeat(" ", (width-len(text))/2) + text
}

// tableMetrics selects the metrics shown in the console table: the
// priority entries that are actually present, in priority order.
func tableMetrics(blocks map[string]stats.StatBlock, priority []string) []string {
	names := make([]string, 0, len(priority))
	for _, metric := range priority {
		if _, ok := blocks[metric]; ok {
			names = append(names, metric)
		}
	}
	return names
}

// OrderMetrics returns every present metric: priority entries first in
// priority order, then the rest alphabetically.
func OrderMetrics(blocks map[string]stats.StatBlock, priority []string) []string {
	names := tableMetrics(blocks, priority)
	listed := make(map[string]struct{}, len(names))
	for _, metric := range names {
		listed[metric] = struct{}{}
	}
	rest := make([]string, 0, len(blocks))
	for metric := range blocks {
		if _, ok := listed[metric]; !ok {
			rest = append(rest, metric)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// sortedIterations returns a stats map's iteration labels in sorted
// order ("ours_30000" sorts before "ours_7000").
func sortedIterations[B any](byIteration map[string]map[string]B) []string {
	labels := make([]string, 0, len(byIteration))
	for label := range byIteration {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
