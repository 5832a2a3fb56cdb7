package stats

import (
	"sort"

	"splatstat/internal/results"
)

// IterationStats maps iteration label to metric name to stat block for
// one scene. Pairs with zero numeric contributors are absent, so every
// present block has Count >= 1.
type IterationStats map[string]map[string]StatBlock

// ComputeSceneStats aggregates one scene's cases. Each (iteration,
// metric) sequence collects values in ascending case id order, which
// keeps float accumulation reproducible run over run.
func ComputeSceneStats(cases map[int]results.CaseMetrics) IterationStats {
	caseIDs := make([]int, 0, len(cases))
	for caseID := range cases {
		caseIDs = append(caseIDs, caseID)
	}
	sort.Ints(caseIDs)

	samples := map[string]map[string][]float64{}
	for _, caseID := range caseIDs {
		for iteration, metrics := range cases[caseID] {
			for metric, value := range metrics {
				byMetric, ok := samples[iteration]
				if !ok {
					byMetric = map[string][]float64{}
					samples[iteration] = byMetric
				}
				byMetric[metric] = append(byMetric[metric], value)
			}
		}
	}

	stats := IterationStats{}
	for iteration, byMetric := range samples {
		blocks := map[string]StatBlock{}
		for metric, values := range byMetric {
			block := NewStatBlock(values)
			block.Values = values
			blocks[metric] = block
		}
		if len(blocks) > 0 {
			stats[iteration] = blocks
		}
	}
	return stats
}

// ComputeAllSceneStats aggregates every scene in a collection. Scenes
// whose cases carried no numeric values keep an empty entry so they
// still appear in the per-scene report.
func ComputeAllSceneStats(c results.Collection) map[string]IterationStats {
	perScene := make(map[string]IterationStats, len(c.Scenes))
	for scene, cases := range c.Scenes {
		perScene[scene] = ComputeSceneStats(cases)
	}
	return perScene
}
