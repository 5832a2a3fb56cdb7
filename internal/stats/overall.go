package stats

import "sort"

// OverallStats has the same shape as IterationStats but is computed
// over per-scene means: one contribution per scene that observed the
// (iteration, metric) pair, so Count is a number of scenes. Values are
// not retained at this level.
type OverallStats map[string]map[string]StatBlock

// ComputeOverallStats reduces per-scene stats into overall stats.
// Scene means are collected in ascending scene-name order.
func ComputeOverallStats(perScene map[string]IterationStats) OverallStats {
	scenes := make([]string, 0, len(perScene))
	for scene := range perScene {
		scenes = append(scenes, scene)
	}
	sort.Strings(scenes)

	samples := map[string]map[string][]float64{}
	for _, scene := range scenes {
		for iteration, byMetric := range perScene[scene] {
			for metric, block := range byMetric {
				means, ok := samples[iteration]
				if !ok {
					means = map[string][]float64{}
					samples[iteration] = means
				}
				means[metric] = append(means[metric], block.Mean)
			}
		}
	}

	overall := OverallStats{}
	for iteration, byMetric := range samples {
		blocks := map[string]StatBlock{}
		for metric, means := range byMetric {
			blocks[metric] = NewStatBlock(means)
		}
		if len(blocks) > 0 {
			overall[iteration] = blocks
		}
	}
	return overall
}
