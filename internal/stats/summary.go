package stats

import (
	"path/filepath"

	"splatstat/internal/results"
)

// Metadata describes the aggregated data set. It carries no timestamps
// or generated ids, so rerunning over unchanged input reproduces the
// serialized summary byte for byte.
type Metadata struct {
	ResultsDirectory string   `json:"results_directory"`
	NumScenes        int      `json:"num_scenes"`
	NumCases         int      `json:"num_cases"`
	SceneList        []string `json:"scene_list"`
	Note             string   `json:"note"`
}

// Summary is the complete aggregation result serialized into the JSON
// artifact.
type Summary struct {
	Metadata Metadata                  `json:"metadata"`
	Overall  OverallStats              `json:"overall_statistics"`
	PerScene map[string]IterationStats `json:"per_scene_statistics"`
}

// BuildSummary aggregates a collection into its summary.
func BuildSummary(c results.Collection, note string) Summary {
	perScene := ComputeAllSceneStats(c)
	return Summary{
		Metadata: Metadata{
			ResultsDirectory: filepath.Clean(c.Root),
			NumScenes:        c.NumScenes(),
			NumCases:         c.NumCases(),
			SceneList:        c.SceneNames(),
			Note:             note,
		},
		Overall:  ComputeOverallStats(perScene),
		PerScene: perScene,
	}
}
