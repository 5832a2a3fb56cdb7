package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// StatBlock summarizes one sequence of metric values. Std is the
// population standard deviation (N divisor), matching what numpy's
// np.std reports for the same values. Values is only retained on
// scene-level blocks.
type StatBlock struct {
	Mean   float64   `json:"mean"`
	Std    float64   `json:"std"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
	Count  int       `json:"count"`
	Values []float64 `json:"values,omitempty"`
}

// NewStatBlock computes a stat block over values. values must be
// non-empty; callers only build blocks for observed metrics.
func NewStatBlock(values []float64) StatBlock {
	if len(values) == 0 {
		panic("stats: stat block over empty value sequence")
	}
	return StatBlock{
		Mean:  stat.Mean(values, nil),
		Std:   stat.PopStdDev(values, nil),
		Min:   floats.Min(values),
		Max:   floats.Max(values),
		Count: len(values),
	}
}
