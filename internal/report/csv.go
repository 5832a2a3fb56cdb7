package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"splatstat/internal/stats"
)

// WriteCSV writes the overall statistics as a CSV artifact: one row
// per (iteration, metric), sorted by iteration then metric, floats at
// six decimals.
func WriteCSV(path string, overall stats.OverallStats) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"Iteration", "Metric", "Mean", "Std", "Min", "Max", "Count"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, iteration := range sortedIterations(overall) {
		blocks := overall[iteration]
		metrics := make([]string, 0, len(blocks))
		for metric := range blocks {
			metrics = append(metrics, metric)
		}
		sort.Strings(metrics)
		for _, metric := range metrics {
			block := blocks[metric]
			row := []string{
				iteration,
				metric,
				fmt.Sprintf("%.6f", block.Mean),
				fmt.Sprintf("%.6f", block.Std),
				fmt.Sprintf("%.6f", block.Min),
				fmt.Sprintf("%.6f", block.Max),
				strconv.Itoa(block.Count),
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	return nil
}
