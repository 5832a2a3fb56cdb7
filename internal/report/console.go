package report

import (
	"fmt"
	"io"
	"strings"

	"splatstat/internal/stats"
)

const (
	bannerWidth = 80
	ruleWidth   = 63
)

// WriteTable renders overall statistics as the fixed-width console
// table: a banner with the centered title, then one section per
// iteration with Metric/Mean/Std/Min/Max columns. Only metrics in the
// priority list appear, in priority order.
func WriteTable(w io.Writer, overall stats.OverallStats, title string, priority []string) {
	banner := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(w, "\n%s\n", banner)
	fmt.Fprintf(w, "%s\n", centerText(title, bannerWidth))
	fmt.Fprintf(w, "%s\n", banner)

	for _, iteration := range sortedIterations(overall) {
		blocks := overall[iteration]
		fmt.Fprintf(w, "\n%s:\n", iteration)
		fmt.Fprintf(w, "  %-15s %12s %12s %12s %12s\n", "Metric", "Mean", "Std", "Min", "Max")
		fmt.Fprintf(w, "  %s\n", strings.Repeat("-", ruleWidth))
		for _, metric := range tableMetrics(blocks, priority) {
			block := blocks[metric]
			fmt.Fprintf(w, "  %-15s %12.4f %12.4f %12.4f %12.4f\n",
				metric, block.Mean, block.Std, block.Min, block.Max)
		}
	}
}
