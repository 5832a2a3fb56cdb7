package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"

	"splatstat/internal/stats"
)

// summaryPage builds the HTML report component for a summary.
func summaryPage(summary stats.Summary, priority []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!doctype html>\n<html><head><meta charset=\"utf-8\"><title>Aggregation Report</title>")
		b.WriteString("<style>body{font-family:sans-serif;margin:2em}table{border-collapse:collapse;margin-bottom:1em}th,td{border:1px solid #ccc;padding:4px 10px;text-align:right}th:first-child,td:first-child{text-align:left}</style>")
		b.WriteString("</head>\n<body>\n<h1>Aggregation Report</h1>\n")

		meta := summary.Metadata
		fmt.Fprintf(&b, "<p>Results directory: <code>%s</code> &middot; %d scenes &middot; %d cases</p>\n",
			templ.EscapeString(meta.ResultsDirectory), meta.NumScenes, meta.NumCases)
		if meta.Note != "" {
			fmt.Fprintf(&b, "<p><em>%s</em></p>\n", templ.EscapeString(meta.Note))
		}

		b.WriteString("<h2>Overall statistics</h2>\n")
		for _, iteration := range sortedIterations(summary.Overall) {
			blocks := summary.Overall[iteration]
			fmt.Fprintf(&b, "<h3>%s</h3>\n", templ.EscapeString(iteration))
			b.WriteString("<table>\n<tr><th>Metric</th><th>Mean</th><th>Std</th><th>Min</th><th>Max</th><th>Count</th></tr>\n")
			for _, metric := range OrderMetrics(blocks, priority) {
				block := blocks[metric]
				fmt.Fprintf(&b, "<tr><td>%s</td><td>%.4f</td><td>%.4f</td><td>%.4f</td><td>%.4f</td><td>%d</td></tr>\n",
					templ.EscapeString(metric), block.Mean, block.Std, block.Min, block.Max, block.Count)
			}
			b.WriteString("</table>\n")
		}

		b.WriteString("<h2>Scenes</h2>\n<ul>\n")
		for _, scene := range meta.SceneList {
			fmt.Fprintf(&b, "<li>%s</li>\n", templ.EscapeString(scene))
		}
		b.WriteString("</ul>\n</body></html>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// RenderHTML renders the report page into a string.
func RenderHTML(summary stats.Summary, priority []string) (string, error) {
	var builder strings.Builder
	if err := summaryPage(summary, priority).Render(context.Background(), &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// WriteHTML writes the HTML report artifact.
func WriteHTML(path string, summary stats.Summary, priority []string) error {
	html, err := RenderHTML(summary, priority)
	if err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
