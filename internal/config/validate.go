package config

import (
	"fmt"
	"strings"

	"splatstat/internal/spec"
)

// knownFormats lists the artifact formats the writer layer understands.
var knownFormats = map[string]struct{}{
	"json":   {},
	"csv":    {},
	"html":   {},
	"duckdb": {},
}

// KnownFormat reports whether name is a supported output format.
func KnownFormat(name string) bool {
	_, ok := knownFormats[name]
	return ok
}

// Validate checks a config for correctness. Path existence is checked at
// scan time, not here, so a config can be validated anywhere.
func Validate(cfg *spec.Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if strings.TrimSpace(cfg.Results.Dir) == "" {
		collector.add("results.dir", "is required")
	}
	fileName := strings.TrimSpace(cfg.Results.FileName)
	if fileName == "" {
		collector.add("results.file_name", "is required")
	} else if strings.ContainsAny(fileName, `/\`) {
		collector.add("results.file_name", fmt.Sprintf("must be a bare file name, got %q", cfg.Results.FileName))
	}
	if cfg.Results.CaseDelimiter == "" {
		collector.add("results.case_delimiter", "is required")
	}

	seenFormats := map[string]struct{}{}
	for i, format := range cfg.Output.Formats {
		field := fmt.Sprintf("output.formats[%d]", i)
		name := strings.TrimSpace(format)
		if name == "" {
			collector.add(field, "is required")
			continue
		}
		if _, ok := knownFormats[name]; !ok {
			collector.add(field, fmt.Sprintf("unsupported format %q", format))
			continue
		}
		if _, exists := seenFormats[name]; exists {
			collector.add("output.formats", fmt.Sprintf("duplicate format %q", name))
			continue
		}
		seenFormats[name] = struct{}{}
	}

	seenMetrics := map[string]struct{}{}
	for i, metric := range cfg.Report.MetricOrder {
		field := fmt.Sprintf("report.metric_order[%d]", i)
		name := strings.TrimSpace(metric)
		if name == "" {
			collector.add(field, "is required")
			continue
		}
		if _, exists := seenMetrics[name]; exists {
			collector.add("report.metric_order", fmt.Sprintf("duplicate metric %q", name))
			continue
		}
		seenMetrics[name] = struct{}{}
	}

	return collector.result()
}
