package config

import (
	"strings"

	"splatstat/internal/spec"
)

// Normalize fills unset optional fields with their built-in defaults.
func Normalize(cfg *spec.Config) {
	if strings.TrimSpace(cfg.Results.Dir) == "" {
		cfg.Results.Dir = DefaultResultsDir
	}
	if strings.TrimSpace(cfg.Results.FileName) == "" {
		cfg.Results.FileName = DefaultResultsFile
	}
	if cfg.Results.CaseDelimiter == "" {
		cfg.Results.CaseDelimiter = DefaultCaseDelimiter
	}
	if len(cfg.Output.Formats) == 0 {
		cfg.Output.Formats = DefaultFormats()
	}
	if len(cfg.Report.MetricOrder) == 0 {
		cfg.Report.MetricOrder = DefaultMetricOrder()
	}
	if strings.TrimSpace(cfg.Report.Note) == "" {
		cfg.Report.Note = DefaultNote
	}
}
