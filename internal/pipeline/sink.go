package pipeline

import (
	"fmt"
	"io"

	"splatstat/internal/results"
)

// PlainSink renders scan events as console lines, one per diagnostic.
// Loaded cases and other routine events only print in verbose mode.
type PlainSink struct {
	out      io.Writer
	fileName string
	verbose  bool
	colors   palette
}

// NewPlainSink builds a sink writing to out. fileName is the per-case
// result file name used in diagnostics; empty selects the default.
func NewPlainSink(out io.Writer, fileName string, verbose, noColor bool) *PlainSink {
	if fileName == "" {
		fileName = results.DefaultFileName
	}
	return &PlainSink{
		out:      out,
		fileName: fileName,
		verbose:  verbose,
		colors:   paletteFor(out, noColor),
	}
}

func (s *PlainSink) OnScanStart(root string, candidates int) {
	fmt.Fprintf(s.out, "Found %d case directories\n", candidates)
	fmt.Fprintln(s.out, "Collecting results...")
}

func (s *PlainSink) OnCaseEvent(event results.CaseEvent) {
	switch event.Type {
	case results.CaseMissing:
		s.warnf("Missing: %s/%s", event.Dir, s.fileName)
	case results.CaseMalformed:
		s.warnf("Malformed: %s/%s: %s", event.Dir, s.fileName, event.Detail)
	case results.CaseSkippedName:
		s.detailf("Skipped %s: unrecognized directory name", event.Dir)
	case results.CaseValueDropped:
		s.detailf("Dropped non-numeric value %s in %s", event.Detail, event.Dir)
	case results.CaseReplaced:
		s.detailf("Replaced scene %s case %d with %s", event.Scene, event.CaseID, event.Dir)
	case results.CaseLoaded:
		s.detailf("Loaded %s", event.Dir)
	}
}

func (s *PlainSink) OnScanEnd(c results.Collection) {
	counts := c.Counts
	if counts.Missing > 0 {
		fmt.Fprintln(s.out)
		s.warnf("Warning: %d cases missing %s", counts.Missing, s.fileName)
	}
	if counts.Malformed > 0 {
		s.warnf("Warning: %d cases could not be parsed", counts.Malformed)
	}
	if counts.SkippedName > 0 {
		s.warnf("Warning: %d directories had unrecognized names", counts.SkippedName)
	}
}

func (s *PlainSink) warnf(format string, args ...any) {
	fmt.Fprintln(s.out, s.colors.apply(styleWarn, fmt.Sprintf(format, args...)))
}

// detailf prints routine progress, verbose mode only.
func (s *PlainSink) detailf(format string, args ...any) {
	if !s.verbose {
		return
	}
	fmt.Fprintln(s.out, s.colors.apply(styleDetail, fmt.Sprintf(format, args...)))
}
