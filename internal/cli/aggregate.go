package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"splatstat/internal/config"
	"splatstat/internal/pipeline"
	"splatstat/internal/report"
	"splatstat/internal/spec"
	"splatstat/internal/stats"
	"splatstat/internal/ui/live"
)

// runAndWrite allows tests to stub the aggregation pipeline.
var runAndWrite = pipeline.RunAndWrite

const overallTitle = "Overall Results"

// runAggregate builds the handler for the aggregate command.
func runAggregate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		resultsDir := flags.String("results-dir", "", "Directory containing <scene>_case<id> subdirectories")
		outputDir := flags.String("output-dir", "", "Output directory for artifacts (default: results dir)")
		formatsFlag := flags.String("formats", "", "Comma-separated output formats (default: json,csv)")
		configPath := flags.String("config", "", "Path to config file (default: search for .splatstat.yml)")
		note := flags.String("note", "", "Note recorded in the summary metadata")
		uiMode := flags.String("ui", "auto", "UI mode: auto, live or plain")
		verbose := flags.Bool("verbose", false, "Print per-case progress")
		noColor := flags.Bool("no-color", false, "Disable ANSI colors")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, haveConfig, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if *resultsDir == "" && !haveConfig {
			fmt.Fprintln(stderr, "--results-dir is required when no config file is present")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		formats, err := parseFormats(*formatsFlag)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		decision, err := resolveUIMode(*uiMode, *verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		params := pipeline.Params{
			ResultsDir: *resultsDir,
			OutputDir:  *outputDir,
			Formats:    formats,
			Note:       *note,
		}
		printHeader(stdout, cfg, params)

		var controller *live.Controller
		if decision.useLive {
			controller = live.Start(stdout, live.Options{NoColor: *noColor})
			params.Observer = controller
		} else {
			params.Observer = pipeline.NewPlainSink(stdout, cfg.Results.FileName, *verbose, *noColor)
		}

		summary, paths, err := runAndWrite(context.Background(), cfg, params)
		if controller != nil {
			controller.Close()
			controller.Wait()
		}
		if err != nil {
			fmt.Fprintf(stderr, "Aggregation failed: %v\n", err)
			return ExitError
		}

		printDatasetSummary(stdout, summary)
		report.WriteTable(stdout, summary.Overall, overallTitle, cfg.Report.MetricOrder)
		printSavedArtifacts(stdout, pipeline.ResolveFormats(cfg, params), paths)
		return ExitOK
	}
}

// parseFormats splits and checks a comma-separated format list.
func parseFormats(value string) ([]string, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	formats := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if !config.KnownFormat(name) {
			return nil, fmt.Errorf("unknown output format %q (expected json, csv, html or duckdb)", part)
		}
		formats = append(formats, name)
	}
	return formats, nil
}

// printHeader echoes the run configuration before scanning.
func printHeader(w io.Writer, cfg spec.Config, params pipeline.Params) {
	rule := strings.Repeat("=", 80)
	resultsDir := params.ResultsDir
	if resultsDir == "" {
		resultsDir = cfg.Results.Dir
	}
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "Gaussian Splatting Results Aggregation")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Results directory: %s\n", resultsDir)
	fmt.Fprintf(w, "Output directory:  %s\n", pipeline.ResolveOutputDir(cfg, params))
	fmt.Fprintf(w, "%s\n\n", rule)
}

func printDatasetSummary(w io.Writer, summary stats.Summary) {
	meta := summary.Metadata
	fmt.Fprintf(w, "\nDataset summary:\n")
	fmt.Fprintf(w, "  Total scenes: %d\n", meta.NumScenes)
	fmt.Fprintf(w, "  Total cases:  %d\n", meta.NumCases)
	if meta.NumScenes > 0 {
		fmt.Fprintf(w, "  Average cases per scene: %.1f\n", float64(meta.NumCases)/float64(meta.NumScenes))
	}
}

func printSavedArtifacts(w io.Writer, formats []string, paths report.OutputPaths) {
	fmt.Fprintln(w)
	for _, format := range formats {
		switch format {
		case "json":
			fmt.Fprintf(w, "Full summary saved to: %s\n", paths.JSONPath())
		case "csv":
			fmt.Fprintf(w, "CSV saved to: %s\n", paths.CSVPath())
		case "html":
			fmt.Fprintf(w, "HTML report saved to: %s\n", paths.HTMLPath())
		case "duckdb":
			fmt.Fprintf(w, "DuckDB export saved to: %s\n", paths.DuckDBPath())
		}
	}
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "Aggregation complete")
	fmt.Fprintf(w, "%s\n", rule)
}
