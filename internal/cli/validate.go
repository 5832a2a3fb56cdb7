package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"splatstat/internal/config"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .splatstat.yml)")
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

		path, err := resolveConfigPath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed: %v\n", err)
			return ExitError
		}

		if _, err := config.Load(path); err != nil {
			var validation *config.ValidationError
			if errors.As(err, &validation) {
				fmt.Fprintf(stderr, "Validation failed:\n%v\n", validation)
			} else {
				fmt.Fprintf(stderr, "Validation failed: %v\n", err)
			}
			return ExitError
		}

		fmt.Fprintf(stdout, "Config OK: %s\n", path)
		return ExitOK
	}
}
