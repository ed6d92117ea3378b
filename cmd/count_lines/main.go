package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"count-lines/internal/cli"
	"count-lines/internal/count"
	"count-lines/internal/scan"
	"count-lines/internal/stats"
)

// newRootCmd wires the pipeline into a cobra command. Flag parsing is
// disabled: the argument grammar (interleaved extensions, -e/-p values,
// exact diagnostics) is owned by internal/cli, and every byte of output goes
// to out.
func newRootCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:                "count_lines [EXTENSION]... [OPTION]...",
		Short:              "Count lines in files by extension in a directory recursively",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(out, args)
		},
	}
}

// run is the whole pipeline: parse, walk, count, aggregate, report. Each
// file is fully counted before the next one is read, and the first error
// aborts the run with no partial report.
func run(out io.Writer, args []string) error {
	cfg, err := cli.Parse(args)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			fmt.Fprint(out, cli.Usage())
			return nil
		}
		return err
	}

	summary := stats.NewSummary()
	err = scan.Files(cfg, func(path, ext string) error {
		lines, err := count.Lines(path)
		if err != nil {
			return err
		}
		summary.Add(ext, lines)
		return nil
	})
	if err != nil {
		return err
	}

	summary.WriteReport(out)
	return nil
}

// main is the only place that decides exit codes. Diagnostics go to stdout,
// never stderr.
func main() {
	root := newRootCmd(os.Stdout)
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		fmt.Printf("Error: %s\n", err)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) && usageErr.Hint != "" {
			fmt.Println(usageErr.Hint)
		}
		exitCode := 1
		if withCode, ok := err.(interface{ ExitCode() int }); ok {
			exitCode = withCode.ExitCode()
		}
		os.Exit(exitCode)
	}
}
