package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	stepup "github.com/garrettjohnsonn/DoD-Calculator"
	"github.com/garrettjohnsonn/DoD-Calculator/date"
	"github.com/garrettjohnsonn/DoD-Calculator/renderer"
)

// valuateCmd holds the flags for the 'valuate' subcommand.
type valuateCmd struct {
	positionsFile string
	dateStr       string
	precision     int
	outputFile    string
}

func (*valuateCmd) Name() string     { return "valuate" }
func (*valuateCmd) Synopsis() string { return "valuate a positions file as of a date of death" }
func (*valuateCmd) Usage() string {
	return `dod valuate -f <positions.csv> -d <date> [-p <precision>] [-o <out.csv>]

  Valuates every position in the file as of the date of death and prints a
  markdown report. The positions file is a CSV with 'Ticker', 'Shares' and
  'Type' columns. With -o, the detailed results are also written as CSV.

Usage Examples:
# Valuate holdings.csv as of 2025-08-23, rounding to cents.
$ dod valuate -f holdings.csv -d 2025-08-23 -p 2

`
}

func (c *valuateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.positionsFile, "f", "", "Positions CSV file to valuate")
	f.StringVar(&c.dateStr, "d", "", "Date of death (YYYY-MM-DD, defaults to today)")
	f.IntVar(&c.precision, "p", 2, "Rounding precision in decimal digits")
	f.StringVar(&c.outputFile, "o", "", "Write detailed results to this CSV file")
}

func (c *valuateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.positionsFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -f <positions.csv> is required")
		return subcommands.ExitUsageError
	}

	on := date.Today()
	if c.dateStr != "" {
		var err error
		on, err = date.Parse(c.dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid date %q: %v\n", c.dateStr, err)
			return subcommands.ExitUsageError
		}
	}

	in, err := os.Open(c.positionsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening positions file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	positions, err := stepup.ImportPositions(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading positions file %q: %v\n", c.positionsFile, err)
		return subcommands.ExitFailure
	}

	engine, err := NewEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	report, err := engine.ValuateAll(positions, on, int32(c.precision))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.ValuationMarkdown(report))

	if c.outputFile != "" {
		if err := c.export(report); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing results to %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Results written to %s\n", c.outputFile)
	}
	return subcommands.ExitSuccess
}

func (c *valuateCmd) export(report *stepup.Report) error {
	out, err := os.Create(c.outputFile)
	if err != nil {
		return err
	}
	if err := stepup.ExportReport(out, report); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
