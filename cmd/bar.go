package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/garrettjohnsonn/DoD-Calculator/date"
)

// barCmd holds the flags for the 'bar' subcommand.
type barCmd struct {
	dateStr string
}

func (*barCmd) Name() string     { return "bar" }
func (*barCmd) Synopsis() string { return "fetch the raw daily bar for a ticker" }
func (*barCmd) Usage() string {
	return `dod bar [-d <date>] <ticker>

  Fetches and prints the raw OHLC bar the configured provider publishes for
  the ticker on that date, before any rounding or averaging.
`
}

func (c *barCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dateStr, "d", "", "Date to fetch (YYYY-MM-DD, defaults to today)")
}

func (c *barCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one ticker is required")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)

	on := date.Today()
	if c.dateStr != "" {
		var err error
		on, err = date.Parse(c.dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid date %q: %v\n", c.dateStr, err)
			return subcommands.ExitUsageError
		}
	}

	prices, err := NewProvider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	bar, ok, err := prices.DailyBar(ticker, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching %s on %s: %v\n", ticker, on, err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Printf("%s: no bar published for %s\n", ticker, on)
		return subcommands.ExitSuccess
	}

	fmt.Printf("%s %s  open=%s high=%s low=%s close=%s\n",
		ticker, bar.Day, bar.Open, bar.High, bar.Low, bar.Close)
	return subcommands.ExitSuccess
}
