package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/garrettjohnsonn/DoD-Calculator/calendar"
	"github.com/garrettjohnsonn/DoD-Calculator/date"
)

// calendarCmd holds the flags for the 'calendar' subcommand.
type calendarCmd struct {
	dateStr string
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "show NYSE trading calendar info for a date" }
func (*calendarCmd) Usage() string {
	return `dod calendar [-d <date>]

  Shows whether the date is an NYSE trading day and the nearest trading days
  on either side. Useful to understand which sessions a weekend or holiday
  valuation will average.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dateStr, "d", "", "Date to query (YYYY-MM-DD, defaults to today)")
}

func (c *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := date.Today()
	if c.dateStr != "" {
		var err error
		on, err = date.Parse(c.dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid date %q: %v\n", c.dateStr, err)
			return subcommands.ExitUsageError
		}
	}

	nyse := calendar.NewNYSE()
	if nyse.IsTradingDay(on) {
		fmt.Printf("%s is an NYSE trading day\n", on)
	} else {
		fmt.Printf("%s is NOT an NYSE trading day\n", on)
	}
	fmt.Printf("previous trading day: %s\n", nyse.Previous(on))
	fmt.Printf("next trading day:     %s\n", nyse.Next(on))
	return subcommands.ExitSuccess
}
