// Command dod valuates securities as of a date of death for cost-basis
// step-up purposes.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/garrettjohnsonn/DoD-Calculator/cmd"
)

func main() {
	// Shell completion: a no-op unless invoked by the completion machinery.
	completion().Complete("dod")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	dates := predict.Nothing
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"valuate": {
				Flags: map[string]complete.Predictor{
					"f": predict.Files("*.csv"),
					"d": dates,
					"p": predict.Something,
					"o": predict.Files("*.csv"),
				},
			},
			"calendar": {
				Flags: map[string]complete.Predictor{"d": dates},
			},
			"bar": {
				Flags: map[string]complete.Predictor{"d": dates},
			},
			"topic": {},
		},
		Flags: map[string]complete.Predictor{
			"provider":      predict.Set{"yahoo", "eodhd"},
			"http-timeout":  predict.Something,
			"eodhd-api-key": predict.Something,
		},
	}
}
