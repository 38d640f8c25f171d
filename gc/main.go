// Command gc prints reports from a GnuCash book: account lists, general
// ledger extracts, single-account statements, and balance-sheet and income
// figures.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/jeffa/gcbook/cmd"
)

// completion describes the CLI for shell completion. Complete() exits the
// process when invoked by the shell, before any flag parsing.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"book":    predict.Files("*.gnucash"),
		"verbose": predict.Nothing,
	},
	Sub: map[string]*complete.Command{
		"accounts": {Flags: map[string]complete.Predictor{
			"E": predict.Nothing, "F": predict.Nothing, "G": predict.Nothing,
			"i": predict.Nothing, "v": predict.Nothing,
			"leaf-only": predict.Nothing, "show-tree": predict.Nothing,
		}},
		"ledger": {Flags: map[string]complete.Predictor{
			"begin": predict.Something, "end": predict.Something,
			"year": predict.Something, "account": predict.Something,
			"format": predict.Set{"single-line", "double-line", "full"},
			"i":      predict.Nothing, "F": predict.Nothing, "v": predict.Nothing,
		}},
		"account": {Flags: map[string]complete.Predictor{"name": predict.Something}},
		"export":  {Flags: map[string]complete.Predictor{"o": predict.Files("*")}},
		"balance": {Flags: map[string]complete.Predictor{"end": predict.Something}},
		"income": {Flags: map[string]complete.Predictor{
			"begin": predict.Something, "end": predict.Something,
		}},
	},
}

func main() {
	completion.Complete("gc")

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
