// Package cmd implements the gc CLI commands for reporting on a GnuCash book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/jeffa/gcbook"
	"github.com/jeffa/gcbook/gnucash"
)

// Commands lists every subcommand. A main package registers them on a
// subcommands.Commander and Executes the selected one.
var Commands = []subcommands.Command{
	&accountsCmd{},
	&ledgerCmd{},
	&accountCmd{},
	&exportCmd{},
	&balanceCmd{},
	&incomeCmd{},
}

// As a CLI application with a very short lived lifecycle, global flags are ok.

var bookFlag = flag.String("book", "", "path or configured alias of the GnuCash book (default: $GC_BOOK)")
var verboseFlag = flag.Bool("verbose", false, "print diagnostics on stderr")

// vlog is the diagnostics logger. It stays a no-op unless -verbose is set.
var vlog = zerolog.Nop()

// OpenBook resolves the book selected by the global -book flag (or the
// configuration) and loads it.
func OpenBook() (*gcbook.Book, error) {
	if *verboseFlag {
		vlog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel)
	}

	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	path, err := cfg.ResolveBook(*bookFlag)
	if err != nil {
		return nil, err
	}
	vlog.Debug().Str("book", path).Msg("opening book")

	book, err := gnucash.Open(path)
	if err != nil {
		return nil, err
	}
	vlog.Debug().Int("accounts", book.NumAccounts()).Int("transactions", len(book.Transactions())).Msg("book loaded")
	return book, nil
}

// printMarkdown renders markdown for the terminal, or prints it raw when
// stdout is not a terminal so reports stay pipeable.
func printMarkdown(md string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error once on stderr and maps it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// usageError prints the message once on stderr and returns the usage status.
func usageError(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitUsageError
}
