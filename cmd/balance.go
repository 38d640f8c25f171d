package cmd

import (
	"context"
	"flag"
	"time"

	"github.com/google/subcommands"

	"github.com/jeffa/gcbook"
	"github.com/jeffa/gcbook/renderer"
)

type balanceCmd struct {
	end string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "print balance-sheet figures as of a date" }
func (*balanceCmd) Usage() string {
	return `gc balance [-end d]

  Prints the cumulative balance of every asset, liability and equity account
  with a nonzero balance as of the end date. Defaults to December 31st of
  the current year.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.end, "end", "", "end of the accounting period (default: Dec 31 of this year)")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	end := gcbook.NewDate(gcbook.Today().Year(), time.December, 31)
	if c.end != "" {
		var err error
		if end, err = gcbook.ParseEndDate(c.end); err != nil {
			return usageError("%v", err)
		}
	}

	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.BalanceSheet(book.BalancesThrough(end), end))
	return subcommands.ExitSuccess
}
