package cmd

import (
	"context"
	"flag"
	"time"

	"github.com/google/subcommands"

	"github.com/jeffa/gcbook"
	"github.com/jeffa/gcbook/renderer"
)

type incomeCmd struct {
	begin string
	end   string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "print an income and expense statement" }
func (*incomeCmd) Usage() string {
	return `gc income [-begin d] [-end d]

  Prints income and expense account movements over the period, with totals
  and the net result. Defaults to the current calendar year.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.begin, "begin", "", "beginning of the accounting period (default: Jan 1 of this year)")
	f.StringVar(&c.end, "end", "", "end of the accounting period (default: Dec 31 of this year)")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	year := gcbook.Today().Year()
	from := gcbook.NewDate(year, time.January, 1)
	to := gcbook.NewDate(year, time.December, 31)
	var err error
	if c.begin != "" {
		if from, err = gcbook.ParseBeginDate(c.begin); err != nil {
			return usageError("%v", err)
		}
	}
	if c.end != "" {
		if to, err = gcbook.ParseEndDate(c.end); err != nil {
			return usageError("%v", err)
		}
	}
	rng, err := gcbook.NewRange(from, to)
	if err != nil {
		return usageError("%v", err)
	}

	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Income(book.IncomeStatement(rng)))
	return subcommands.ExitSuccess
}
