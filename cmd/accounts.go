package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/jeffa/gcbook"
	"github.com/jeffa/gcbook/renderer"
)

type accountsCmd struct {
	extended   bool
	fixed      bool
	basic      bool
	ignoreCase bool
	invert     bool
	leafOnly   bool
	showTree   bool
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "filter and print account names" }
func (*accountsCmd) Usage() string {
	return `gc accounts [-E|-F|-G] [-i] [-v] [-leaf-only | -show-tree] [pattern ...]

  Prints the account names of the book, one full hierarchical name per line
  in the book's native order. Patterns are grep-style and cumulative: an
  account is printed when it satisfies all of them.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.extended, "E", false, "interpret patterns as extended regular expressions (the default)")
	f.BoolVar(&c.fixed, "F", false, "interpret patterns as fixed strings")
	f.BoolVar(&c.basic, "G", false, "interpret patterns as basic regular expressions")
	f.BoolVar(&c.ignoreCase, "i", false, "case insensitive matching")
	f.BoolVar(&c.invert, "v", false, "invert the sense of matching")
	f.BoolVar(&c.leafOnly, "leaf-only", false, "show only leaf accounts (those without children)")
	f.BoolVar(&c.showTree, "show-tree", false, "display accounts in a tree structure")
}

// filterOptions validates the grep-style mode flags shared by accounts and
// ledger.
func filterOptions(extended, fixed, basic, ignoreCase, invert bool) (gcbook.FilterOptions, error) {
	set := 0
	for _, b := range []bool{extended, fixed, basic} {
		if b {
			set++
		}
	}
	if set > 1 {
		return gcbook.FilterOptions{}, fmt.Errorf("-E, -F and -G are mutually exclusive")
	}
	mode := gcbook.MatchRegexp
	if fixed {
		mode = gcbook.MatchFixed
	}
	return gcbook.FilterOptions{Mode: mode, IgnoreCase: ignoreCase, Invert: invert}, nil
}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.leafOnly && c.showTree {
		return usageError("-leaf-only and -show-tree are mutually exclusive")
	}
	opts, err := filterOptions(c.extended, c.fixed, c.basic, c.ignoreCase, c.invert)
	if err != nil {
		return usageError("%v", err)
	}
	filter, err := gcbook.NewFilter(f.Args(), opts)
	if err != nil {
		return usageError("%v", err)
	}

	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}

	accounts := book.SelectAccounts(filter)
	vlog.Debug().Int("selected", len(accounts)).Int("total", book.NumAccounts()).Msg("accounts filtered")

	if c.leafOnly {
		leaves := accounts[:0]
		for _, a := range accounts {
			if a.IsLeaf() {
				leaves = append(leaves, a)
			}
		}
		accounts = leaves
	}

	// The account list stays plain text on purpose: its main consumer is
	// a pipe into grep or fzf.
	if c.showTree {
		fmt.Print(renderer.AccountTree(book, accounts))
	} else {
		fmt.Print(renderer.AccountNames(accounts))
	}
	return subcommands.ExitSuccess
}
