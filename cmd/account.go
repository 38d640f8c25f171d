package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/jeffa/gcbook/renderer"
)

type accountCmd struct {
	name string
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "print the statement of a single leaf account" }
func (*accountCmd) Usage() string {
	return `gc account -name <account>

  Prints every entry of one leaf account with a running balance. The Num
  column is marked "[*]" when the transaction has a bank split not yet
  reconciled. The account may be given by full hierarchical name or by a
  unique short name.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "account to print (required)")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return usageError("-name is required")
	}
	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	account, err := book.FindAccount(c.name)
	if err != nil {
		return usageError("%v", err)
	}
	if !account.IsLeaf() {
		return usageError("%q is not a leaf account", account.FullName())
	}

	entries := book.AccountEntries(account)
	vlog.Debug().Str("account", account.FullName()).Int("entries", len(entries)).Msg("statement built")
	printMarkdown(renderer.AccountStatement(account, entries))
	return subcommands.ExitSuccess
}
