package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"

	"github.com/jeffa/gcbook"
	"github.com/jeffa/gcbook/renderer"
)

type ledgerCmd struct {
	begin      string
	end        string
	year       string
	accounts   string
	format     string
	ignoreCase bool
	fixed      bool
	invert     bool
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "print a general ledger report" }
func (*ledgerCmd) Usage() string {
	return `gc ledger [-begin d] [-end d] [-year YYYY] [-account a,b,...]
          [-format single-line|double-line|full] [-i] [-F] [-v] [filter ...]

  Prints the transactions dated within the range, in chronological order.
  Dates accept ISO dates, bare years, and day offsets from today ("-30").
  Positional filters grep over description, notes and split memos.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.begin, "begin", "-30d", "start date: date, year, or offset from today")
	f.StringVar(&c.end, "end", "0d", "end date: date, year, or offset from today")
	f.StringVar(&c.year, "year", "", "shorthand for -begin YYYY -end YYYY")
	f.StringVar(&c.accounts, "account", "", "comma-separated full account names to restrict to")
	f.StringVar(&c.format, "format", "single-line", "output format: single-line, double-line or full")
	f.BoolVar(&c.ignoreCase, "i", false, "case insensitive filters")
	f.BoolVar(&c.fixed, "F", false, "interpret filters as fixed strings")
	f.BoolVar(&c.invert, "v", false, "invert the sense of filter matching")
}

// resolveRange turns the begin/end/year arguments into a validated range.
// An inverted range is an argument error: no query is performed.
func resolveRange(begin, end, year string) (gcbook.Range, error) {
	if year != "" {
		begin, end = year, year
	}
	from, err := gcbook.ParseBeginDate(begin)
	if err != nil {
		return gcbook.Range{}, err
	}
	to, err := gcbook.ParseEndDate(end)
	if err != nil {
		return gcbook.Range{}, err
	}
	return gcbook.NewRange(from, to)
}

// splitAccountList parses the -account comma list, dropping empty elements.
func splitAccountList(arg string) []string {
	var names []string
	for _, n := range strings.Split(arg, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format, err := renderer.ParseFormat(c.format)
	if err != nil {
		return usageError("%v", err)
	}
	rng, err := resolveRange(c.begin, c.end, c.year)
	if err != nil {
		return usageError("%v", err)
	}
	mode := gcbook.MatchRegexp
	if c.fixed {
		mode = gcbook.MatchFixed
	}
	filter, err := gcbook.NewFilter(f.Args(), gcbook.FilterOptions{
		Mode:       mode,
		IgnoreCase: c.ignoreCase,
		Invert:     c.invert,
	})
	if err != nil {
		return usageError("%v", err)
	}

	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}

	// -account names match the full hierarchical name exactly; an unknown
	// name is an error rather than a silently empty report.
	var accounts []*gcbook.Account
	for _, name := range splitAccountList(c.accounts) {
		a := book.AccountByFullName(name)
		if a == nil {
			return usageError("unknown account %q", name)
		}
		accounts = append(accounts, a)
	}

	vlog.Debug().Stringer("range", rng).Int("accounts", len(accounts)).Msg("selecting transactions")
	txs := book.TransactionsIn(rng, accounts)

	if !filter.Empty() {
		kept := txs[:0]
		for _, tx := range txs {
			texts := []string{tx.Description, tx.Notes}
			for _, s := range tx.Splits {
				texts = append(texts, s.Memo)
			}
			if filter.MatchAny(texts...) {
				kept = append(kept, tx)
			}
		}
		txs = kept
	}
	vlog.Debug().Int("transactions", len(txs)).Msg("transactions selected")

	printMarkdown(renderer.Ledger(txs, format))
	return subcommands.ExitSuccess
}
