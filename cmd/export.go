package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"
)

type exportCmd struct {
	outfile string
}

func (*exportCmd) Name() string { return "export" }
func (*exportCmd) Synopsis() string {
	return "export a greppable text file of the flattened account hierarchy"
}
func (*exportCmd) Usage() string {
	return `gc export [-o file]

  Writes every account's full name and description, one per line, to the
  output file. Without -o the list goes to the configured cache location
  ($GC_CACHE_DIR/$GC_INDEX).
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outfile, "o", "", "destination file (default: the configured cache location)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		return fail(err)
	}
	outfile := c.outfile
	if outfile == "" {
		outfile = cfg.IndexPath()
	}

	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}

	var b strings.Builder
	for _, a := range book.Accounts() {
		fmt.Fprintf(&b, "%s  (%s)\n", a.FullName(), a.Description)
	}

	if err := os.MkdirAll(filepath.Dir(outfile), 0o755); err != nil {
		return fail(err)
	}
	if err := os.WriteFile(outfile, []byte(b.String()), 0o644); err != nil {
		return fail(err)
	}
	vlog.Debug().Str("file", outfile).Int("accounts", book.NumAccounts()).Msg("account list exported")
	return subcommands.ExitSuccess
}
