package renderer

import (
	"fmt"
	"strings"

	"github.com/jeffa/gcbook"
)

// Format selects how much detail the ledger report shows per transaction.
// It is purely a rendering choice: it never changes which transactions are
// selected.
type Format int

const (
	// SingleLine prints one compact row per transaction.
	SingleLine Format = iota
	// DoubleLine prints date and description on one line and a posting
	// summary on the next.
	DoubleLine
	// Full itemizes every posting.
	Full
)

func (f Format) String() string {
	switch f {
	case SingleLine:
		return "single-line"
	case DoubleLine:
		return "double-line"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// ParseFormat parses a ledger format name.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "single-line":
		return SingleLine, nil
	case "double-line":
		return DoubleLine, nil
	case "full":
		return Full, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want single-line, double-line or full)", s)
	}
}

// NoMatch is the notice printed when a report selects nothing. An empty
// result is a successful run, not an error.
const NoMatch = "No matching transactions.\n"

// Ledger renders transactions in the requested format.
func Ledger(txs []*gcbook.Transaction, format Format) string {
	if len(txs) == 0 {
		return NoMatch
	}
	switch format {
	case DoubleLine:
		return ledgerDoubleLine(txs)
	case Full:
		return ledgerFull(txs)
	default:
		return ledgerSingleLine(txs)
	}
}

func ledgerSingleLine(txs []*gcbook.Transaction) string {
	b := newBuilder()
	b.Printf("| Date | Description | Amount |\n")
	b.Printf("|:---|:---|---:|\n")
	for _, tx := range txs {
		b.Printf("| %s | %s | %s |\n", tx.Date, cell(tx.Description), tx.Total())
	}
	return b.String()
}

func ledgerDoubleLine(txs []*gcbook.Transaction) string {
	b := newBuilder()
	for _, tx := range txs {
		b.Printf("**%s** %s\n", tx.Date, tx.Description)
		b.Printf("    %s\n", postingSummary(tx))
	}
	return b.String()
}

// postingSummary compacts the postings into one line: account names with
// their signed amounts, in posting order.
func postingSummary(tx *gcbook.Transaction) string {
	parts := make([]string, 0, len(tx.Splits))
	for _, s := range tx.Splits {
		parts = append(parts, fmt.Sprintf("%s %s", s.Account.FullName(), s.Value))
	}
	return strings.Join(parts, ", ")
}

func ledgerFull(txs []*gcbook.Transaction) string {
	b := newBuilder()
	for _, tx := range txs {
		b.Printf("**%s** %s", tx.Date, tx.Description)
		if tx.Num != "" {
			b.Printf(" (%s)", tx.Num)
		}
		b.Printf("\n\n")
		if tx.Notes != "" {
			b.Printf("> %s\n\n", tx.Notes)
		}
		b.Printf("| Account | Memo | Debit | Credit |\n")
		b.Printf("|:---|:---|---:|---:|\n")
		for _, s := range tx.Splits {
			debit, credit := "", ""
			if s.IsDebit() {
				debit = s.Value.String()
			} else if s.IsCredit() {
				credit = s.Value.Neg().String()
			}
			b.Printf("| %s | %s | %s | %s |\n", cell(s.Account.FullName()), cell(s.Memo), debit, credit)
		}
		b.Printf("\n")
	}
	return b.String()
}
