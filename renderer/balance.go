package renderer

import (
	"strings"

	"github.com/jeffa/gcbook"
)

// BalanceSheet renders the balance-sheet figures as of a date.
func BalanceSheet(lines []gcbook.BalanceLine, end gcbook.Date) string {
	b := newBuilder()
	b.Printf("# Balance sheet as of %s\n\n", end)
	if len(lines) == 0 {
		b.Printf(NoMatch)
		return b.String()
	}
	renderBalanceTable(b, lines)
	return b.String()
}

// Income renders an income and expense statement over a date range.
func Income(stmt gcbook.IncomeStatement) string {
	b := newBuilder()
	b.Printf("# Income statement, %s to %s\n\n", stmt.Range.From, stmt.Range.To)

	b.Printf("## Expenses\n\n")
	if len(stmt.Expenses) == 0 {
		b.Printf(NoMatch)
	} else {
		renderBalanceTable(b, stmt.Expenses)
		b.Printf("\nTotal: %s\n", moneyList(stmt.ExpenseTotals()))
	}

	b.Printf("\n## Income\n\n")
	if len(stmt.Income) == 0 {
		b.Printf(NoMatch)
	} else {
		renderBalanceTable(b, stmt.Income)
		b.Printf("\nTotal: %s\n", moneyList(stmt.IncomeTotals()))
	}

	b.Printf("\n**Net result: %s**\n", moneyList(stmt.Net()))
	return b.String()
}

func renderBalanceTable(b builder, lines []gcbook.BalanceLine) {
	b.Printf("| Account | Amount |\n")
	b.Printf("|:---|---:|\n")
	for _, l := range lines {
		b.Printf("| %s | %s |\n", cell(l.Account.FullName()), l.Amount)
	}
}

// moneyList renders per-currency figures as a comma separated list.
func moneyList(ms []gcbook.Money) string {
	if len(ms) == 0 {
		return "0"
	}
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}
