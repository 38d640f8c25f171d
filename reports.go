package gcbook

import (
	"sort"
	"time"
)

// BalanceLine is one account with its aggregated amount over a report.
type BalanceLine struct {
	Account *Account
	Amount  Money
}

// balances sums split values per account and per currency for transactions
// dated within r, keeping only accounts accepted by keep. A book holding
// several currencies yields one line per currency; amounts are never
// converted. Zero balances are dropped: an account that saw no net movement
// has nothing to report.
func (b *Book) balances(r Range, keep func(*Account) bool) []BalanceLine {
	type key struct {
		account  *Account
		currency string
	}
	sums := make(map[key]Money)
	for _, tx := range b.TransactionsIn(r, nil) {
		for i := range tx.Splits {
			s := &tx.Splits[i]
			if !keep(s.Account) {
				continue
			}
			k := key{s.Account, s.Value.Currency()}
			sums[k] = sums[k].Add(s.Value)
		}
	}

	var out []BalanceLine
	for _, a := range b.Accounts() {
		var currencies []string
		for k := range sums {
			if k.account == a {
				currencies = append(currencies, k.currency)
			}
		}
		sort.Strings(currencies)
		for _, c := range currencies {
			if sum := sums[key{a, c}]; !sum.IsZero() {
				out = append(out, BalanceLine{Account: a, Amount: sum})
			}
		}
	}
	return out
}

// BalancesThrough returns the balance-sheet lines as of end: the cumulative
// balance of every non-P&L account with a nonzero balance, in the book's
// native account order.
func (b *Book) BalancesThrough(end Date) []BalanceLine {
	all := Range{From: NewDate(1, time.January, 1), To: end}
	return b.balances(all, func(a *Account) bool { return !a.Type.IsProfitAndLoss() })
}

// IncomeStatement aggregates income and expense account movements over a
// date range.
type IncomeStatement struct {
	Range    Range
	Expenses []BalanceLine
	Income   []BalanceLine
}

// IncomeStatement returns the income and expense lines for the range. Income
// balances are negated: GnuCash records income as credits, and the report
// shows revenue as a positive figure.
func (b *Book) IncomeStatement(r Range) IncomeStatement {
	stmt := IncomeStatement{Range: r}
	stmt.Expenses = b.balances(r, func(a *Account) bool { return a.Type == AccountExpense })
	for _, line := range b.balances(r, func(a *Account) bool { return a.Type == AccountIncome }) {
		line.Amount = line.Amount.Neg()
		stmt.Income = append(stmt.Income, line)
	}
	return stmt
}

// ExpenseTotals sums the expense lines, one total per currency in currency
// order.
func (s IncomeStatement) ExpenseTotals() []Money {
	t := newTotals()
	for _, l := range s.Expenses {
		t.add(l.Amount)
	}
	return t.list()
}

// IncomeTotals sums the income lines, one total per currency.
func (s IncomeStatement) IncomeTotals() []Money {
	t := newTotals()
	for _, l := range s.Income {
		t.add(l.Amount)
	}
	return t.list()
}

// Net returns income minus expenses, one figure per currency.
func (s IncomeStatement) Net() []Money {
	t := newTotals()
	for _, l := range s.Income {
		t.add(l.Amount)
	}
	for _, l := range s.Expenses {
		t.add(l.Amount.Neg())
	}
	return t.list()
}

// totals accumulates amounts per currency.
type totals map[string]Money

func newTotals() totals { return make(totals) }

func (t totals) add(m Money) { t[m.Currency()] = t[m.Currency()].Add(m) }

func (t totals) list() []Money {
	currencies := make([]string, 0, len(t))
	for c := range t {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)
	out := make([]Money, 0, len(currencies))
	for _, c := range currencies {
		out = append(out, t[c])
	}
	return out
}
