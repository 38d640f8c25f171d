package gcbook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Transaction is one ledger entry: a dated description balanced by an ordered
// sequence of splits. Read-only, loaded from the book file.
type Transaction struct {
	ID          string
	Date        Date
	Num         string // user-visible reference number, often empty
	Description string
	Notes       string
	Currency    string
	Splits      []Split
}

// Split attributes a signed amount to exactly one account. A positive value
// debits the account, a negative one credits it.
type Split struct {
	Account        *Account
	Memo           string
	ReconcileState string // "y" or "v" when settled against a statement
	Value          Money
}

// IsDebit reports whether the split debits its account.
func (s Split) IsDebit() bool { return s.Value.IsPositive() }

// IsCredit reports whether the split credits its account.
func (s Split) IsCredit() bool { return s.Value.IsNegative() }

// IsReconciled reports whether the split has been settled ("y") or frozen
// ("v") against a bank statement.
func (s Split) IsReconciled() bool {
	return s.ReconcileState == "y" || s.ReconcileState == "v"
}

// Total returns the transaction amount: the sum of its debit splits. In a
// balanced transaction this equals the negated sum of the credit splits.
func (t *Transaction) Total() Money {
	total := M(decimal.Zero, t.Currency)
	for _, s := range t.Splits {
		if s.IsDebit() {
			total = total.Add(s.Value)
		}
	}
	return total
}

// Touches reports whether at least one split posts to one of the given
// accounts. Matching is on account identity, never on name prefixes.
func (t *Transaction) Touches(accounts []*Account) bool {
	for _, s := range t.Splits {
		for _, a := range accounts {
			if s.Account == a {
				return true
			}
		}
	}
	return false
}

// HasUnreconciledBank reports whether the transaction has a bank-account
// split not yet settled against a statement. Statements flag such
// transactions so they stand out during reconciliation.
func (t *Transaction) HasUnreconciledBank() bool {
	for _, s := range t.Splits {
		if s.Account.Type == AccountBank && !s.IsReconciled() {
			return true
		}
	}
	return false
}

// SplitRecord is the raw form of a split as read from the book file, before
// account resolution.
type SplitRecord struct {
	AccountID      string
	Memo           string
	ReconcileState string
	Value          decimal.Decimal
}

// AddTransaction resolves the split records against the chart of accounts and
// appends the transaction to the book. Records referencing accounts outside
// the chart (GnuCash keeps scheduled-transaction templates in the same
// tables) are reported with ErrForeignAccount so the loader can skip them.
func (b *Book) AddTransaction(id string, date Date, num, description, notes, currency string, records []SplitRecord) error {
	tx := Transaction{
		ID:          id,
		Date:        date,
		Num:         num,
		Description: description,
		Notes:       notes,
		Currency:    currency,
		Splits:      make([]Split, 0, len(records)),
	}
	for _, r := range records {
		i, ok := b.byID[r.AccountID]
		if !ok {
			return fmt.Errorf("transaction %q (%s) posts to account %q: %w", description, date, r.AccountID, ErrForeignAccount)
		}
		tx.Splits = append(tx.Splits, Split{
			Account:        &b.accounts[i],
			Memo:           r.Memo,
			ReconcileState: r.ReconcileState,
			Value:          M(r.Value, currency),
		})
	}
	b.transactions = append(b.transactions, tx)
	b.sorted = false
	return nil
}
