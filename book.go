// Package gcbook models a GnuCash book as a read-only chart of accounts and
// chronological list of transactions, with the filtering and date-range
// queries behind the gc reporting commands.
package gcbook

import (
	"errors"
	"slices"
)

// ErrForeignAccount marks transactions posting to accounts outside the chart,
// typically GnuCash scheduled-transaction templates.
var ErrForeignAccount = errors.New("account outside the chart of accounts")

// Book is an in-memory, read-only view of one accounting file.
type Book struct {
	accounts   []Account // arena: the account tree references nodes by index
	byID       map[string]int
	byFullName map[string]int
	root       int

	transactions []Transaction
	sorted       bool
}

// NewBook creates an empty book. Loaders populate it with AddAccount and
// AddTransaction.
func NewBook() *Book {
	return &Book{
		byID:       make(map[string]int),
		byFullName: make(map[string]int),
		root:       -1,
	}
}

// NumAccounts returns the number of accounts, excluding the invisible root.
func (b *Book) NumAccounts() int {
	n := len(b.accounts)
	if b.root >= 0 {
		n--
	}
	return n
}

// Transactions returns all transactions in chronological order. Loading order
// is preserved within a day.
func (b *Book) Transactions() []*Transaction {
	if !b.sorted {
		slices.SortStableFunc(b.transactions, func(a, c Transaction) int {
			switch {
			case a.Date.Before(c.Date):
				return -1
			case a.Date.After(c.Date):
				return 1
			default:
				return 0
			}
		})
		b.sorted = true
	}
	out := make([]*Transaction, len(b.transactions))
	for i := range b.transactions {
		out[i] = &b.transactions[i]
	}
	return out
}

// TransactionsIn returns the transactions dated within r, in chronological
// order. When accounts is non-empty, a transaction is kept only if at least
// one of its splits posts to one of them.
func (b *Book) TransactionsIn(r Range, accounts []*Account) []*Transaction {
	var out []*Transaction
	for _, tx := range b.Transactions() {
		if !r.Contains(tx.Date) {
			continue
		}
		if len(accounts) > 0 && !tx.Touches(accounts) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// Entry pairs one split with its transaction; it is the row unit of account
// statements.
type Entry struct {
	Tx    *Transaction
	Split *Split
}

// AccountEntries returns every entry posting to the account, in chronological
// order.
func (b *Book) AccountEntries(account *Account) []Entry {
	var out []Entry
	for _, tx := range b.Transactions() {
		for i := range tx.Splits {
			if tx.Splits[i].Account == account {
				out = append(out, Entry{Tx: tx, Split: &tx.Splits[i]})
			}
		}
	}
	return out
}
