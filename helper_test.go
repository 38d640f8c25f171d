package gcbook

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// newTestBook builds a small book with the shape used across the package
// tests:
//
//	Assets
//	  Bank
//	Expenses
//	  Office
//	    Supplies
//	  Travel
//	expenses
//	  travel
//	Income
//	  Sales
func newTestBook(t *testing.T) *Book {
	t.Helper()
	b := NewBook()

	add := func(id, parent, name string, typ AccountType) {
		t.Helper()
		if _, err := b.AddAccount(id, parent, name, "", typ, "EUR"); err != nil {
			t.Fatalf("AddAccount(%s): %v", name, err)
		}
	}
	add("root", "", "Root Account", AccountRoot)
	add("assets", "root", "Assets", AccountAsset)
	add("bank", "assets", "Bank", AccountBank)
	add("expenses", "root", "Expenses", AccountExpense)
	add("office", "expenses", "Office", AccountExpense)
	add("supplies", "office", "Supplies", AccountExpense)
	add("travel", "expenses", "Travel", AccountExpense)
	add("lc-expenses", "root", "expenses", AccountExpense)
	add("lc-travel", "lc-expenses", "travel", AccountExpense)
	add("income", "root", "Income", AccountIncome)
	add("sales", "income", "Sales", AccountIncome)
	return b
}

func addTestTx(t *testing.T, b *Book, id string, date Date, description string, postings map[string]float64) {
	t.Helper()
	addTestTxIn(t, b, id, date, description, "EUR", postings)
}

func addTestTxIn(t *testing.T, b *Book, id string, date Date, description, currency string, postings map[string]float64) {
	t.Helper()
	var records []SplitRecord
	for account, amount := range postings {
		records = append(records, SplitRecord{
			AccountID:      account,
			ReconcileState: "n",
			Value:          decimal.NewFromFloat(amount),
		})
	}
	if err := b.AddTransaction(id, date, "", description, "", currency, records); err != nil {
		t.Fatalf("AddTransaction(%s): %v", description, err)
	}
}

// newLedgerBook is newTestBook plus three transactions in January/February
// 2024.
func newLedgerBook(t *testing.T) *Book {
	t.Helper()
	b := newTestBook(t)
	addTestTx(t, b, "t1", NewDate(2024, time.January, 5), "Printer paper",
		map[string]float64{"supplies": 42.50, "bank": -42.50})
	addTestTx(t, b, "t2", NewDate(2024, time.January, 10), "Invoice 12",
		map[string]float64{"bank": 100, "sales": -100})
	addTestTx(t, b, "t3", NewDate(2024, time.February, 1), "Taxi",
		map[string]float64{"travel": 30, "bank": -30})
	return b
}
