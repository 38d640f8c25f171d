package renderer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jeffa/gcbook"
)

func newTestBook(t *testing.T) *gcbook.Book {
	t.Helper()
	b := gcbook.NewBook()

	add := func(id, parent, name, description string, typ gcbook.AccountType) {
		t.Helper()
		if _, err := b.AddAccount(id, parent, name, description, typ, "EUR"); err != nil {
			t.Fatalf("AddAccount(%s): %v", name, err)
		}
	}
	add("root", "", "Root Account", "", gcbook.AccountRoot)
	add("assets", "root", "Assets", "", gcbook.AccountAsset)
	add("bank", "assets", "Bank", "main account", gcbook.AccountBank)
	add("expenses", "root", "Expenses", "", gcbook.AccountExpense)
	add("office", "expenses", "Office", "", gcbook.AccountExpense)
	add("supplies", "office", "Supplies", "pens and paper", gcbook.AccountExpense)
	add("income", "root", "Income", "", gcbook.AccountIncome)
	add("sales", "income", "Sales", "", gcbook.AccountIncome)

	tx := func(id string, date gcbook.Date, description string, records []gcbook.SplitRecord) {
		t.Helper()
		if err := b.AddTransaction(id, date, "", description, "", "EUR", records); err != nil {
			t.Fatalf("AddTransaction(%s): %v", description, err)
		}
	}
	tx("t1", gcbook.NewDate(2024, time.January, 5), "Printer paper", []gcbook.SplitRecord{
		{AccountID: "supplies", Memo: "A4 box", ReconcileState: "n", Value: decimal.NewFromFloat(42.50)},
		{AccountID: "bank", ReconcileState: "n", Value: decimal.NewFromFloat(-42.50)},
	})
	tx("t2", gcbook.NewDate(2024, time.January, 10), "Invoice 12", []gcbook.SplitRecord{
		{AccountID: "bank", ReconcileState: "y", Value: decimal.NewFromInt(100)},
		{AccountID: "sales", ReconcileState: "n", Value: decimal.NewFromInt(-100)},
	})
	return b
}
