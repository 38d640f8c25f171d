// Package gnucash loads a GnuCash book stored in the SQLite backend into a
// gcbook.Book. The file is only ever opened read-only: reporting must be safe
// against a book currently open in GnuCash itself.
package gnucash

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/shopspring/decimal"

	"github.com/jeffa/gcbook"
)

// ErrNotGnuCash is returned when the file is SQLite but misses the GnuCash
// schema.
var ErrNotGnuCash = errors.New("not a GnuCash SQLite book")

// Open reads the book at path and assembles the in-memory model.
func Open(path string) (*gcbook.Book, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cannot open book %q: %w", path, err)
	}

	// mode=ro also refuses to create an empty database for a bogus path.
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("cannot open book %q: %w", path, err)
	}
	defer db.Close()

	if err := checkSchema(db); err != nil {
		return nil, fmt.Errorf("book %q: %w", path, err)
	}

	book := gcbook.NewBook()
	commodities, err := loadCommodities(db)
	if err != nil {
		return nil, fmt.Errorf("book %q: %w", path, err)
	}
	if err := loadAccounts(db, book, commodities); err != nil {
		return nil, fmt.Errorf("book %q: %w", path, err)
	}
	if err := loadTransactions(db, book, commodities); err != nil {
		return nil, fmt.Errorf("book %q: %w", path, err)
	}
	return book, nil
}

func checkSchema(db *sql.DB) error {
	var version int
	err := db.QueryRow(`SELECT table_version FROM versions WHERE table_name = 'Gnucash'`).Scan(&version)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotGnuCash, err)
	}
	return nil
}

func loadCommodities(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT guid, mnemonic FROM commodities`)
	if err != nil {
		return nil, fmt.Errorf("reading commodities: %w", err)
	}
	defer rows.Close()

	commodities := make(map[string]string)
	for rows.Next() {
		var guid, mnemonic string
		if err := rows.Scan(&guid, &mnemonic); err != nil {
			return nil, fmt.Errorf("reading commodities: %w", err)
		}
		commodities[guid] = mnemonic
	}
	return commodities, rows.Err()
}

type accountRow struct {
	guid        string
	name        string
	accountType string
	parent      sql.NullString
	commodity   sql.NullString
	description sql.NullString
	children    []*accountRow
}

func loadAccounts(db *sql.DB, book *gcbook.Book, commodities map[string]string) error {
	rows, err := db.Query(`
		SELECT guid, name, account_type, parent_guid, commodity_guid, description
		FROM accounts
		ORDER BY code, name`)
	if err != nil {
		return fmt.Errorf("reading accounts: %w", err)
	}
	defer rows.Close()

	byGUID := make(map[string]*accountRow)
	var all []*accountRow
	for rows.Next() {
		var r accountRow
		if err := rows.Scan(&r.guid, &r.name, &r.accountType, &r.parent, &r.commodity, &r.description); err != nil {
			return fmt.Errorf("reading accounts: %w", err)
		}
		byGUID[r.guid] = &r
		all = append(all, &r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading accounts: %w", err)
	}

	// Link children in query order and find the book root. GnuCash keeps a
	// second root ("Template Root") for scheduled-transaction templates;
	// only the tree under the real root belongs to the chart of accounts.
	var root *accountRow
	for _, r := range all {
		if !r.parent.Valid {
			if r.accountType == string(gcbook.AccountRoot) && (root == nil || r.name == "Root Account") {
				root = r
			}
			continue
		}
		if p, ok := byGUID[r.parent.String]; ok {
			p.children = append(p.children, r)
		}
	}
	if root == nil {
		return fmt.Errorf("%w: no root account", ErrNotGnuCash)
	}

	var insert func(r *accountRow, parentGUID string) error
	insert = func(r *accountRow, parentGUID string) error {
		_, err := book.AddAccount(r.guid, parentGUID, r.name, r.description.String,
			gcbook.AccountType(r.accountType), commodities[r.commodity.String])
		if err != nil {
			return err
		}
		for _, c := range r.children {
			if err := insert(c, r.guid); err != nil {
				return err
			}
		}
		return nil
	}
	if err := insert(root, ""); err != nil {
		return fmt.Errorf("building account tree: %w", err)
	}
	return nil
}

type txRow struct {
	guid        string
	currency    sql.NullString
	num         sql.NullString
	postDate    sql.NullString
	description sql.NullString
	splits      []gcbook.SplitRecord
}

func loadTransactions(db *sql.DB, book *gcbook.Book, commodities map[string]string) error {
	notes, err := loadNotes(db)
	if err != nil {
		return err
	}

	rows, err := db.Query(`
		SELECT guid, currency_guid, num, post_date, description
		FROM transactions
		ORDER BY post_date, enter_date`)
	if err != nil {
		return fmt.Errorf("reading transactions: %w", err)
	}
	byGUID := make(map[string]*txRow)
	var all []*txRow
	for rows.Next() {
		var r txRow
		if err := rows.Scan(&r.guid, &r.currency, &r.num, &r.postDate, &r.description); err != nil {
			rows.Close()
			return fmt.Errorf("reading transactions: %w", err)
		}
		byGUID[r.guid] = &r
		all = append(all, &r)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return fmt.Errorf("reading transactions: %w", err)
	}

	if err := loadSplits(db, byGUID); err != nil {
		return err
	}

	for _, r := range all {
		date, err := parsePostDate(r.postDate.String)
		if err != nil {
			return fmt.Errorf("transaction %q: %w", r.guid, err)
		}
		err = book.AddTransaction(r.guid, date, r.num.String, r.description.String,
			notes[r.guid], commodities[r.currency.String], r.splits)
		if errors.Is(err, gcbook.ErrForeignAccount) {
			// Scheduled-transaction templates post to template accounts;
			// they are not part of the ledger.
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func loadSplits(db *sql.DB, txs map[string]*txRow) error {
	rows, err := db.Query(`
		SELECT tx_guid, account_guid, memo, reconcile_state, value_num, value_denom
		FROM splits
		ORDER BY tx_guid, rowid`)
	if err != nil {
		return fmt.Errorf("reading splits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var txGUID, accountGUID string
		var memo, state sql.NullString
		var num, denom int64
		if err := rows.Scan(&txGUID, &accountGUID, &memo, &state, &num, &denom); err != nil {
			return fmt.Errorf("reading splits: %w", err)
		}
		tx, ok := txs[txGUID]
		if !ok {
			continue
		}
		if denom == 0 {
			return fmt.Errorf("split in transaction %q has zero denominator", txGUID)
		}
		tx.splits = append(tx.splits, gcbook.SplitRecord{
			AccountID:      accountGUID,
			Memo:           memo.String,
			ReconcileState: state.String,
			Value:          decimal.NewFromInt(num).Div(decimal.NewFromInt(denom)),
		})
	}
	return rows.Err()
}

// loadNotes reads transaction notes, which GnuCash stores in the generic
// slots table rather than on the transaction row.
func loadNotes(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT obj_guid, string_val FROM slots WHERE name = 'notes'`)
	if err != nil {
		return nil, fmt.Errorf("reading notes: %w", err)
	}
	defer rows.Close()

	notes := make(map[string]string)
	for rows.Next() {
		var guid string
		var val sql.NullString
		if err := rows.Scan(&guid, &val); err != nil {
			return nil, fmt.Errorf("reading notes: %w", err)
		}
		notes[guid] = val.String
	}
	return notes, rows.Err()
}

// postDateFormats covers the timestamp spellings found in the wild: current
// GnuCash writes "2006-01-02 15:04:05", older releases a compact form.
var postDateFormats = []string{
	"2006-01-02 15:04:05",
	"20060102150405",
	"2006-01-02",
}

func parsePostDate(s string) (gcbook.Date, error) {
	for _, f := range postDateFormats {
		if t, err := time.Parse(f, s); err == nil {
			return gcbook.NewDate(t.Date()), nil
		}
	}
	return gcbook.Date{}, fmt.Errorf("unrecognized post date %q", s)
}
