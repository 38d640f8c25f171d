package gnucash

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffa/gcbook"
)

// fixtureSchema is the subset of the GnuCash SQLite schema this package
// reads.
const fixtureSchema = `
CREATE TABLE versions (table_name TEXT PRIMARY KEY, table_version INTEGER);
CREATE TABLE commodities (guid TEXT PRIMARY KEY, namespace TEXT, mnemonic TEXT);
CREATE TABLE accounts (
    guid TEXT PRIMARY KEY, name TEXT, account_type TEXT,
    commodity_guid TEXT, parent_guid TEXT, code TEXT, description TEXT
);
CREATE TABLE transactions (
    guid TEXT PRIMARY KEY, currency_guid TEXT, num TEXT,
    post_date TEXT, enter_date TEXT, description TEXT
);
CREATE TABLE splits (
    guid TEXT PRIMARY KEY, tx_guid TEXT, account_guid TEXT, memo TEXT,
    reconcile_state TEXT, value_num INTEGER, value_denom INTEGER,
    quantity_num INTEGER, quantity_denom INTEGER
);
CREATE TABLE slots (id INTEGER PRIMARY KEY, obj_guid TEXT, name TEXT, string_val TEXT);
`

func writeFixture(t *testing.T, statements ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.gnucash")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(fixtureSchema)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO versions VALUES ('Gnucash', 3000001)`)
	require.NoError(t, err)
	for _, stmt := range statements {
		_, err = db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	return path
}

func writeSampleBook(t *testing.T) string {
	t.Helper()
	return writeFixture(t,
		`INSERT INTO commodities VALUES ('eur', 'CURRENCY', 'EUR')`,
		`INSERT INTO accounts VALUES
			('root', 'Root Account', 'ROOT', NULL, NULL, '', ''),
			('troot', 'Template Root', 'ROOT', NULL, NULL, '', ''),
			('tacc', 'T', 'BANK', 'eur', 'troot', '', ''),
			('assets', 'Assets', 'ASSET', 'eur', 'root', '1', ''),
			('bank', 'Bank', 'BANK', 'eur', 'assets', '11', 'checking account'),
			('expenses', 'Expenses', 'EXPENSE', 'eur', 'root', '6', ''),
			('food', 'Food', 'EXPENSE', 'eur', 'expenses', '60', 'groceries')`,
		`INSERT INTO transactions VALUES
			('t1', 'eur', '42', '2024-03-05 10:59:00', '2024-03-05 11:00:00', 'Market'),
			('t2', 'eur', '', '20240110000000', '2024-01-10 09:00:00', 'Opening'),
			('tmpl', 'eur', '', '2024-01-01 00:00:00', '2024-01-01 00:00:00', 'Scheduled template')`,
		`INSERT INTO splits VALUES
			('s1', 't1', 'food', 'veggies', 'n', 1550, 100, 1550, 100),
			('s2', 't1', 'bank', '', 'y', -1550, 100, -1550, 100),
			('s3', 't2', 'bank', '', 'y', 50000, 100, 50000, 100),
			('s4', 'tmpl', 'tacc', '', 'n', 1, 100, 1, 100)`,
		`INSERT INTO slots VALUES (1, 't1', 'notes', 'weekly shopping')`,
	)
}

func TestOpen(t *testing.T) {
	book, err := Open(writeSampleBook(t))
	require.NoError(t, err)

	// The template tree is not part of the chart of accounts.
	names := make([]string, 0, book.NumAccounts())
	for _, a := range book.Accounts() {
		names = append(names, a.FullName())
	}
	assert.Equal(t, []string{"Assets", "Assets:Bank", "Expenses", "Expenses:Food"}, names)

	bank := book.AccountByFullName("Assets:Bank")
	require.NotNil(t, bank)
	assert.Equal(t, gcbook.AccountBank, bank.Type)
	assert.Equal(t, "checking account", bank.Description)
	assert.Equal(t, "EUR", bank.Commodity)

	// Both post_date spellings parse; templates are skipped; order is
	// chronological.
	txs := book.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, "Opening", txs[0].Description)
	assert.Equal(t, "Market", txs[1].Description)
	assert.Equal(t, gcbook.NewDate(2024, 3, 5), txs[1].Date)

	market := txs[1]
	assert.Equal(t, "42", market.Num)
	assert.Equal(t, "weekly shopping", market.Notes)
	require.Len(t, market.Splits, 2)
	assert.Equal(t, "Expenses:Food", market.Splits[0].Account.FullName())
	assert.Equal(t, "veggies", market.Splits[0].Memo)
	assert.Equal(t, "15.5", market.Splits[0].Value.Amount().String())
	assert.True(t, market.Splits[1].IsReconciled())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.gnucash"))
	assert.Error(t, err)
}

func TestOpenNotGnuCash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE t (x INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Open(path)
	assert.ErrorIs(t, err, ErrNotGnuCash)
}

func TestParsePostDate(t *testing.T) {
	for input, want := range map[string]gcbook.Date{
		"2024-03-05 10:59:00": gcbook.NewDate(2024, 3, 5),
		"20240305105900":      gcbook.NewDate(2024, 3, 5),
		"2024-03-05":          gcbook.NewDate(2024, 3, 5),
	} {
		got, err := parsePostDate(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
	_, err := parsePostDate("yesterday")
	assert.Error(t, err)
}
