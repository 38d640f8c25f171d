package gcbook

import (
	"fmt"
	"strings"
)

// AccountType is the GnuCash account classification.
type AccountType string

const (
	AccountRoot       AccountType = "ROOT"
	AccountAsset      AccountType = "ASSET"
	AccountBank       AccountType = "BANK"
	AccountCash       AccountType = "CASH"
	AccountCredit     AccountType = "CREDIT"
	AccountLiability  AccountType = "LIABILITY"
	AccountEquity     AccountType = "EQUITY"
	AccountIncome     AccountType = "INCOME"
	AccountExpense    AccountType = "EXPENSE"
	AccountReceivable AccountType = "RECEIVABLE"
	AccountPayable    AccountType = "PAYABLE"
	AccountStock      AccountType = "STOCK"
	AccountMutual     AccountType = "MUTUAL"
	AccountTrading    AccountType = "TRADING"
)

// IsProfitAndLoss reports whether balances of this type belong on the income
// statement rather than the balance sheet.
func (t AccountType) IsProfitAndLoss() bool {
	return t == AccountIncome || t == AccountExpense
}

// FullNameSeparator joins account path segments in a full hierarchical name.
const FullNameSeparator = ":"

// Account is one node of the chart-of-accounts tree. Accounts are owned by
// their Book and are read-only once loaded: this toolkit never creates or
// mutates accounts in the underlying file.
//
// The tree uses arena-style storage: the Book holds a flat slice of nodes and
// accounts reference parent and children by index.
type Account struct {
	book *Book
	idx  int

	ID          string // stable identifier in the source file (GnuCash guid)
	Name        string // last path segment
	Description string
	Type        AccountType
	Commodity   string // currency or security mnemonic of the account

	fullName string
	parent   int // index in the book arena, -1 for the root
	children []int
}

// FullName returns the full hierarchical name, segments joined by ":" and
// excluding the invisible root ("Expenses:Office:Supplies").
func (a *Account) FullName() string { return a.fullName }

// Parent returns the parent account, or nil for the root.
func (a *Account) Parent() *Account {
	if a.parent < 0 {
		return nil
	}
	return &a.book.accounts[a.parent]
}

// Children returns the child accounts in the book's native order.
func (a *Account) Children() []*Account {
	out := make([]*Account, 0, len(a.children))
	for _, i := range a.children {
		out = append(out, &a.book.accounts[i])
	}
	return out
}

// IsLeaf reports whether the account has no children.
func (a *Account) IsLeaf() bool { return len(a.children) == 0 }

// IsRoot reports whether the account is the invisible tree root.
func (a *Account) IsRoot() bool { return a.parent < 0 }

// Depth returns the nesting level: 1 for top-level accounts.
func (a *Account) Depth() int {
	depth := 0
	for p := a; !p.IsRoot(); p = p.Parent() {
		depth++
	}
	return depth
}

// AddAccount adds an account to the book. The parent must already exist; an
// empty parentID declares the tree root (there can be only one).
func (b *Book) AddAccount(id, parentID, name, description string, typ AccountType, commodity string) (*Account, error) {
	if id == "" {
		return nil, fmt.Errorf("account %q has no id", name)
	}
	if _, dup := b.byID[id]; dup {
		return nil, fmt.Errorf("duplicate account id %q", id)
	}
	// Splits hold pointers into the arena, so the chart must be complete
	// before the first transaction: growing the slice later would move it.
	if len(b.transactions) > 0 {
		return nil, fmt.Errorf("account %q: chart of accounts is frozen once transactions are added", name)
	}

	a := Account{
		book:        b,
		idx:         len(b.accounts),
		ID:          id,
		Name:        name,
		Description: description,
		Type:        typ,
		Commodity:   commodity,
		parent:      -1,
	}

	if parentID == "" {
		if b.root >= 0 {
			return nil, fmt.Errorf("account %q: book already has a root", name)
		}
		b.root = a.idx
	} else {
		p, ok := b.byID[parentID]
		if !ok {
			return nil, fmt.Errorf("account %q references unknown parent %q", name, parentID)
		}
		a.parent = p
		if b.accounts[p].IsRoot() {
			a.fullName = name
		} else {
			a.fullName = b.accounts[p].fullName + FullNameSeparator + name
		}
	}

	b.accounts = append(b.accounts, a)
	b.byID[id] = a.idx
	if a.parent >= 0 {
		b.accounts[a.parent].children = append(b.accounts[a.parent].children, a.idx)
		b.byFullName[a.fullName] = a.idx
	}
	return &b.accounts[a.idx], nil
}

// Accounts returns all accounts in the book's native hierarchical order
// (depth-first, children in file order), excluding the invisible root.
func (b *Book) Accounts() []*Account {
	out := make([]*Account, 0, len(b.accounts))
	var walk func(idx int)
	walk = func(idx int) {
		a := &b.accounts[idx]
		if !a.IsRoot() {
			out = append(out, a)
		}
		for _, c := range a.children {
			walk(c)
		}
	}
	if b.root >= 0 {
		walk(b.root)
	}
	return out
}

// AccountByFullName returns the account with this exact full hierarchical
// name, or nil.
func (b *Book) AccountByFullName(name string) *Account {
	if i, ok := b.byFullName[name]; ok {
		return &b.accounts[i]
	}
	return nil
}

// AccountsByName returns every account whose last path segment is name.
func (b *Book) AccountsByName(name string) []*Account {
	var out []*Account
	for _, a := range b.Accounts() {
		if a.Name == name {
			out = append(out, a)
		}
	}
	return out
}

// FindAccount resolves a user-supplied account name: an exact full
// hierarchical name first, then a unique short name. Ambiguous short names
// are an error listing the candidates.
func (b *Book) FindAccount(name string) (*Account, error) {
	if a := b.AccountByFullName(name); a != nil {
		return a, nil
	}
	candidates := b.AccountsByName(name)
	switch len(candidates) {
	case 0:
		return nil, fmt.Errorf("unknown account %q", name)
	case 1:
		return candidates[0], nil
	default:
		names := make([]string, 0, len(candidates))
		for _, a := range candidates {
			names = append(names, a.FullName())
		}
		return nil, fmt.Errorf("ambiguous account %q: matches %s", name, strings.Join(names, ", "))
	}
}

// SelectAccounts returns the accounts whose full name satisfies the filter,
// in the book's native hierarchical order.
func (b *Book) SelectAccounts(f Filter) []*Account {
	var out []*Account
	for _, a := range b.Accounts() {
		if f.Match(a.FullName()) {
			out = append(out, a)
		}
	}
	return out
}
