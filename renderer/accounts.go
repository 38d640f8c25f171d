package renderer

import "github.com/jeffa/gcbook"

// AccountNames renders one full hierarchical account name per line, in the
// order given. The output is deliberately plain so it stays greppable.
func AccountNames(accounts []*gcbook.Account) string {
	b := newBuilder()
	for _, a := range accounts {
		b.Printf("%s\n", a.FullName())
	}
	return b.String()
}

// AccountTree renders the subset of the account tree covering the selected
// accounts, short names indented two spaces per level. Ancestors of a
// selected account are always shown so the nesting stays meaningful.
func AccountTree(book *gcbook.Book, selected []*gcbook.Account) string {
	show := make(map[*gcbook.Account]bool, len(selected))
	for _, a := range selected {
		for p := a; p != nil && !p.IsRoot(); p = p.Parent() {
			if show[p] {
				break
			}
			show[p] = true
		}
	}

	b := newBuilder()
	for _, a := range book.Accounts() {
		if !show[a] {
			continue
		}
		for i := 1; i < a.Depth(); i++ {
			b.Printf("  ")
		}
		b.Printf("%s\n", a.Name)
	}
	return b.String()
}
