package renderer

import "github.com/jeffa/gcbook"

// AccountStatement renders every entry of one account with a running balance.
// The balance runs per currency, so an account that saw splits in several
// currencies shows each currency's own running figure. The Num column carries
// a "[*]" marker when the transaction still has an unreconciled bank split,
// so pending items stand out.
func AccountStatement(account *gcbook.Account, entries []gcbook.Entry) string {
	b := newBuilder()
	b.Printf("# %s\n\n", account.FullName())
	if len(entries) == 0 {
		b.Printf(NoMatch)
		return b.String()
	}

	b.Printf("| Date | Num | Description | Debit | Credit | Balance |\n")
	b.Printf("|:---|:---|:---|---:|---:|---:|\n")
	balances := make(map[string]gcbook.Money)
	for _, e := range entries {
		num := e.Tx.Num
		if e.Tx.HasUnreconciledBank() {
			num += "[*]"
		}
		debit, credit := "", ""
		if e.Split.IsDebit() {
			debit = e.Split.Value.String()
		} else if e.Split.IsCredit() {
			credit = e.Split.Value.Neg().String()
		}
		cur := e.Split.Value.Currency()
		balances[cur] = balances[cur].Add(e.Split.Value)
		b.Printf("| %s | %s | %s | %s | %s | %s |\n",
			e.Tx.Date, num, cell(e.Tx.Description), debit, credit, balances[cur])
	}
	return b.String()
}
