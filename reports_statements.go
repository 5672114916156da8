package autogaap

// This file holds the statement layer shared pieces: per-account balances
// annotated with the normal-balance convention, and the line shape every
// statement section is made of.

// AccountBalance carries the debit/credit sums for one (type, name) pair.
// Unlike Summary's per-account totals, the statement layer keys by both type
// and name, so a name reused across types shows up in each section it
// belongs to.
type AccountBalance struct {
	AccountType AccountType
	AccountName string
	Debit       Amount
	Credit      Amount
}

// Net returns the balance expressed as a signed number using the account's
// normal-balance convention: debit-normal accounts report debit - credit,
// credit-normal accounts report credit - debit.
func (ab AccountBalance) Net() Amount {
	if ab.AccountType.NormalBalance() == CreditSide {
		return ab.Credit.Sub(ab.Debit).Round2()
	}
	return ab.Debit.Sub(ab.Credit).Round2()
}

// StatementLine is one row of a statement section.
type StatementLine struct {
	AccountName string
	Balance     Amount
}

// AccountBalances aggregates entries into per-account balances keyed by
// (account type, account name), in first-encounter order.
func AccountBalances(entries []JournalEntry) []AccountBalance {
	type key struct {
		t AccountType
		n string
	}
	index := make(map[key]int)
	var balances []AccountBalance

	for _, entry := range entries {
		for _, li := range entry.Lines {
			k := key{t: ParseAccountType(string(li.AccountType)), n: li.Name()}
			i, ok := index[k]
			if !ok {
				i = len(balances)
				index[k] = i
				balances = append(balances, AccountBalance{AccountType: k.t, AccountName: k.n})
			}
			balances[i].Debit = balances[i].Debit.Add(li.Debit)
			balances[i].Credit = balances[i].Credit.Add(li.Credit)
		}
	}
	return balances
}

// netIncome computes total revenue net minus total expense net over the
// given balances.
func netIncome(balances []AccountBalance) Amount {
	var revenue, expenses Amount
	for _, ab := range balances {
		switch ab.AccountType {
		case Revenue:
			revenue = revenue.Add(ab.Net())
		case Expense:
			expenses = expenses.Add(ab.Net())
		}
	}
	return revenue.Sub(expenses).Round2()
}

// sectionLines keeps the material balances of one account type as statement lines.
func sectionLines(balances []AccountBalance, t AccountType) []StatementLine {
	var lines []StatementLine
	for _, ab := range balances {
		if ab.AccountType != t {
			continue
		}
		net := ab.Net()
		if !net.Material() {
			continue // immaterial, treated as zero
		}
		lines = append(lines, StatementLine{AccountName: ab.AccountName, Balance: net})
	}
	return lines
}

// sectionTotal sums the balances of a section.
func sectionTotal(lines []StatementLine) Amount {
	var total Amount
	for _, l := range lines {
		total = total.Add(l.Balance)
	}
	return total.Round2()
}
