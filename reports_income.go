package autogaap

// IncomeStatement lists material revenue and expense balances and the
// resulting net income.
type IncomeStatement struct {
	Revenues []StatementLine
	Expenses []StatementLine

	TotalRevenue  Amount
	TotalExpenses Amount
	NetIncome     Amount
}

// NewIncomeStatement derives an income statement from journal entries.
func NewIncomeStatement(entries []JournalEntry) *IncomeStatement {
	balances := AccountBalances(entries)

	is := &IncomeStatement{
		Revenues: sectionLines(balances, Revenue),
		Expenses: sectionLines(balances, Expense),
	}
	is.TotalRevenue = sectionTotal(is.Revenues)
	is.TotalExpenses = sectionTotal(is.Expenses)
	is.NetIncome = is.TotalRevenue.Sub(is.TotalExpenses).Round2()
	return is
}
