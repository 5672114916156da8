package autogaap

// BalanceSheet partitions account balances into assets, liabilities and
// equity, with the current period result folded into equity as a synthetic
// line.
type BalanceSheet struct {
	Assets      []StatementLine
	Liabilities []StatementLine
	Equity      []StatementLine

	TotalAssets      Amount
	TotalLiabilities Amount
	TotalEquity      Amount

	// Variance is assets - (liabilities + equity); the sheet reconciles when
	// it is within tolerance.
	Variance Amount
}

// Reconciles reports whether assets equal liabilities plus equity within
// tolerance.
func (bs *BalanceSheet) Reconciles() bool { return bs.Variance.Within(Tolerance) }

// NewBalanceSheet derives a balance sheet from journal entries. When the
// period's net income is material it is appended to equity as a
// "Current period earnings" line (or "Current period loss" when negative).
func NewBalanceSheet(entries []JournalEntry) *BalanceSheet {
	balances := AccountBalances(entries)

	bs := &BalanceSheet{
		Assets:      sectionLines(balances, Asset),
		Liabilities: sectionLines(balances, Liability),
		Equity:      sectionLines(balances, Equity),
	}

	if income := netIncome(balances); income.Material() {
		name := "Current period earnings"
		if income.IsNegative() {
			name = "Current period loss"
		}
		bs.Equity = append(bs.Equity, StatementLine{AccountName: name, Balance: income})
	}

	bs.TotalAssets = sectionTotal(bs.Assets)
	bs.TotalLiabilities = sectionTotal(bs.Liabilities)
	bs.TotalEquity = sectionTotal(bs.Equity)
	bs.Variance = bs.TotalAssets.Sub(bs.TotalLiabilities.Add(bs.TotalEquity)).Round2()
	return bs
}
