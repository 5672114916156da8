package autogaap

// EquityStatement lists material equity balances and rolls the period's net
// income forward into ending equity.
type EquityStatement struct {
	Lines []StatementLine

	OpeningEquity Amount // investments and balances already in equity accounts
	NetIncome     Amount
	EndingEquity  Amount
}

// NewEquityStatement derives a statement of owner's equity from journal entries.
func NewEquityStatement(entries []JournalEntry) *EquityStatement {
	balances := AccountBalances(entries)

	es := &EquityStatement{Lines: sectionLines(balances, Equity)}
	es.OpeningEquity = sectionTotal(es.Lines)
	es.NetIncome = netIncome(balances)
	es.EndingEquity = es.OpeningEquity.Add(es.NetIncome).Round2()
	return es
}
