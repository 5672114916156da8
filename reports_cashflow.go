package autogaap

// CashFlowStatement categorizes the cash movement of every journal entry
// into operating, investing and financing activity.
type CashFlowStatement struct {
	Operating Amount
	Investing Amount
	Financing Amount
	NetChange Amount
}

// NewCashFlowStatement derives a cash flow statement from journal entries.
//
// For each entry the first line posting against a cash asset account (an
// asset line whose name contains "cash", case-insensitive) carries the
// entry's cash delta (debit - credit). The other lines' types classify that
// delta: a liability or equity counterpart means financing, an asset
// counterpart investing, anything else operating. Entries without a cash
// line are excluded entirely.
func NewCashFlowStatement(entries []JournalEntry) *CashFlowStatement {
	cf := &CashFlowStatement{}

	for _, entry := range entries {
		cashIndex := -1
		for i, li := range entry.Lines {
			if li.IsCash() {
				cashIndex = i
				break
			}
		}
		if cashIndex < 0 {
			continue
		}

		cashLine := entry.Lines[cashIndex]
		delta := cashLine.Debit.Sub(cashLine.Credit)

		var hasFinancing, hasInvesting bool
		for i, li := range entry.Lines {
			if i == cashIndex {
				continue
			}
			switch ParseAccountType(string(li.AccountType)) {
			case Liability, Equity:
				hasFinancing = true
			case Asset:
				hasInvesting = true
			}
		}

		switch {
		case hasFinancing:
			cf.Financing = cf.Financing.Add(delta)
		case hasInvesting:
			cf.Investing = cf.Investing.Add(delta)
		default:
			cf.Operating = cf.Operating.Add(delta)
		}
	}

	cf.Operating = cf.Operating.Round2()
	cf.Investing = cf.Investing.Round2()
	cf.Financing = cf.Financing.Round2()
	cf.NetChange = cf.Operating.Add(cf.Investing).Add(cf.Financing).Round2()
	return cf
}
