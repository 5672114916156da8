package autogaap

import (
	"slices"
	"sort"
)

// TypeTotals holds the running debit/credit sums for one account type.
type TypeTotals struct {
	AccountType AccountType `json:"accountType"`
	Debit       Amount      `json:"debit"`
	Credit      Amount      `json:"credit"`
	Net         Amount      `json:"net"` // raw debit - credit, no normal-balance adjustment
}

// AccountTotals holds the running debit/credit sums for one account name,
// carrying the most recently seen type for that name.
type AccountTotals struct {
	AccountName string      `json:"accountName"`
	AccountType AccountType `json:"accountType"`
	Debit       Amount      `json:"debit"`
	Credit      Amount      `json:"credit"`
	Net         Amount      `json:"net"`
}

// Summary provides an at-a-glance aggregation of a ledger: totals across all
// line items, per-type totals, and per-account totals.
type Summary struct {
	EntryCount      int
	LineItemCount   int
	TotalDebits     Amount
	TotalCredits    Amount
	TotalsByType    map[AccountType]TypeTotals
	TypeOrder       []AccountType // default order plus unrecognized types as encountered
	TotalsByAccount []AccountTotals // sorted by |net| descending
}

// Difference returns total debits minus total credits, rounded.
func (s *Summary) Difference() Amount {
	return s.TotalDebits.Sub(s.TotalCredits).Round2()
}

// Balanced reports whether the ledger debits and credits agree within tolerance.
func (s *Summary) Balanced() bool {
	return s.Difference().Within(Tolerance)
}

// Summarize aggregates journal entries into a Summary. It is a pure function
// of its input: entries without a usable line list contribute nothing, blank
// account names collapse into the placeholder account, and unrecognized
// types keep their own buckets, appended to the type order as encountered.
// All monetary sums are rounded to 2 decimals after accumulation.
func Summarize(entries []JournalEntry) *Summary {
	byType := make(map[AccountType]TypeTotals, len(DefaultTypeOrder))
	typeOrder := slices.Clone(DefaultTypeOrder)
	for _, t := range typeOrder {
		byType[t] = TypeTotals{AccountType: t}
	}

	byAccount := make(map[string]AccountTotals)
	var accountOrder []string
	var totalDebits, totalCredits Amount
	var lineItems int

	for _, entry := range entries {
		for _, li := range entry.Lines {
			accountType := CanonicalAccountType(string(li.AccountType))
			accountName := li.Name()

			totalDebits = totalDebits.Add(li.Debit)
			totalCredits = totalCredits.Add(li.Credit)
			lineItems++

			tt, ok := byType[accountType]
			if !ok {
				tt = TypeTotals{AccountType: accountType}
				typeOrder = append(typeOrder, accountType)
			}
			tt.Debit = tt.Debit.Add(li.Debit)
			tt.Credit = tt.Credit.Add(li.Credit)
			byType[accountType] = tt

			at, ok := byAccount[accountName]
			if !ok {
				at = AccountTotals{AccountName: accountName}
				accountOrder = append(accountOrder, accountName)
			}
			at.AccountType = accountType // most recently seen type wins
			at.Debit = at.Debit.Add(li.Debit)
			at.Credit = at.Credit.Add(li.Credit)
			byAccount[accountName] = at
		}
	}

	for t, tt := range byType {
		tt.Debit = tt.Debit.Round2()
		tt.Credit = tt.Credit.Round2()
		tt.Net = tt.Debit.Sub(tt.Credit).Round2()
		byType[t] = tt
	}

	accounts := make([]AccountTotals, 0, len(byAccount))
	for _, name := range accountOrder {
		at := byAccount[name]
		at.Debit = at.Debit.Round2()
		at.Credit = at.Credit.Round2()
		at.Net = at.Debit.Sub(at.Credit).Round2()
		accounts = append(accounts, at)
	}
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].Net.Abs().GreaterThan(accounts[j].Net.Abs())
	})

	return &Summary{
		EntryCount:      len(entries),
		LineItemCount:   lineItems,
		TotalDebits:     totalDebits.Round2(),
		TotalCredits:    totalCredits.Round2(),
		TotalsByType:    byType,
		TypeOrder:       typeOrder,
		TotalsByAccount: accounts,
	}
}

// TopAccounts returns the n largest account balances by |net|.
func (s *Summary) TopAccounts(n int) []AccountTotals {
	if n > len(s.TotalsByAccount) {
		n = len(s.TotalsByAccount)
	}
	return s.TotalsByAccount[:n]
}
