package autogaap

import "github.com/aesfinancelab/autogaap/date"

// SampleLedger returns the embedded starter ledger used when no stored
// entries exist and the remote fallback dataset cannot be fetched. It is a
// small but complete year of activity: revenue, an expense, a purchase on
// account, an owner investment and a loan repayment.
func SampleLedger() []JournalEntry {
	return []JournalEntry{
		{
			JournalNumber: "CPU-CASH-SREV-20240105",
			PostDate:      date.New(2024, 1, 5),
			Description:   "Service revenue received in cash",
			Lines: []LineItem{
				{AccountType: Asset, AccountName: "Cash", Debit: A(8500), Credit: A(0)},
				{AccountType: Revenue, AccountName: "Service Revenue", Debit: A(0), Credit: A(8500)},
			},
		},
		{
			JournalNumber: "CPU-RENT-CASH-20240201",
			PostDate:      date.New(2024, 2, 1),
			Description:   "Office rent paid for February",
			Lines: []LineItem{
				{AccountType: Expense, AccountName: "Rent Expense", Debit: A(1200), Credit: A(0)},
				{AccountType: Asset, AccountName: "Cash", Debit: A(0), Credit: A(1200)},
			},
		},
		{
			JournalNumber: "CPU-EQ-AP-20240312",
			PostDate:      date.New(2024, 3, 12),
			Description:   "Purchased equipment on account",
			Lines: []LineItem{
				{AccountType: Asset, AccountName: "Equipment", Debit: A(5000), Credit: A(0)},
				{AccountType: Liability, AccountName: "Accounts Payable", Debit: A(0), Credit: A(5000)},
			},
		},
		{
			JournalNumber: "CPU-INVEST-20240402",
			PostDate:      date.New(2024, 4, 2),
			Description:   "Owner investment to capitalize the business",
			Lines: []LineItem{
				{AccountType: Asset, AccountName: "Cash", Debit: A(10000), Credit: A(0)},
				{AccountType: Equity, AccountName: "Owner's Capital", Debit: A(0), Credit: A(10000)},
			},
		},
		{
			JournalNumber: "CPU-LOANPAY-20240520",
			PostDate:      date.New(2024, 5, 20),
			Description:   "Principal payment on bank loan",
			Lines: []LineItem{
				{AccountType: Liability, AccountName: "Notes Payable", Debit: A(2000), Credit: A(0)},
				{AccountType: Asset, AccountName: "Cash", Debit: A(0), Credit: A(2000)},
			},
		},
	}
}
