package autogaap

import (
	"strings"
	"testing"

	"github.com/aesfinancelab/autogaap/date"
)

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		in   string
		want AccountType
	}{
		{"asset", Asset},
		{" Asset ", Asset},
		{"LIABILITY", Liability},
		{"equity", Equity},
		{"revenue", Revenue},
		{"expense", Expense},
		{"other", Other},
		{"goodwill", Other},
		{"", Other},
	}
	for _, tt := range tests {
		if got := ParseAccountType(tt.in); got != tt.want {
			t.Errorf("ParseAccountType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanonicalAccountType(t *testing.T) {
	tests := []struct {
		in   string
		want AccountType
	}{
		{"asset", Asset},
		{" Asset ", Asset},
		{"Goodwill", AccountType("goodwill")},
		{"other", Other},
		{"", Other},
		{"   ", Other},
	}
	for _, tt := range tests {
		if got := CanonicalAccountType(tt.in); got != tt.want {
			t.Errorf("CanonicalAccountType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalBalance(t *testing.T) {
	tests := []struct {
		in   AccountType
		want Side
	}{
		{Asset, DebitSide},
		{Expense, DebitSide},
		{Liability, CreditSide},
		{Equity, CreditSide},
		{Revenue, CreditSide},
		{Other, DebitSide},
		{AccountType("mystery"), DebitSide},
	}
	for _, tt := range tests {
		if got := tt.in.NormalBalance(); got != tt.want {
			t.Errorf("%q.NormalBalance() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLineItemName(t *testing.T) {
	if got := (LineItem{AccountName: "  "}).Name(); got != UnspecifiedAccount {
		t.Errorf("blank name = %q, want %q", got, UnspecifiedAccount)
	}
	if got := (LineItem{AccountName: "Cash"}).Name(); got != "Cash" {
		t.Errorf("Name() = %q, want Cash", got)
	}
}

func TestLineItemIsCash(t *testing.T) {
	tests := []struct {
		name string
		li   LineItem
		want bool
	}{
		{"cash asset", LineItem{AccountType: Asset, AccountName: "Cash"}, true},
		{"petty cash", LineItem{AccountType: Asset, AccountName: "Petty Cash Fund"}, true},
		{"case insensitive", LineItem{AccountType: Asset, AccountName: "CASH"}, true},
		{"cash named liability", LineItem{AccountType: Liability, AccountName: "Cash Advances"}, false},
		{"non cash asset", LineItem{AccountType: Asset, AccountName: "Equipment"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.li.IsCash(); got != tt.want {
				t.Errorf("IsCash() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJournalEntryBalanced(t *testing.T) {
	balanced := JournalEntry{
		PostDate: date.New(2024, 1, 5),
		Lines: []LineItem{
			{AccountType: Asset, AccountName: "Cash", Debit: A(100)},
			{AccountType: Revenue, AccountName: "Sales", Credit: A(100)},
		},
	}
	if !balanced.Balanced() {
		t.Error("equal debits and credits should be balanced")
	}

	slightlyOff := JournalEntry{
		Lines: []LineItem{
			{AccountName: "Cash", Debit: A(100.005)},
			{AccountName: "Sales", Credit: A(100)},
		},
	}
	if !slightlyOff.Balanced() {
		t.Error("a difference within tolerance should still balance")
	}

	off := JournalEntry{
		Lines: []LineItem{
			{AccountName: "Cash", Debit: A(100.02)},
			{AccountName: "Sales", Credit: A(100)},
		},
	}
	if off.Balanced() {
		t.Error("a 0.02 difference should not balance")
	}
}

func TestJournalEntryLabel(t *testing.T) {
	e := JournalEntry{JournalNumber: "CPU-CASH-SREV-20240105"}
	if got := e.Label(4); got != "CPU-CASH-SREV-20240105" {
		t.Errorf("Label() = %q, want the journal number", got)
	}
	anon := JournalEntry{}
	if got := anon.Label(4); got != "Entry 5" {
		t.Errorf("Label() = %q, want Entry 5", got)
	}
}

func TestNewJournalNumber(t *testing.T) {
	n := NewJournalNumber("Accounts Payable", "cash")
	if !strings.HasPrefix(n, "CPU-ACCOUNTS-PAYABLE-CASH-") {
		t.Errorf("NewJournalNumber() = %q, want CPU-ACCOUNTS-PAYABLE-CASH- prefix", n)
	}
	n = NewJournalNumber("Cash", "")
	if !strings.HasPrefix(n, "CPU-CASH-GEN-") {
		t.Errorf("NewJournalNumber() = %q, want CPU-CASH-GEN- prefix", n)
	}
}
