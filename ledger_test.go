package autogaap

import (
	"testing"
	"time"

	"github.com/aesfinancelab/autogaap/date"
)

func entryOn(y int, m, d int, number string, lines ...LineItem) JournalEntry {
	return JournalEntry{
		JournalNumber: number,
		PostDate:      date.New(y, time.Month(m), d),
		Description:   "test entry",
		Lines:         lines,
	}
}

func TestLedgerAppendKeepsDateOrder(t *testing.T) {
	l := NewLedger(
		entryOn(2024, 3, 12, "C"),
		entryOn(2024, 1, 5, "A"),
		entryOn(2024, 2, 1, "B"),
	)
	l.Append(entryOn(2024, 1, 20, "A2"))

	var got []string
	for _, e := range l.Entries() {
		got = append(got, e.JournalNumber)
	}
	want := []string{"A", "A2", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}

	if l.OldestEntryDate() != date.New(2024, 1, 5) {
		t.Errorf("OldestEntryDate() = %s", l.OldestEntryDate())
	}
	if l.NewestEntryDate() != date.New(2024, 3, 12) {
		t.Errorf("NewestEntryDate() = %s", l.NewestEntryDate())
	}
}

func TestLedgerFilters(t *testing.T) {
	cash := LineItem{AccountType: Asset, AccountName: "Cash", Debit: A(100)}
	rent := LineItem{AccountType: Expense, AccountName: "Rent Expense", Debit: A(100)}

	l := NewLedger(
		entryOn(2024, 1, 5, "A", cash),
		entryOn(2024, 2, 1, "B", rent),
	)
	recurring := entryOn(2024, 3, 1, "R-1", rent)
	recurring.Recurring = true
	l.Append(recurring)

	count := 0
	for _, e := range l.Entries(ByAccount("Cash")) {
		count++
		if e.JournalNumber != "A" {
			t.Errorf("ByAccount(Cash) yielded %q", e.JournalNumber)
		}
	}
	if count != 1 {
		t.Errorf("ByAccount(Cash) yielded %d entries, want 1", count)
	}

	count = 0
	for range l.Entries(ByAccountType(Expense)) {
		count++
	}
	if count != 2 {
		t.Errorf("ByAccountType(Expense) yielded %d entries, want 2", count)
	}

	count = 0
	for _, e := range l.Entries(Recurring) {
		count++
		if e.JournalNumber != "R-1" {
			t.Errorf("Recurring yielded %q", e.JournalNumber)
		}
	}
	if count != 1 {
		t.Errorf("Recurring yielded %d entries, want 1", count)
	}
}

func TestLedgerCashBalance(t *testing.T) {
	l := NewLedger(SampleLedger()...)

	tests := []struct {
		on   date.Date
		want Amount
	}{
		{date.New(2024, 1, 4), A(0)},
		{date.New(2024, 1, 5), A(8500)},
		{date.New(2024, 2, 1), A(7300)},
		{date.New(2024, 12, 31), A(15300)},
	}
	for _, tt := range tests {
		if got := l.CashBalance(tt.on); !got.Equal(tt.want) {
			t.Errorf("CashBalance(%s) = %s, want %s", tt.on, got.Fixed2(), tt.want.Fixed2())
		}
	}
}
