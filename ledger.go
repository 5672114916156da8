package autogaap

import (
	"iter"
	"sort"

	"github.com/aesfinancelab/autogaap/date"
)

// Ledger represents a list of journal entries.
//
// In a Ledger entries are always in post-date order. Entries are immutable
// once appended; the only destructive operation is a full clear.
type Ledger struct {
	entries []JournalEntry
}

// NewLedger creates an empty ledger.
func NewLedger(entries ...JournalEntry) *Ledger {
	l := &Ledger{entries: make([]JournalEntry, 0, len(entries))}
	l.Append(entries...)
	return l
}

// Append appends entries to this ledger and maintains the post-date order.
func (l *Ledger) Append(entries ...JournalEntry) {
	l.entries = append(l.entries, entries...)
	l.stableSort()
}

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int { return len(l.entries) }

// Entries returns an iterator that yields each entry in post-date order.
// Optional filters restrict the iteration; an entry is yielded when any
// filter accepts it.
func (l *Ledger) Entries(filters ...func(JournalEntry) bool) iter.Seq2[int, JournalEntry] {
	return func(yield func(int, JournalEntry) bool) {
		for i, e := range l.entries {
			if len(filters) > 0 {
				accept := false
				for _, filter := range filters {
					if filter(e) {
						accept = true
						break
					}
				}
				if !accept {
					continue
				}
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// All returns a copy of the entry list, the snapshot handed to subscribers.
func (l *Ledger) All() []JournalEntry {
	out := make([]JournalEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// stableSort sorts the ledger by post date. The sort is stable, meaning
// entries on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].PostDate.Before(l.entries[j].PostDate)
	})
}

// OldestEntryDate returns the date of the earliest entry in the ledger, or
// the zero date for an empty ledger.
func (l *Ledger) OldestEntryDate() date.Date {
	if len(l.entries) == 0 {
		return date.Date{}
	}
	return l.entries[0].PostDate
}

// NewestEntryDate returns the date of the latest entry in the ledger, or the
// zero date for an empty ledger.
func (l *Ledger) NewestEntryDate() date.Date {
	if len(l.entries) == 0 {
		return date.Date{}
	}
	return l.entries[len(l.entries)-1].PostDate
}

// ByAccount returns a predicate that filters entries touching the named account.
func ByAccount(name string) func(JournalEntry) bool {
	return func(e JournalEntry) bool {
		for _, li := range e.Lines {
			if li.Name() == name {
				return true
			}
		}
		return false
	}
}

// ByAccountType returns a predicate that filters entries touching the given type.
func ByAccountType(t AccountType) func(JournalEntry) bool {
	return func(e JournalEntry) bool {
		for _, li := range e.Lines {
			if ParseAccountType(string(li.AccountType)) == t {
				return true
			}
		}
		return false
	}
}

// Recurring is a predicate that keeps scheduler-generated entries.
func Recurring(e JournalEntry) bool { return e.Recurring }

// CashBalance computes the net cash movement recorded up to and including a
// given date, from every cash line in the ledger. The ledger is sorted by
// date, so the scan stops at the first later entry.
func (l *Ledger) CashBalance(on date.Date) Amount {
	var balance Amount
	for _, e := range l.entries {
		if e.PostDate.After(on) {
			break
		}
		for _, li := range e.Lines {
			if li.IsCash() {
				balance = balance.Add(li.Debit).Sub(li.Credit)
			}
		}
	}
	return balance.Round2()
}
