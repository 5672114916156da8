package autogaap

import (
	"github.com/aesfinancelab/autogaap/date"
)

// RecurringTemplate describes a journal entry that is generated repeatedly
// inside a date window. Templates are consumed, never deleted: each time the
// window and frequency match the check date, one new journal entry is
// appended to the ledger.
type RecurringTemplate struct {
	Description string         `json:"description"`
	Lines       []LineItem     `json:"entries"`
	Start       date.Date      `json:"startDate"`
	End         date.Date      `json:"endDate"`
	Frequency   date.Frequency `json:"frequency"`

	// LastFired records the last date this template generated an entry.
	// It makes generation idempotent within a day: the scheduler may run any
	// number of times without duplicating postings.
	LastFired *date.Date `json:"lastFired,omitempty"`
}

// Due reports whether the template should generate an entry on the given day.
func (t RecurringTemplate) Due(today date.Date) bool {
	if today.Before(t.Start) || today.After(t.End) {
		return false
	}
	if t.LastFired != nil && *t.LastFired == today {
		return false // already generated for this day
	}
	switch t.Frequency {
	case date.Daily:
		return true
	case date.Weekly:
		return today.WeekOfYear() == t.Start.WeekOfYear()
	case date.Monthly:
		return today.Day() == t.Start.Day()
	default:
		return false
	}
}

// Generate synthesizes the journal entry for a firing on the given day.
func (t RecurringTemplate) Generate(today date.Date) JournalEntry {
	lines := make([]LineItem, len(t.Lines))
	copy(lines, t.Lines)
	return JournalEntry{
		JournalNumber: NewRecurringNumber(),
		PostDate:      today,
		Description:   t.Description,
		Lines:         lines,
		Recurring:     true,
	}
}

// RunDue evaluates every template against the given day and returns the
// generated entries together with the updated template list (LastFired
// stamped on each firing). The input slice is not modified.
func RunDue(templates []RecurringTemplate, today date.Date) ([]JournalEntry, []RecurringTemplate) {
	updated := make([]RecurringTemplate, len(templates))
	copy(updated, templates)

	var generated []JournalEntry
	for i, t := range updated {
		if !t.Due(today) {
			continue
		}
		generated = append(generated, t.Generate(today))
		fired := today
		updated[i].LastFired = &fired
	}
	return generated, updated
}
