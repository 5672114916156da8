package autogaap

import (
	"testing"

	"github.com/aesfinancelab/autogaap/date"
)

func rentTemplate(freq date.Frequency) RecurringTemplate {
	return RecurringTemplate{
		Description: "Monthly office rent",
		Lines: []LineItem{
			{AccountType: Expense, AccountName: "Rent Expense", Debit: A(1200)},
			{AccountType: Asset, AccountName: "Cash", Credit: A(1200)},
		},
		Start:     date.New(2024, 1, 15),
		End:       date.New(2024, 12, 31),
		Frequency: freq,
	}
}

func TestRecurringDue(t *testing.T) {
	tests := []struct {
		name  string
		freq  date.Frequency
		today date.Date
		want  bool
	}{
		{"monthly on the day", date.Monthly, date.New(2024, 3, 15), true},
		{"monthly off the day", date.Monthly, date.New(2024, 3, 16), false},
		{"monthly on start date", date.Monthly, date.New(2024, 1, 15), true},
		{"daily inside window", date.Daily, date.New(2024, 6, 1), true},
		{"before window", date.Daily, date.New(2024, 1, 14), false},
		{"after window", date.Daily, date.New(2025, 1, 1), false},
		{"weekly matching week", date.Weekly, date.New(2024, 1, 16), true},
		{"weekly other week", date.Weekly, date.New(2024, 2, 16), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := rentTemplate(tt.freq)
			if got := tm.Due(tt.today); got != tt.want {
				t.Errorf("Due(%s) = %v, want %v", tt.today, got, tt.want)
			}
		})
	}
}

func TestRecurringLastFiredIdempotence(t *testing.T) {
	today := date.New(2024, 6, 1)
	templates := []RecurringTemplate{rentTemplate(date.Daily)}

	generated, updated := RunDue(templates, today)
	if len(generated) != 1 {
		t.Fatalf("first run generated %d entries, want 1", len(generated))
	}
	if updated[0].LastFired == nil || *updated[0].LastFired != today {
		t.Fatalf("LastFired not stamped after the run")
	}

	// A second run on the same day generates nothing.
	again, _ := RunDue(updated, today)
	if len(again) != 0 {
		t.Errorf("second run generated %d entries, want 0", len(again))
	}

	// The next day fires again.
	tomorrow, updated2 := RunDue(updated, today.Add(1))
	if len(tomorrow) != 1 {
		t.Errorf("next day generated %d entries, want 1", len(tomorrow))
	}
	if *updated2[0].LastFired != today.Add(1) {
		t.Errorf("LastFired = %s, want %s", *updated2[0].LastFired, today.Add(1))
	}

	// The input slice stays untouched.
	if templates[0].LastFired != nil {
		t.Error("RunDue modified its input templates")
	}
}

func TestRecurringGenerate(t *testing.T) {
	today := date.New(2024, 3, 15)
	entry := rentTemplate(date.Monthly).Generate(today)

	if !entry.Recurring {
		t.Error("generated entry should be marked recurring")
	}
	if entry.PostDate != today {
		t.Errorf("PostDate = %s, want %s", entry.PostDate, today)
	}
	if entry.Description != "Monthly office rent" {
		t.Errorf("Description = %q", entry.Description)
	}
	if len(entry.Lines) != 2 || !entry.Balanced() {
		t.Errorf("generated lines = %+v, want the balanced template pair", entry.Lines)
	}
	if entry.JournalNumber == "" || entry.JournalNumber[0] != 'R' {
		t.Errorf("JournalNumber = %q, want R- prefix", entry.JournalNumber)
	}

	// Lines are copied, not shared with the template.
	tm := rentTemplate(date.Monthly)
	e := tm.Generate(today)
	e.Lines[0].Debit = A(999)
	if tm.Lines[0].Debit.Equal(A(999)) {
		t.Error("Generate shares its line slice with the template")
	}
}
