package autogaap

import (
	"fmt"
	"slices"
	"testing"

	"github.com/aesfinancelab/autogaap/date"
)

func TestAnalyzeHealthCleanLedger(t *testing.T) {
	entries := SampleLedger()
	h := AnalyzeHealth(entries, Summarize(entries), date.New(2024, 12, 31))
	if !h.Clean() {
		t.Errorf("sample ledger should be clean, got issues %v warnings %v", h.Issues, h.Warnings)
	}
}

func TestAnalyzeHealthFindings(t *testing.T) {
	today := date.New(2024, 6, 1)
	entries := []JournalEntry{
		{}, // malformed: no number, description or lines
		{
			JournalNumber: "DUP-1",
			PostDate:      date.New(2024, 1, 5),
			Description:   "first",
			Lines: []LineItem{
				{AccountType: Asset, AccountName: "Cash", Debit: A(100)},
				{AccountType: Revenue, AccountName: "Sales", Credit: A(100)},
			},
		},
		{
			JournalNumber: "DUP-1",
			PostDate:      date.New(2024, 1, 6),
			Description:   "second",
			Lines: []LineItem{
				{AccountType: Asset, AccountName: "Cash", Debit: A(50)},
				{AccountType: Revenue, AccountName: "Sales", Credit: A(50)},
			},
		},
		{
			JournalNumber: "FUT-1",
			PostDate:      date.New(2024, 7, 1),
			Lines: []LineItem{
				{AccountName: "", Debit: A(0), Credit: A(0)},
			},
		},
		{
			JournalNumber: "OFF-1",
			PostDate:      date.New(2024, 2, 1),
			Description:   "unbalanced",
			Lines: []LineItem{
				{AccountType: Asset, AccountName: "Cash", Debit: A(100)},
				{AccountType: Revenue, AccountName: "Sales", Credit: A(80)},
			},
		},
	}
	h := AnalyzeHealth(entries, Summarize(entries), today)

	wantIssues := []string{
		"Entry 1 is not a valid journal object.",
		"FUT-1 is missing a description. Add the business purpose and approvals.",
		"FUT-1 line 1 is missing an account name.",
		"OFF-1 is out of balance by $20.00 (Debit - Credit).",
	}
	for _, want := range wantIssues {
		if !slices.Contains(h.Issues, want) {
			t.Errorf("missing issue %q in %v", want, h.Issues)
		}
	}

	wantWarnings := []string{
		"DUP-1 appears more than once. Confirm you have not duplicated the journal.",
		fmt.Sprintf("FUT-1 posts in the future (%s). Confirm timing.", date.New(2024, 7, 1)),
		"FUT-1 line 1 is missing an account classification.",
		"FUT-1 line 1 has zero debit and credit values.",
	}
	for _, want := range wantWarnings {
		if !slices.Contains(h.Warnings, want) {
			t.Errorf("missing warning %q in %v", want, h.Warnings)
		}
	}

	// The ledger as a whole is off by 20.
	if !slices.Contains(h.Issues, "Total ledger imbalance is $20.00. Investigate latest entries.") {
		t.Errorf("missing ledger imbalance issue in %v", h.Issues)
	}
}

func TestAnalyzeHealthPartialEntry(t *testing.T) {
	// An entry with only a post date is analyzed field by field, not
	// dismissed as an invalid object.
	entries := []JournalEntry{{PostDate: date.New(2024, 3, 1)}}
	h := AnalyzeHealth(entries, Summarize(entries), date.New(2024, 6, 1))

	if slices.Contains(h.Issues, "Entry 1 is not a valid journal object.") {
		t.Errorf("dated entry flagged as invalid object: %v", h.Issues)
	}
	wantIssues := []string{
		"Entry 1 is missing a description. Add the business purpose and approvals.",
		"Entry 1 has no line items.",
	}
	for _, want := range wantIssues {
		if !slices.Contains(h.Issues, want) {
			t.Errorf("missing issue %q in %v", want, h.Issues)
		}
	}
}

func TestAnalyzeHealthDedupeAndCap(t *testing.T) {
	// Twenty entries with identical problems produce deduplicated findings
	// capped at the display limit.
	var entries []JournalEntry
	for i := 0; i < 20; i++ {
		entries = append(entries, JournalEntry{
			JournalNumber: fmt.Sprintf("E-%d", i),
			PostDate:      date.New(2024, 1, 1),
			Lines: []LineItem{
				{AccountType: Asset, AccountName: "Cash", Debit: A(1)},
				{AccountType: Revenue, AccountName: "Sales", Credit: A(1)},
			},
		})
	}
	h := AnalyzeHealth(entries, Summarize(entries), date.New(2024, 6, 1))
	if len(h.Issues) != maxFindings {
		t.Errorf("issues = %d, want capped at %d", len(h.Issues), maxFindings)
	}
	seen := map[string]bool{}
	for _, m := range h.Issues {
		if seen[m] {
			t.Errorf("duplicate finding %q", m)
		}
		seen[m] = true
	}
}

func TestDedupe(t *testing.T) {
	in := []string{"a", "b", "a", "", "c", "b", "d"}
	got := dedupe(in, 3)
	want := []string{"a", "b", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("dedupe() = %v, want %v", got, want)
	}
}
