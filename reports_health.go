package autogaap

import (
	"fmt"

	"github.com/aesfinancelab/autogaap/date"
)

// maxFindings caps each finding list for display.
const maxFindings = 10

// Health is the result of the ledger validation pass. Issues are findings
// that make the books unreliable; warnings are follow-ups worth confirming.
// Neither blocks a mutation.
type Health struct {
	Issues   []string
	Warnings []string
}

// Clean reports whether the pass produced no findings at all.
func (h Health) Clean() bool { return len(h.Issues) == 0 && len(h.Warnings) == 0 }

// AnalyzeHealth validates journal entries alongside an aggregation pass.
// Findings are deduplicated by exact message and each list is capped at
// maxFindings; counts beyond the cap are not reported.
func AnalyzeHealth(entries []JournalEntry, summary *Summary, today date.Date) Health {
	var issues, warnings []string
	seenNumbers := make(map[string]bool)

	for i, entry := range entries {
		label := entry.Label(i)

		if zeroEntry(entry) {
			issues = append(issues, fmt.Sprintf("Entry %d is not a valid journal object.", i+1))
			continue
		}

		if seenNumbers[label] {
			warnings = append(warnings, fmt.Sprintf("%s appears more than once. Confirm you have not duplicated the journal.", label))
		} else {
			seenNumbers[label] = true
		}

		if entry.Description == "" {
			issues = append(issues, fmt.Sprintf("%s is missing a description. Add the business purpose and approvals.", label))
		}

		if entry.PostDate.IsZero() {
			issues = append(issues, fmt.Sprintf("%s does not have a valid post date.", label))
		} else if entry.PostDate.After(today) {
			warnings = append(warnings, fmt.Sprintf("%s posts in the future (%s). Confirm timing.", label, entry.PostDate))
		}

		if len(entry.Lines) == 0 {
			issues = append(issues, fmt.Sprintf("%s has no line items.", label))
			continue
		}

		for j, li := range entry.Lines {
			if li.Name() == UnspecifiedAccount {
				issues = append(issues, fmt.Sprintf("%s line %d is missing an account name.", label, j+1))
			}
			if li.AccountType == "" {
				warnings = append(warnings, fmt.Sprintf("%s line %d is missing an account classification.", label, j+1))
			}
			if li.Debit.Round2().IsZero() && li.Credit.Round2().IsZero() {
				warnings = append(warnings, fmt.Sprintf("%s line %d has zero debit and credit values.", label, j+1))
			}
		}

		if imbalance := entry.Debits().Sub(entry.Credits()); !imbalance.Within(Tolerance) {
			issues = append(issues, fmt.Sprintf("%s is out of balance by %s (Debit - Credit).", label, imbalance))
		}
	}

	if summary != nil && !summary.Balanced() {
		issues = append(issues, fmt.Sprintf("Total ledger imbalance is %s. Investigate latest entries.", summary.Difference()))
	}

	return Health{
		Issues:   dedupe(issues, maxFindings),
		Warnings: dedupe(warnings, maxFindings),
	}
}

// zeroEntry reports whether the entry decoded to nothing at all, the shape a
// non-object JSON element leaves behind. An entry with any populated field is
// analyzed field by field instead.
func zeroEntry(e JournalEntry) bool {
	return e.ID == 0 && e.JournalNumber == "" && e.Description == "" &&
		len(e.Lines) == 0 && e.PostDate.IsZero() && !e.Recurring && len(e.Meta) == 0
}

// dedupe removes duplicate messages (exact match, keeping first occurrence)
// and caps the list at n.
func dedupe(messages []string, n int) []string {
	seen := make(map[string]bool, len(messages))
	var out []string
	for _, m := range messages {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
		if len(out) == n {
			break
		}
	}
	return out
}
