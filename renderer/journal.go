package renderer

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/aesfinancelab/autogaap"
	md "github.com/nao1215/markdown"
)

// JournalMarkdown renders the journal as one table per entry, most recent
// entry first.
func JournalMarkdown(entries []autogaap.JournalEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Journal Entries")
	if len(entries) == 0 {
		doc.PlainText("No journal entries recorded.")
		return doc.String()
	}

	reversed := slices.Clone(entries)
	slices.Reverse(reversed)

	for i, entry := range reversed {
		title := entry.Label(i)
		if !entry.PostDate.IsZero() {
			title = fmt.Sprintf("%s (%s)", title, entry.PostDate)
		}
		doc.H2(title)
		if entry.Description != "" {
			doc.PlainText(entry.Description)
		}

		rows := make([][]string, 0, len(entry.Lines))
		for _, li := range entry.Lines {
			rows = append(rows, []string{li.Name(), li.AccountType.Title(), li.Debit.String(), li.Credit.String()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Account", "Type", "Debit", "Credit"},
			Rows:   rows,
		})
	}
	return doc.String()
}

// DepreciationMarkdown renders a straight-line depreciation schedule.
func DepreciationMarkdown(rows []autogaap.DepreciationRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Depreciation Schedule")
	if len(rows) == 0 {
		doc.PlainText("Enter asset value and useful life to preview depreciation.")
		return doc.String()
	}

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			fmt.Sprintf("%d", r.Year),
			r.Depreciation.String(),
			r.Accumulated.String(),
			r.BookValue.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Year", "Depreciation", "Accumulated", "Book Value"},
		Rows:   table,
	})
	return doc.String()
}
