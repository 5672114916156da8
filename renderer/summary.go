// Package renderer turns ledger reports into markdown, HTML and PDF
// documents.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/aesfinancelab/autogaap"
	"github.com/aesfinancelab/autogaap/date"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the ledger aggregation and its health findings.
func SummaryMarkdown(s *autogaap.Summary, h autogaap.Health, on date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Ledger Summary on %s", on))

	badge := "Balanced"
	if !s.Balanced() {
		badge = fmt.Sprintf("Out of balance by %s", s.Difference())
	}
	doc.PlainText(fmt.Sprintf("%d entries, %d line items. Debits %s / Credits %s. %s.",
		s.EntryCount, s.LineItemCount, s.TotalDebits, s.TotalCredits, badge))

	doc.H2("Totals by Type")
	typeRows := make([][]string, 0, len(s.TypeOrder))
	for _, t := range s.TypeOrder {
		tt := s.TotalsByType[t]
		typeRows = append(typeRows, []string{t.Title(), tt.Debit.String(), tt.Credit.String(), tt.Net.SignedString()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Type", "Debits", "Credits", "Net"},
		Rows:   typeRows,
	})

	if top := s.TopAccounts(5); len(top) > 0 {
		doc.H2("Top Accounts")
		rows := make([][]string, 0, len(top))
		for _, a := range top {
			rows = append(rows, []string{a.AccountName, a.AccountType.Title(), a.Net.SignedString()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Account", "Type", "Net"},
			Rows:   rows,
		})
	}

	doc.H2("Health")
	if h.Clean() {
		doc.PlainText("No issues found. The ledger looks healthy.")
	}
	if len(h.Issues) > 0 {
		doc.H3("Issues")
		doc.BulletList(h.Issues...)
	}
	if len(h.Warnings) > 0 {
		doc.H3("Warnings")
		doc.BulletList(h.Warnings...)
	}

	return doc.String()
}
