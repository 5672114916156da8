package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aesfinancelab/autogaap"
	"github.com/aesfinancelab/autogaap/date"
)

func TestSummaryMarkdown(t *testing.T) {
	entries := autogaap.SampleLedger()
	on := date.New(2024, 12, 31)
	s := autogaap.Summarize(entries)
	h := autogaap.AnalyzeHealth(entries, s, on)

	out := SummaryMarkdown(s, h, on)

	for _, want := range []string{
		"# Ledger Summary on 2024-12-31",
		"5 entries, 10 line items",
		"## Totals by Type",
		"Asset",
		"## Top Accounts",
		"Cash",
		"No issues found",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary markdown missing %q:\n%s", want, out)
		}
	}
}

func TestStatementMarkdown(t *testing.T) {
	entries := autogaap.SampleLedger()
	on := date.New(2024, 12, 31)

	bs := BalanceSheetMarkdown(autogaap.NewBalanceSheet(entries), on)
	for _, want := range []string{"# Balance Sheet as of 2024-12-31", "Total assets: $20,300.00", "Current period earnings", "reconciles"} {
		if !strings.Contains(bs, want) {
			t.Errorf("balance sheet missing %q:\n%s", want, bs)
		}
	}

	is := IncomeStatementMarkdown(autogaap.NewIncomeStatement(entries), on)
	if !strings.Contains(is, "Net income: $7,300.00") {
		t.Errorf("income statement missing net income:\n%s", is)
	}

	es := EquityStatementMarkdown(autogaap.NewEquityStatement(entries), on)
	if !strings.Contains(es, "Ending owner's equity") {
		t.Errorf("equity statement missing roll-forward:\n%s", es)
	}

	cf := CashFlowMarkdown(autogaap.NewCashFlowStatement(entries), on)
	if !strings.Contains(cf, "Net change in cash: $15,300.00") {
		t.Errorf("cash flow statement missing net change:\n%s", cf)
	}
}

func TestJournalMarkdown(t *testing.T) {
	out := JournalMarkdown(autogaap.SampleLedger())
	for _, want := range []string{"# Journal Entries", "CPU-CASH-SREV-20240105", "Service revenue received in cash", "Equipment"} {
		if !strings.Contains(out, want) {
			t.Errorf("journal markdown missing %q", want)
		}
	}

	// The most recent entry renders first.
	newest := strings.Index(out, "CPU-LOANPAY-20240520")
	oldest := strings.Index(out, "CPU-CASH-SREV-20240105")
	if newest < 0 || oldest < 0 || newest > oldest {
		t.Errorf("entries out of order: newest at %d, oldest at %d", newest, oldest)
	}

	empty := JournalMarkdown(nil)
	if !strings.Contains(empty, "No journal entries recorded.") {
		t.Errorf("empty journal markdown = %q", empty)
	}
}

func TestDepreciationMarkdown(t *testing.T) {
	rows := autogaap.DepreciationSchedule(autogaap.A(9000), 3)
	out := DepreciationMarkdown(rows)
	for _, want := range []string{"# Depreciation Schedule", "$3,000.00", "$6,000.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("depreciation markdown missing %q:\n%s", want, out)
		}
	}
}

func TestHTMLDocument(t *testing.T) {
	page, err := HTMLDocument("Ledger Report", "# Title\n\n| A | B |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("HTMLDocument() error: %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "<title>Ledger Report</title>", "<h1", "<table>"} {
		if !strings.Contains(page, want) {
			t.Errorf("HTML page missing %q", want)
		}
	}
}

func TestJournalPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := JournalPDF(&buf, autogaap.SampleLedger()); err != nil {
		t.Fatalf("JournalPDF() error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not look like a PDF (%d bytes)", buf.Len())
	}
}
