package renderer

import (
	"bytes"
	"fmt"

	"github.com/aesfinancelab/autogaap"
	"github.com/aesfinancelab/autogaap/date"
	md "github.com/nao1215/markdown"
)

func sectionTable(doc *md.Markdown, title string, lines []autogaap.StatementLine, total string, totalAmount autogaap.Amount) {
	doc.H3(title)
	if len(lines) == 0 {
		doc.PlainText("No activity recorded.")
	} else {
		rows := make([][]string, 0, len(lines))
		for _, l := range lines {
			rows = append(rows, []string{l.AccountName, l.Balance.String()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Account", "Balance"},
			Rows:   rows,
		})
	}
	doc.PlainText(fmt.Sprintf("%s: %s", total, totalAmount))
}

// BalanceSheetMarkdown renders a balance sheet.
func BalanceSheetMarkdown(bs *autogaap.BalanceSheet, on date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Balance Sheet as of %s", on))
	sectionTable(doc, "Assets", bs.Assets, "Total assets", bs.TotalAssets)
	sectionTable(doc, "Liabilities", bs.Liabilities, "Total liabilities", bs.TotalLiabilities)
	sectionTable(doc, "Equity", bs.Equity, "Total equity", bs.TotalEquity)

	if bs.Reconciles() {
		doc.PlainText("Assets equal liabilities plus equity. The balance sheet reconciles.")
	} else {
		doc.PlainText(fmt.Sprintf("Balance variance of %s between assets and liabilities plus equity.", bs.Variance.SignedString()))
	}
	return doc.String()
}

// IncomeStatementMarkdown renders an income statement.
func IncomeStatementMarkdown(is *autogaap.IncomeStatement, on date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Income Statement through %s", on))
	sectionTable(doc, "Revenues", is.Revenues, "Total revenues", is.TotalRevenue)
	sectionTable(doc, "Expenses", is.Expenses, "Total expenses", is.TotalExpenses)
	doc.H3("Result")
	doc.PlainText(fmt.Sprintf("Net income: %s", is.NetIncome))
	return doc.String()
}

// EquityStatementMarkdown renders a statement of owner's equity.
func EquityStatementMarkdown(es *autogaap.EquityStatement, on date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Statement of Owner's Equity through %s", on))
	sectionTable(doc, "Equity Accounts", es.Lines, "Owner investments & balances", es.OpeningEquity)
	doc.H3("Roll-forward")
	doc.Table(md.TableSet{
		Header: []string{"Line", "Amount"},
		Rows: [][]string{
			{"Owner investments & balances", es.OpeningEquity.String()},
			{"Net income", es.NetIncome.String()},
			{"Ending owner's equity", es.EndingEquity.String()},
		},
	})
	return doc.String()
}

// CashFlowMarkdown renders a cash flow statement.
func CashFlowMarkdown(cf *autogaap.CashFlowStatement, on date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Cash Flow Statement through %s", on))
	doc.Table(md.TableSet{
		Header: []string{"Activity", "Cash Flow"},
		Rows: [][]string{
			{"Operating activities", cf.Operating.String()},
			{"Investing activities", cf.Investing.String()},
			{"Financing activities", cf.Financing.String()},
		},
	})
	doc.PlainText(fmt.Sprintf("Net change in cash: %s", cf.NetChange))
	return doc.String()
}
