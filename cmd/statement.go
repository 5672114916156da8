package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aesfinancelab/autogaap"
	"github.com/aesfinancelab/autogaap/date"
	"github.com/aesfinancelab/autogaap/renderer"
	"github.com/google/subcommands"
)

// statementCmd holds the flags for the 'statement' subcommand.
type statementCmd struct {
	date string
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "generate a financial statement from the ledger" }
func (*statementCmd) Usage() string {
	return `gaap statement [-d <date>] <balance|income|equity|cashflow>

  Derives the requested financial statement from the journal entries:
  balance sheet, income statement, statement of owner's equity, or cash
  flow statement.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "As-of date printed on the statement.")
}

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one statement kind is required (balance, income, equity, cashflow)")
		return subcommands.ExitUsageError
	}

	entries, err := LoadEntries()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}
	if len(entries) == 0 {
		fmt.Println("Add journal entries before generating financial statements.")
		return subcommands.ExitSuccess
	}

	var markdown string
	switch f.Arg(0) {
	case "balance":
		markdown = renderer.BalanceSheetMarkdown(autogaap.NewBalanceSheet(entries), on)
	case "income":
		markdown = renderer.IncomeStatementMarkdown(autogaap.NewIncomeStatement(entries), on)
	case "equity":
		markdown = renderer.EquityStatementMarkdown(autogaap.NewEquityStatement(entries), on)
	case "cashflow":
		markdown = renderer.CashFlowMarkdown(autogaap.NewCashFlowStatement(entries), on)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown statement kind %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	printMarkdown(markdown)
	return subcommands.ExitSuccess
}
