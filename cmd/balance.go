package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aesfinancelab/autogaap"
	"github.com/aesfinancelab/autogaap/date"
	"github.com/google/subcommands"
)

// balanceCmd holds the flags for the 'balance' subcommand.
type balanceCmd struct {
	date string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the trial balance indicator and cash position" }
func (*balanceCmd) Usage() string {
	return `gaap balance [-d <date>]

  Shows total debits, total credits and their difference, plus the running
  cash balance up to the given date.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date for the cash balance.")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	entries, err := LoadEntries()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}

	summary := autogaap.Summarize(entries)
	fmt.Printf("Total debits:  %s\n", summary.TotalDebits)
	fmt.Printf("Total credits: %s\n", summary.TotalCredits)
	fmt.Printf("Difference:    %s\n", summary.Difference().SignedString())
	if summary.Balanced() {
		fmt.Println("✅ Balanced")
	} else {
		fmt.Println("⚠️ Unbalanced")
	}

	ledger := autogaap.NewLedger(entries...)
	fmt.Printf("Cash balance on %s: %s\n", on, ledger.CashBalance(on))
	return subcommands.ExitSuccess
}
