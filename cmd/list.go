package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/aesfinancelab/autogaap"
	"github.com/aesfinancelab/autogaap/renderer"
	"github.com/google/subcommands"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	account     string
	accountType string
	recurring   bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the journal entries" }
func (*listCmd) Usage() string {
	return `gaap list [-account <name>] [-type <type>] [-recurring]

  Displays the journal entries, most recent first, optionally filtered by
  account name, account type, or recurring origin.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Only entries touching this account name.")
	f.StringVar(&c.accountType, "type", "", "Only entries touching this account type.")
	f.BoolVar(&c.recurring, "recurring", false, "Only entries generated from recurring templates.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, err := LoadEntries()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}

	var filters []func(autogaap.JournalEntry) bool
	if c.account != "" {
		filters = append(filters, autogaap.ByAccount(c.account))
	}
	if c.accountType != "" {
		filters = append(filters, autogaap.ByAccountType(autogaap.ParseAccountType(c.accountType)))
	}
	if c.recurring {
		filters = append(filters, autogaap.Recurring)
	}

	ledger := autogaap.NewLedger(entries...)
	var selected []autogaap.JournalEntry
	if len(filters) == 0 {
		selected = ledger.All()
	} else {
		for _, e := range ledger.Entries(filters...) {
			selected = append(selected, e)
		}
	}
	selected = slices.Clip(selected)

	printMarkdown(renderer.JournalMarkdown(selected))
	return subcommands.ExitSuccess
}
