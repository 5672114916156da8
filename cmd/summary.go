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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the ledger aggregation and health report" }
func (*summaryCmd) Usage() string {
	return `gaap summary [-d <date>]

  Aggregates the ledger into totals by account type and by account, and runs
  the health checks (missing descriptions, unbalanced entries, future
  postings, duplicate journal numbers).
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date for future-posting checks.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if len(entries) == 0 {
		fmt.Println("No journal entries available yet. Add an entry to generate insights.")
		return subcommands.ExitSuccess
	}

	summary := autogaap.Summarize(entries)
	health := autogaap.AnalyzeHealth(entries, summary, on)

	printMarkdown(renderer.SummaryMarkdown(summary, health, on))
	return subcommands.ExitSuccess
}
