package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aesfinancelab/autogaap"
	"github.com/google/subcommands"
)

type clearCmd struct{}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "empty the ledger" }
func (*clearCmd) Usage() string {
	return `gaap clear

  Removes all journal entries. The store remembers the explicit clear, so
  the fallback dataset will not refill it.
`
}

func (*clearCmd) SetFlags(_ *flag.FlagSet) {}

func (c *clearCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening store:", err)
		return subcommands.ExitFailure
	}
	if err := store.Clear(); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing ledger:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Ledger cleared.")
	return subcommands.ExitSuccess
}

type sampleCmd struct{}

func (*sampleCmd) Name() string     { return "sample" }
func (*sampleCmd) Synopsis() string { return "load the embedded sample ledger" }
func (*sampleCmd) Usage() string {
	return `gaap sample

  Replaces the stored ledger with the embedded sample: a small year of
  activity covering revenue, expenses, a purchase on account, an owner
  investment and a loan repayment.
`
}

func (*sampleCmd) SetFlags(_ *flag.FlagSet) {}

func (c *sampleCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening store:", err)
		return subcommands.ExitFailure
	}
	entries := autogaap.SampleLedger()
	if err := store.SaveEntries(entries); err != nil {
		fmt.Fprintln(os.Stderr, "Error loading sample ledger:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Loaded %d sample entries.\n", len(entries))
	return subcommands.ExitSuccess
}
