package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aesfinancelab/autogaap"
	"github.com/aesfinancelab/autogaap/date"
	"github.com/google/subcommands"
)

// postCmd holds the flags for the 'post' subcommand.
type postCmd struct {
	date        string
	description string
	number      string
}

func (*postCmd) Name() string     { return "post" }
func (*postCmd) Synopsis() string { return "post a journal entry to the ledger" }
func (*postCmd) Usage() string {
	return `gaap post [-d <date>] [-desc <description>] <type:account:debit:credit>...

  Posts a journal entry made of the given line items. Each line item is
  written as type:account:debit:credit, for example:

$ gaap post -d 2024-01-05 -desc "Service revenue received in cash" \
    asset:Cash:8500:0 revenue:"Service Revenue":0:8500

  An unbalanced entry is accepted and posted; the balance indicator and the
  health report flag it.
`
}

func (c *postCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Post date for the entry (YYYY-MM-DD).")
	f.StringVar(&c.description, "desc", "", "Business purpose of the entry.")
	f.StringVar(&c.number, "n", "", "Journal number. Generated when empty.")
}

func (c *postCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one line item is required")
		return subcommands.ExitUsageError
	}

	var lines []autogaap.LineItem
	for _, arg := range f.Args() {
		li, err := parseLineItem(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing line item %q: %v\n", arg, err)
			return subcommands.ExitUsageError
		}
		lines = append(lines, li)
	}

	number := c.number
	if number == "" {
		second := ""
		if len(lines) > 1 {
			second = lines[1].AccountName
		}
		number = autogaap.NewJournalNumber(lines[0].AccountName, second)
	}

	entry := autogaap.JournalEntry{
		JournalNumber: number,
		PostDate:      on,
		Description:   c.description,
		Lines:         lines,
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening store:", err)
		return subcommands.ExitFailure
	}
	if err := store.Append(entry); err != nil {
		fmt.Fprintln(os.Stderr, "Error posting entry:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Posted %s on %s.\n", entry.JournalNumber, entry.PostDate)
	if entry.Balanced() {
		fmt.Println("✅ Balanced")
	} else {
		fmt.Println("⚠️ Unbalanced")
	}
	return subcommands.ExitSuccess
}

// parseLineItem parses "type:account:debit:credit" into a line item.
func parseLineItem(s string) (autogaap.LineItem, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return autogaap.LineItem{}, fmt.Errorf("expected type:account:debit:credit")
	}
	debit, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return autogaap.LineItem{}, fmt.Errorf("invalid debit %q: %w", parts[2], err)
	}
	credit, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return autogaap.LineItem{}, fmt.Errorf("invalid credit %q: %w", parts[3], err)
	}
	return autogaap.LineItem{
		AccountType: autogaap.ParseAccountType(parts[0]),
		AccountName: strings.TrimSpace(parts[1]),
		Debit:       autogaap.A(debit),
		Credit:      autogaap.A(credit),
	}, nil
}
