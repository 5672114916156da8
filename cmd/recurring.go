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

// recurringAddCmd holds the flags for the 'recurring-add' subcommand.
type recurringAddCmd struct {
	description string
	start       string
	end         string
	frequency   string
}

func (*recurringAddCmd) Name() string     { return "recurring-add" }
func (*recurringAddCmd) Synopsis() string { return "register a recurring entry template" }
func (*recurringAddCmd) Usage() string {
	return `gaap recurring-add -start <date> -end <date> -freq <daily|weekly|monthly> [-desc <description>] <type:account:debit:credit>...

  Registers a template that 'recurring-run' turns into journal entries on
  the days it is due: daily every day, weekly on days sharing the start
  date's week-of-year number, monthly on the start date's day of month.
`
}

func (c *recurringAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "desc", "", "Business purpose of the generated entries.")
	f.StringVar(&c.start, "start", date.Today().String(), "First day the template is active.")
	f.StringVar(&c.end, "end", "", "Last day the template is active.")
	f.StringVar(&c.frequency, "freq", "monthly", "Firing frequency: daily, weekly or monthly.")
}

func (c *recurringAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := date.Parse(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := date.Parse(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}
	freq, err := date.ParseFrequency(c.frequency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
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

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening store:", err)
		return subcommands.ExitFailure
	}
	template := autogaap.RecurringTemplate{
		Description: c.description,
		Lines:       lines,
		Start:       start,
		End:         end,
		Frequency:   freq,
	}
	if err := store.AddTemplate(template); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving template:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Registered %s recurring template from %s to %s.\n", freq, start, end)
	return subcommands.ExitSuccess
}

// recurringRunCmd holds the flags for the 'recurring-run' subcommand.
type recurringRunCmd struct {
	date string
}

func (*recurringRunCmd) Name() string     { return "recurring-run" }
func (*recurringRunCmd) Synopsis() string { return "post journal entries for all templates due today" }
func (*recurringRunCmd) Usage() string {
	return `gaap recurring-run [-d <date>]

  Generates and posts a journal entry for every recurring template due on
  the given day. A template fires at most once per day; running the command
  again generates nothing new.
`
}

func (c *recurringRunCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Day to evaluate the templates on.")
}

func (c *recurringRunCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening store:", err)
		return subcommands.ExitFailure
	}
	generated, err := store.RunRecurring(on)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running recurring templates:", err)
		return subcommands.ExitFailure
	}

	if len(generated) == 0 {
		fmt.Println("No recurring templates due.")
		return subcommands.ExitSuccess
	}
	for _, entry := range generated {
		fmt.Printf("Posted %s on %s: %s\n", entry.JournalNumber, entry.PostDate, entry.Description)
	}
	return subcommands.ExitSuccess
}
