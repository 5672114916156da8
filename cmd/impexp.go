package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/aesfinancelab/autogaap"
	"github.com/aesfinancelab/autogaap/date"
	"github.com/aesfinancelab/autogaap/renderer"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	replace bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import journal entries from a JSON file" }
func (*importCmd) Usage() string {
	return `gaap import [-replace] <file.json>

  Imports journal entries from a JSON document: either a bare entry array or
  an object with a journalEntries field. Malformed entries are dropped and
  reported; missing journal numbers and dates are filled in. By default
  imported entries are appended; -replace swaps the whole ledger.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.replace, "replace", false, "Replace the stored ledger instead of appending.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one input file is required")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	res, err := autogaap.DecodeEntries(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	for _, finding := range res.Findings {
		fmt.Fprintln(os.Stderr, "Warning:", finding)
	}
	if len(res.Entries) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no usable entries in the import file")
		return subcommands.ExitFailure
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening store:", err)
		return subcommands.ExitFailure
	}
	if c.replace {
		ledger := autogaap.NewLedger(res.Entries...)
		err = store.SaveEntries(ledger.All())
	} else {
		err = store.Append(res.Entries...)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error saving imported entries:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d entries.\n", len(res.Entries))
	return subcommands.ExitSuccess
}

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as JSON, HTML or PDF" }
func (*exportCmd) Usage() string {
	return `gaap export [-format json|html|pdf] [-o <file>]

  Exports the journal. JSON writes the raw entries for re-import, PDF writes
  a printable journal listing, and HTML writes a full report with the
  summary and all four financial statements.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Export format: json, html or pdf.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to journal_entries.<format>.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, err := LoadEntries()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "No journal entries to export yet.")
		return subcommands.ExitFailure
	}

	output := c.output
	if output == "" {
		output = "journal_entries." + c.format
	}
	out, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	switch c.format {
	case "json":
		err = autogaap.EncodeEntries(out, entries)
	case "pdf":
		err = renderer.JournalPDF(out, entries)
	case "html":
		on := date.Today()
		summary := autogaap.Summarize(entries)
		health := autogaap.AnalyzeHealth(entries, summary, on)
		var b strings.Builder
		b.WriteString(renderer.SummaryMarkdown(summary, health, on))
		b.WriteString("\n")
		b.WriteString(renderer.BalanceSheetMarkdown(autogaap.NewBalanceSheet(entries), on))
		b.WriteString("\n")
		b.WriteString(renderer.IncomeStatementMarkdown(autogaap.NewIncomeStatement(entries), on))
		b.WriteString("\n")
		b.WriteString(renderer.EquityStatementMarkdown(autogaap.NewEquityStatement(entries), on))
		b.WriteString("\n")
		b.WriteString(renderer.CashFlowMarkdown(autogaap.NewCashFlowStatement(entries), on))

		var page string
		page, err = renderer.HTMLDocument("Ledger Report", b.String())
		if err == nil {
			_, err = out.WriteString(page)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown export format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting to %q: %v\n", output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported %d entries to %s.\n", len(entries), output)
	return subcommands.ExitSuccess
}
