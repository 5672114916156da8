package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/aesfinancelab/autogaap"
	"github.com/aesfinancelab/autogaap/assist"
	"github.com/aesfinancelab/autogaap/date"
	"github.com/aesfinancelab/autogaap/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the accounting assistant.
type assistCmd struct {
	ai bool
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "Start an interactive session with the accounting assistant."
}
func (*assistCmd) Usage() string {
	return `gaap assist [-ai] [question...]

  Starts an interactive session with the accounting assistant. By default
  answers come from the built-in guidance on bookkeeping topics; with -ai
  the session runs on Gemini, seeded with the current ledger summary.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.ai, "ai", false, "Answer with Gemini instead of the built-in guidance.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	var responder assist.Responder
	if c.ai {
		client, err := genai.NewClient(ctx, nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
			return subcommands.ExitFailure
		}
		ledgerContext := ""
		if entries, err := LoadEntries(); err == nil && len(entries) > 0 {
			on := date.Today()
			summary := autogaap.Summarize(entries)
			health := autogaap.AnalyzeHealth(entries, summary, on)
			ledgerContext = renderer.SummaryMarkdown(summary, health, on)
		}
		responder = assist.NewGemini(client, ledgerContext)
	} else {
		responder = assist.NewCanned()
	}

	a := assist.New(os.Stdout, os.Stdin, responder)
	if err := a.Run(ctx, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
