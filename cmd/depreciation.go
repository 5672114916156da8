package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aesfinancelab/autogaap"
	"github.com/aesfinancelab/autogaap/renderer"
	"github.com/google/subcommands"
)

// depreciationCmd holds the flags for the 'depreciation' subcommand.
type depreciationCmd struct {
	value float64
	life  int
}

func (*depreciationCmd) Name() string     { return "depreciation" }
func (*depreciationCmd) Synopsis() string { return "preview a straight-line depreciation schedule" }
func (*depreciationCmd) Usage() string {
	return `gaap depreciation -value <cost> -life <years>

  Computes the straight-line depreciation schedule for an asset: annual
  expense, accumulated depreciation and remaining book value per year.
`
}

func (c *depreciationCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.value, "value", 0, "Acquisition cost of the asset.")
	f.IntVar(&c.life, "life", 0, "Useful life in years.")
}

func (c *depreciationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.value <= 0 || c.life <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -value and -life must both be positive")
		return subcommands.ExitUsageError
	}

	rows := autogaap.DepreciationSchedule(autogaap.A(c.value), c.life)
	printMarkdown(renderer.DepreciationMarkdown(rows))
	return subcommands.ExitSuccess
}
