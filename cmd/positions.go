package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kdmurray/wheel/renderer"
)

type positionsCmd struct {
	reportFlags
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display a detailed analysis of every option position" }
func (*positionsCmd) Usage() string {
	return `wheel positions [-d <date>] [-quote SYM=PRICE,...]

  Displays every option position with its per-leg valuation, exercise
  probability and risk metrics.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	c.reportFlags.register(f)
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, quotes, err := c.parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PositionsMarkdown(p, quotes, on))
	return subcommands.ExitSuccess
}
