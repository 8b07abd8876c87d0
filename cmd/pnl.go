package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kdmurray/wheel"
	"github.com/kdmurray/wheel/renderer"
)

type pnlCmd struct {
	reportFlags
}

func (*pnlCmd) Name() string     { return "pnl" }
func (*pnlCmd) Synopsis() string { return "display realized and unrealized profit and loss" }
func (*pnlCmd) Usage() string {
	return `wheel pnl [-d <date>] [-quote SYM=PRICE,...]

  Displays per-position and total P&L. Positions without a quote
  contribute only their realized side.
`
}

func (c *pnlCmd) SetFlags(f *flag.FlagSet) {
	c.reportFlags.register(f)
}

func (c *pnlCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.PnLMarkdown(wheel.NewPnLReport(p, quotes, on)))
	return subcommands.ExitSuccess
}
