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

type valueCmd struct {
	reportFlags
	cash float64
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "display the heuristic mark-to-market of the account" }
func (*valueCmd) Usage() string {
	return `wheel value -cash <amount> [-d <date>] [-quote SYM=PRICE,...]

  Displays the account value: free cash after reserving put collateral,
  share market value and the option mark-to-market.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	c.reportFlags.register(f)
	f.Float64Var(&c.cash, "cash", 0, "Total cash in the account, before collateral.")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.ValueMarkdown(wheel.TotalValue(p, c.cash, quotes, on)))
	return subcommands.ExitSuccess
}
