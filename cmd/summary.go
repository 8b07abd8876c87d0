package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kdmurray/wheel/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	reportFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display every share and open option position" }
func (*summaryCmd) Usage() string {
	return `wheel summary [-d <date>] [-quote SYM=PRICE,...]

  Displays every share position and open option position, with market
  values and exercise probabilities where quotes are given.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.reportFlags.register(f)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.SummaryMarkdown(p, quotes, on))
	return subcommands.ExitSuccess
}
