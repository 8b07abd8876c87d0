package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/kdmurray/wheel"
	"github.com/kdmurray/wheel/renderer"
)

type riskCmd struct {
	reportFlags
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "display assignment exposure and covered-call coverage" }
func (*riskCmd) Usage() string {
	return `wheel risk [-d <date>] [-quote SYM=PRICE,...]

  Displays the shares at risk of assignment across open short options,
  with heuristic exercise probabilities, and the covered-call coverage
  of every share position.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {
	c.reportFlags.register(f)
}

func (c *riskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var b strings.Builder
	b.WriteString(renderer.RiskMarkdown(wheel.SharesAtRisk(p, quotes, on)))
	b.WriteString("\n")
	b.WriteString(renderer.CoverageMarkdown(wheel.CoveredCallCoverage(p)))

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
