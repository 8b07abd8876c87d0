package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kdmurray/wheel"
)

type stoCmd struct {
	optionFlags
	premium float64
}

func (*stoCmd) Name() string     { return "sto" }
func (*stoCmd) Synopsis() string { return "record selling an option to open" }
func (*stoCmd) Usage() string {
	return `wheel sto -symbol <sym> -expiry <date> -strike <p> -kind <put|call> -premium <p> [-contracts <n>] [-d <date>]

  Appends a sell-to-open to the activity file. The premium is per share;
  each contract collects premium x 100.
`
}

func (c *stoCmd) SetFlags(f *flag.FlagSet) {
	c.optionFlags.register(f)
	f.Float64Var(&c.premium, "premium", 0, "Premium received per share.")
}

func (c *stoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.premium <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -premium must be positive, got %g\n", c.premium)
		return subcommands.ExitUsageError
	}
	a, err := c.activity(wheel.ActionSellToOpen, c.premium)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return AppendActivity(a)
}
