package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kdmurray/wheel"
)

type btcCmd struct {
	optionFlags
	premium float64
}

func (*btcCmd) Name() string     { return "btc" }
func (*btcCmd) Synopsis() string { return "record buying an option back to close" }
func (*btcCmd) Usage() string {
	return `wheel btc -symbol <sym> -expiry <date> -strike <p> -kind <put|call> -premium <p> [-contracts <n>] [-d <date>]

  Appends a buy-to-close to the activity file. The premium is the
  per-share price paid to close.
`
}

func (c *btcCmd) SetFlags(f *flag.FlagSet) {
	c.optionFlags.register(f)
	f.Float64Var(&c.premium, "premium", 0, "Premium paid per share.")
}

func (c *btcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.premium < 0 {
		fmt.Fprintf(os.Stderr, "Error: -premium cannot be negative, got %g\n", c.premium)
		return subcommands.ExitUsageError
	}
	a, err := c.activity(wheel.ActionBuyToClose, c.premium)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return AppendActivity(a)
}
