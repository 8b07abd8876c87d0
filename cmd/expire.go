package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kdmurray/wheel"
)

type expireCmd struct {
	optionFlags
}

func (*expireCmd) Name() string     { return "expire" }
func (*expireCmd) Synopsis() string { return "record an option expiring worthless" }
func (*expireCmd) Usage() string {
	return `wheel expire -symbol <sym> -expiry <date> -strike <p> -kind <put|call> [-d <date>]

  Appends an expiration to the activity file. The full premium of the
  position is realized.
`
}

func (c *expireCmd) SetFlags(f *flag.FlagSet) {
	c.optionFlags.register(f)
}

func (c *expireCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "0d" {
		// An expiration naturally lands on the contract's expiry date.
		c.date = c.expiry
	}
	a, err := c.activity(wheel.ActionExpired, 0)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return AppendActivity(a)
}
