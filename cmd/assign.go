package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kdmurray/wheel"
)

type assignCmd struct {
	optionFlags
}

func (*assignCmd) Name() string     { return "assign" }
func (*assignCmd) Synopsis() string { return "record an option assignment" }
func (*assignCmd) Usage() string {
	return `wheel assign -symbol <sym> -expiry <date> -strike <p> -kind <put|call> [-d <date>]

  Appends an assignment to the activity file. An assigned put buys 100
  shares per contract at the strike; an assigned call sells them. The
  full premium of the position is realized.
`
}

func (c *assignCmd) SetFlags(f *flag.FlagSet) {
	c.optionFlags.register(f)
}

func (c *assignCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := c.activity(wheel.ActionAssignment, 0)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return AppendActivity(a)
}
