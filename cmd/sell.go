package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kdmurray/wheel"
)

type sellCmd struct {
	symbol   string
	quantity float64
	price    float64
	date     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a share sale" }
func (*sellCmd) Usage() string {
	return `wheel sell -symbol <sym> -quantity <n> -price <p> [-d <date>]

  Appends a share sale to the activity file.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Stock symbol.")
	f.Float64Var(&c.quantity, "quantity", 0, "Number of shares, fractional allowed.")
	f.Float64Var(&c.price, "price", 0, "Price per share.")
	f.StringVar(&c.date, "d", "0d", "Trade date.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := shareActivity(wheel.ActionSell, c.symbol, c.quantity, c.price, c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return AppendActivity(a)
}
