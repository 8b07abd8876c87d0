package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kdmurray/wheel"
)

type buyCmd struct {
	symbol   string
	quantity float64
	price    float64
	date     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a share purchase" }
func (*buyCmd) Usage() string {
	return `wheel buy -symbol <sym> -quantity <n> -price <p> [-d <date>]

  Appends a share purchase to the activity file.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Stock symbol.")
	f.Float64Var(&c.quantity, "quantity", 0, "Number of shares, fractional allowed.")
	f.Float64Var(&c.price, "price", 0, "Price per share.")
	f.StringVar(&c.date, "d", "0d", "Trade date.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := shareActivity(wheel.ActionBuy, c.symbol, c.quantity, c.price, c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return AppendActivity(a)
}

// shareActivity builds a share trade record from the common entry flags.
func shareActivity(action wheel.ActionType, symbol string, quantity, price float64, date string) (wheel.TradeActivity, error) {
	if symbol == "" {
		return wheel.TradeActivity{}, fmt.Errorf("-symbol is required")
	}
	if quantity <= 0 {
		return wheel.TradeActivity{}, fmt.Errorf("-quantity must be positive, got %g", quantity)
	}
	if price <= 0 {
		return wheel.TradeActivity{}, fmt.Errorf("-price must be positive, got %g", price)
	}
	on, err := wheel.ParseDate(date)
	if err != nil {
		return wheel.TradeActivity{}, err
	}
	return wheel.TradeActivity{
		Date:     on,
		Symbol:   symbol,
		Action:   action,
		Quantity: wheel.Q(quantity),
		Price:    wheel.USD(price),
	}, nil
}
