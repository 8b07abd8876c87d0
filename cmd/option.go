package cmd

import (
	"flag"
	"fmt"

	"github.com/kdmurray/wheel"
)

// optionFlags are the flags shared by every option entry subcommand: the
// contract identity, the contract count and the trade date.
type optionFlags struct {
	symbol    string
	expiry    string
	strike    float64
	kind      string
	contracts float64
	date      string
}

func (o *optionFlags) register(f *flag.FlagSet) {
	f.StringVar(&o.symbol, "symbol", "", "Underlying stock symbol.")
	f.StringVar(&o.expiry, "expiry", "", "Contract expiration date.")
	f.Float64Var(&o.strike, "strike", 0, "Strike price.")
	f.StringVar(&o.kind, "kind", "", "Contract kind: put or call.")
	f.Float64Var(&o.contracts, "contracts", 1, "Number of contracts, fractional allowed.")
	f.StringVar(&o.date, "d", "0d", "Trade date.")
}

// activity builds an option trade record from the flags. The premium is
// per share; lifecycle events pass zero.
func (o *optionFlags) activity(action wheel.ActionType, premium float64) (wheel.TradeActivity, error) {
	if o.symbol == "" {
		return wheel.TradeActivity{}, fmt.Errorf("-symbol is required")
	}
	if o.expiry == "" {
		return wheel.TradeActivity{}, fmt.Errorf("-expiry is required")
	}
	if o.strike <= 0 {
		return wheel.TradeActivity{}, fmt.Errorf("-strike must be positive, got %g", o.strike)
	}
	if o.contracts <= 0 {
		return wheel.TradeActivity{}, fmt.Errorf("-contracts must be positive, got %g", o.contracts)
	}
	kind, err := wheel.ParseOptionKind(o.kind)
	if err != nil {
		return wheel.TradeActivity{}, err
	}
	on, err := wheel.ParseDate(o.date)
	if err != nil {
		return wheel.TradeActivity{}, err
	}
	expiry, err := wheel.ParseDate(o.expiry)
	if err != nil {
		return wheel.TradeActivity{}, fmt.Errorf("invalid -expiry: %w", err)
	}
	return wheel.TradeActivity{
		Date:       on,
		Symbol:     o.symbol,
		Action:     action,
		Quantity:   wheel.Q(o.contracts),
		Price:      wheel.USD(premium),
		Option:     true,
		Underlying: o.symbol,
		Expiration: expiry,
		Strike:     wheel.USD(o.strike),
		Kind:       kind,
	}, nil
}
