package wheel

import (
	"fmt"
	"strconv"
	"strings"
)

// Quote is a pre-fetched market price for a symbol. The core performs no
// I/O: quotes are supplied by an external market-data collaborator.
type Quote struct {
	Symbol string
	Price  float64
	On     Date
}

// QuoteProvider is the synchronous symbol lookup the valuation and risk
// layers depend on.
type QuoteProvider interface {
	Quote(symbol string) (Quote, bool)
}

// StaticQuotes is an in-memory QuoteProvider.
type StaticQuotes map[string]Quote

func (s StaticQuotes) Quote(symbol string) (Quote, bool) {
	q, ok := s[symbol]
	return q, ok
}

// ParseQuotes parses a comma-separated list of SYMBOL=PRICE pairs, as
// accepted by the CLI's -quote flag, into a StaticQuotes stamped with the
// given date.
func ParseQuotes(spec string, on Date) (StaticQuotes, error) {
	quotes := make(StaticQuotes)
	if strings.TrimSpace(spec) == "" {
		return quotes, nil
	}
	for _, pair := range strings.Split(spec, ",") {
		symbol, price, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			return nil, fmt.Errorf("invalid quote %q, want SYMBOL=PRICE", pair)
		}
		value, err := strconv.ParseFloat(price, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quote price in %q: %w", pair, err)
		}
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		quotes[symbol] = Quote{Symbol: symbol, Price: value, On: on}
	}
	return quotes, nil
}
