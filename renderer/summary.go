package renderer

import (
	"fmt"
	"strings"

	"github.com/kdmurray/wheel"
)

// SummaryMarkdown renders the portfolio overview: every share position,
// every open option position, and the cumulative realized P&L.
func SummaryMarkdown(p *wheel.Portfolio, quotes wheel.QuoteProvider, asOf wheel.Date) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio Summary on %s\n\n", asOf)

	hasShares := false
	for symbol := range p.Symbols() {
		sp := p.Shares(symbol)
		if !sp.Quantity.IsPositive() {
			continue
		}
		if !hasShares {
			hasShares = true
			fmt.Fprint(&b, "## Shares\n\n")
			fmt.Fprintln(&b, "| Symbol | Quantity | Cost Basis | Market Value | Realized |")
			fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
		}
		market := "-"
		if quote, ok := quotes.Quote(symbol); ok {
			market = usd(sp.Quantity.Float64() * quote.Price)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			symbol,
			sp.Quantity,
			sp.CostBasis(),
			market,
			sp.Realized.SignedString(),
		)
	}
	if hasShares {
		fmt.Fprintln(&b)
	}

	hasOptions := false
	for pos := range p.OpenOptionPositions() {
		if !hasOptions {
			hasOptions = true
			fmt.Fprint(&b, "## Open Options\n\n")
			fmt.Fprintln(&b, "| Contract | Contracts | Credit | Expiry | DTE | Exercise Prob. |")
			fmt.Fprintln(&b, "|:---|---:|---:|:---|---:|---:|")
		}
		dte := wheel.DaysToExpiry(pos.Expiration, asOf)
		prob := "-"
		if quote, ok := quotes.Quote(pos.Underlying); ok {
			strike := pos.Strike.Float64()
			switch pos.Kind {
			case wheel.Put:
				prob = wheel.PutExerciseProbability(quote.Price, strike, dte).String()
			case wheel.Call:
				prob = wheel.CallExerciseProbability(quote.Price, strike, dte).String()
			}
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %s |\n",
			pos.ID(),
			pos.OpenContracts,
			pos.Credit,
			pos.Expiration,
			dte,
			prob,
		)
	}
	if hasOptions {
		fmt.Fprintln(&b)
	}

	if !hasShares && !hasOptions {
		fmt.Fprint(&b, "No open positions.\n\n")
	}

	fmt.Fprintf(&b, "Realized P&L: **%s**\n", p.Realized.SignedString())
	return b.String()
}
