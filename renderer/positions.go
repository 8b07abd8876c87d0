package renderer

import (
	"fmt"
	"strings"

	"github.com/kdmurray/wheel"
)

// PositionsMarkdown renders a detailed analysis of every option position
// still tracked: per-leg valuation plus the position's risk metrics.
// Positions without a quote render their ledger state only.
func PositionsMarkdown(p *wheel.Portfolio, quotes wheel.QuoteProvider, asOf wheel.Date) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Option Positions on %s\n\n", asOf)

	rendered := false
	for pos := range p.OptionPositions() {
		rendered = true
		fmt.Fprintf(&b, "## %s\n\n", pos.ID())

		quote, ok := quotes.Quote(pos.Underlying)
		if !ok {
			fmt.Fprintf(&b, "No quote for %s. Open contracts: %s, credit %s, realized %s.\n\n",
				pos.Underlying, pos.OpenContracts, pos.Credit, pos.Realized.SignedString())
			continue
		}

		a := pos.Analyze(quote, asOf)
		fmt.Fprintf(&b, "Status: **%s** at %s\n\n", a.Status, usd(quote.Price))

		fmt.Fprintln(&b, "| Leg | Status | Contracts | Premium | Intrinsic | Time Value | Prob. | Mark | Unrealized |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|---:|")
		for _, leg := range a.Legs {
			fmt.Fprintf(&b, "| %s %s %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
				leg.Side, leg.Kind, usd(leg.Strike),
				leg.Status,
				shares(leg.Contracts),
				usd(leg.Premium),
				usd(leg.Intrinsic),
				usd(leg.TimeValue),
				leg.Probability,
				usd(leg.Mark),
				signedUSD(leg.Unrealized),
			)
		}
		fmt.Fprintln(&b)

		fmt.Fprintln(&b, "| Metric | Value |")
		fmt.Fprintln(&b, "|:---|---:|")
		fmt.Fprintf(&b, "| Premium Collected | %s |\n", usd(a.PremiumCollected))
		fmt.Fprintf(&b, "| Capital at Risk | %s |\n", usd(a.CapitalAtRisk))
		fmt.Fprintf(&b, "| Max Loss | %s |\n", usd(a.MaxLoss))
		fmt.Fprintf(&b, "| Max Gain | %s |\n", usd(a.MaxGain))
		if a.BreakEven > 0 {
			fmt.Fprintf(&b, "| Break Even | %s |\n", usd(a.BreakEven))
		}
		fmt.Fprintf(&b, "| Total P&L | %s |\n", signedUSD(a.TotalPL))
		fmt.Fprintf(&b, "| ROI | %s |\n", a.ROI.SignedString())
		fmt.Fprintf(&b, "| Annualized ROI | %s |\n", a.AnnualizedROI.SignedString())
		fmt.Fprintln(&b)
	}

	if !rendered {
		fmt.Fprint(&b, "No option positions.\n")
	}
	return b.String()
}
