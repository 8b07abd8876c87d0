package renderer

import (
	"fmt"
	"strings"

	"github.com/kdmurray/wheel"
)

// ValueMarkdown renders the portfolio valuation breakdown.
func ValueMarkdown(v wheel.PortfolioValue) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio Value on %s\n\n", v.AsOf)

	fmt.Fprintln(&b, "| Component | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Free Cash | %s |\n", usd(v.Cash))
	fmt.Fprintf(&b, "| Put Collateral | %s |\n", usd(v.Collateral))
	fmt.Fprintf(&b, "| Shares | %s |\n", usd(v.Shares))
	fmt.Fprintf(&b, "| Options | %s |\n", signedUSD(v.Options))
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", usd(v.Total))
	return b.String()
}
