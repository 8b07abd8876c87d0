package renderer

import (
	"fmt"
	"strings"

	"github.com/kdmurray/wheel"
)

// PnLMarkdown renders a profit-and-loss report as markdown tables.
func PnLMarkdown(r *wheel.PnLReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Profit and Loss on %s\n\n", r.AsOf)

	if len(r.Shares) > 0 {
		fmt.Fprint(&b, "## Shares\n\n")
		fmt.Fprintln(&b, "| Symbol | Quantity | Cost Basis | Realized | Unrealized |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
		for _, row := range r.Shares {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				row.Symbol,
				row.Quantity,
				row.CostBasis,
				row.Realized.SignedString(),
				signedUSD(row.Unrealized),
			)
		}
		fmt.Fprintln(&b)
	}

	if len(r.Options) > 0 {
		fmt.Fprint(&b, "## Options\n\n")
		fmt.Fprintln(&b, "| Contract | Status | Open | Realized | Unrealized |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
		for _, row := range r.Options {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				row.Contract,
				row.Status,
				row.Contracts,
				row.Realized.SignedString(),
				signedUSD(row.Unrealized),
			)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Realized | **%s** |\n", r.Realized.SignedString())
	fmt.Fprintf(&b, "| Unrealized | **%s** |\n", signedUSD(r.Unrealized))
	fmt.Fprintf(&b, "| Total | **%s** |\n", signedUSD(r.Total))
	return b.String()
}
