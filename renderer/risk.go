package renderer

import (
	"fmt"
	"strings"

	"github.com/kdmurray/wheel"
)

// RiskMarkdown renders the shares-at-risk report: every assignment
// exposure with its heuristic exercise probability.
func RiskMarkdown(r wheel.SharesAtRiskReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Shares at Risk on %s\n\n", r.AsOf)

	if len(r.Entries) == 0 {
		fmt.Fprint(&b, "No assignment exposure.\n")
		return b.String()
	}

	fmt.Fprintln(&b, "| Contract | Kind | Shares | Risk Value | Exercise Prob. |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			e.Contract,
			e.Kind,
			shares(e.Shares),
			usd(e.RiskValue),
			e.Probability,
		)
	}
	fmt.Fprintf(&b, "| **Total** | | **%s** | **%s** | **%s** |\n",
		shares(r.TotalShares),
		usd(r.TotalValue),
		r.WeightedProbability,
	)
	return b.String()
}

// CoverageMarkdown renders the covered-call coverage of every share
// position.
func CoverageMarkdown(coverage []wheel.Coverage) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Covered Call Coverage\n\n")

	if len(coverage) == 0 {
		fmt.Fprint(&b, "No share positions.\n")
		return b.String()
	}

	fmt.Fprintln(&b, "| Symbol | Owned | Written | Covered | Available |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, c := range coverage {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			c.Symbol,
			shares(c.OwnedShares),
			shares(c.WrittenContracts),
			shares(c.SharesCovered),
			shares(c.AvailableShares),
		)
	}
	return b.String()
}
