package renderer

import (
	"strings"
	"testing"

	"github.com/kdmurray/wheel"
)

func testPortfolio(t *testing.T) *wheel.Portfolio {
	t.Helper()
	p := wheel.NewPortfolio()
	warnings := p.Load([]wheel.TradeActivity{
		{
			Date:     wheel.MustParse("2025-01-10"),
			Symbol:   "AAPL",
			Action:   wheel.ActionBuy,
			Quantity: wheel.Q(100),
			Price:    wheel.USD(150),
		},
		{
			Date:       wheel.MustParse("2025-02-01"),
			Symbol:     "AAPL",
			Action:     wheel.ActionSellToOpen,
			Quantity:   wheel.Q(1),
			Price:      wheel.USD(2),
			Option:     true,
			Underlying: "AAPL",
			Expiration: wheel.MustParse("2025-03-21"),
			Strike:     wheel.USD(140),
			Kind:       wheel.Put,
		},
	})
	if len(warnings) != 0 {
		t.Fatalf("Load() warnings = %v, want none", warnings)
	}
	return p
}

func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	p := testPortfolio(t)
	quotes := wheel.StaticQuotes{"AAPL": {Symbol: "AAPL", Price: 160}}

	got := SummaryMarkdown(p, quotes, wheel.MustParse("2025-03-06"))

	assertContains(t, got,
		"# Portfolio Summary on 2025-03-06",
		"## Shares",
		"| AAPL | 100 |",
		"## Open Options",
		"AAPL 2025-03-21 140 put",
		"| 15 |", // days to expiry column
		"Realized P&L",
	)
}

func TestSummaryMarkdown_Empty(t *testing.T) {
	got := SummaryMarkdown(wheel.NewPortfolio(), wheel.StaticQuotes{}, wheel.MustParse("2025-03-06"))
	assertContains(t, got, "No open positions.")
}

func TestPnLMarkdown(t *testing.T) {
	p := testPortfolio(t)
	quotes := wheel.StaticQuotes{"AAPL": {Symbol: "AAPL", Price: 160}}
	report := wheel.NewPnLReport(p, quotes, wheel.MustParse("2025-03-06"))

	got := PnLMarkdown(report)

	assertContains(t, got,
		"# Profit and Loss on 2025-03-06",
		"## Shares",
		"## Options",
		"| Realized |",
		"| Total |",
		// 100 shares up $10 each.
		"+$1000.00",
	)
}

func TestRiskMarkdown(t *testing.T) {
	p := testPortfolio(t)
	quotes := wheel.StaticQuotes{"AAPL": {Symbol: "AAPL", Price: 160}}
	report := wheel.SharesAtRisk(p, quotes, wheel.MustParse("2025-03-06"))

	got := RiskMarkdown(report)

	assertContains(t, got,
		"# Shares at Risk on 2025-03-06",
		"AAPL 2025-03-21 140 put",
		"$14000.00", // strike x 100
		"**Total**",
	)
}

func TestRiskMarkdown_Empty(t *testing.T) {
	got := RiskMarkdown(wheel.SharesAtRisk(wheel.NewPortfolio(), wheel.StaticQuotes{}, wheel.MustParse("2025-03-06")))
	assertContains(t, got, "No assignment exposure.")
}

func TestCoverageMarkdown(t *testing.T) {
	p := testPortfolio(t)
	got := CoverageMarkdown(wheel.CoveredCallCoverage(p))

	assertContains(t, got,
		"# Covered Call Coverage",
		"| AAPL | 100 | 0 | 0 | 100 |",
	)
}

func TestValueMarkdown(t *testing.T) {
	p := testPortfolio(t)
	quotes := wheel.StaticQuotes{"AAPL": {Symbol: "AAPL", Price: 160}}
	v := wheel.TotalValue(p, 20000, quotes, wheel.MustParse("2025-03-06"))

	got := ValueMarkdown(v)

	assertContains(t, got,
		"# Portfolio Value on 2025-03-06",
		"| Put Collateral | $14000.00 |",
		"| Free Cash | $6000.00 |",
		"| Shares | $16000.00 |",
		"**Total**",
	)
}

func TestPositionsMarkdown(t *testing.T) {
	p := testPortfolio(t)
	quotes := wheel.StaticQuotes{"AAPL": {Symbol: "AAPL", Price: 160}}

	got := PositionsMarkdown(p, quotes, wheel.MustParse("2025-03-06"))

	assertContains(t, got,
		"## AAPL 2025-03-21 140 put",
		"Status: **ACTIVE**",
		"| Premium Collected | $200.00 |",
		"| Capital at Risk | $14000.00 |",
		"| Break Even | $138.00 |",
	)
}

func TestPositionsMarkdown_NoQuote(t *testing.T) {
	p := testPortfolio(t)
	got := PositionsMarkdown(p, wheel.StaticQuotes{}, wheel.MustParse("2025-03-06"))

	assertContains(t, got, "No quote for AAPL.")
}
