package wheel

import (
	"math"
	"testing"
)

func loadPortfolio(t *testing.T, activities []TradeActivity) *Portfolio {
	t.Helper()
	p := NewPortfolio()
	if warnings := p.Load(activities); len(warnings) != 0 {
		t.Fatalf("Load() warnings = %v, want none", warnings)
	}
	return p
}

func TestSharesAtRisk_PutAndCoveredCall(t *testing.T) {
	// One ITM short put and one covered call on the same symbol. The two
	// exposures are independent entries; neither cancels the other.
	p := loadPortfolio(t, []TradeActivity{
		shareBuy("2025-01-02", "AAPL", 100, 52),
		optionActivity("2025-01-10", ActionSellToOpen, "AAPL", "2025-03-21", 50, Put, 1, 1.50),
		optionActivity("2025-01-10", ActionSellToOpen, "AAPL", "2025-03-21", 60, Call, 1, 0.80),
	})
	quotes := StaticQuotes{"AAPL": {Symbol: "AAPL", Price: 48}}

	report := SharesAtRisk(p, quotes, MustParse("2025-03-06"))

	if len(report.Entries) != 2 {
		t.Fatalf("Entries = %d, want 2", len(report.Entries))
	}
	if report.TotalShares != 200 {
		t.Errorf("TotalShares = %v, want 200", report.TotalShares)
	}

	var put, call RiskEntry
	for _, e := range report.Entries {
		switch e.Kind {
		case Put:
			put = e
		case Call:
			call = e
		}
	}
	// Put exposure is collateral at the strike.
	if put.RiskValue != 5000 {
		t.Errorf("put RiskValue = %v, want 5000", put.RiskValue)
	}
	// Call exposure is the owned shares at market.
	if call.RiskValue != 4800 {
		t.Errorf("call RiskValue = %v, want 4800", call.RiskValue)
	}
	if report.TotalValue != 9800 {
		t.Errorf("TotalValue = %v, want 9800", report.TotalValue)
	}

	want := Percent((float64(put.Probability)*5000 + float64(call.Probability)*4800) / 9800)
	if !report.WeightedProbability.Equal(want) {
		t.Errorf("WeightedProbability = %s, want %s", report.WeightedProbability, want)
	}
}

func TestSharesAtRisk_NakedCallExcluded(t *testing.T) {
	// 100 shares back only one of the two written calls' worth of stock.
	p := loadPortfolio(t, []TradeActivity{
		shareBuy("2025-01-02", "AAPL", 100, 52),
		optionActivity("2025-01-10", ActionSellToOpen, "AAPL", "2025-03-21", 60, Call, 2, 0.80),
	})
	quotes := StaticQuotes{"AAPL": {Symbol: "AAPL", Price: 55}}

	report := SharesAtRisk(p, quotes, MustParse("2025-03-06"))
	if len(report.Entries) != 0 {
		t.Errorf("Entries = %d, want 0 for an under-covered call", len(report.Entries))
	}
}

func TestSharesAtRisk_SkipsWithoutQuote(t *testing.T) {
	p := loadPortfolio(t, []TradeActivity{
		optionActivity("2025-01-10", ActionSellToOpen, "AAPL", "2025-03-21", 50, Put, 1, 1.50),
		optionActivity("2025-01-10", ActionSellToOpen, "GOOG", "2025-03-21", 150, Put, 1, 3),
	})
	quotes := StaticQuotes{"AAPL": {Symbol: "AAPL", Price: 48}}

	report := SharesAtRisk(p, quotes, MustParse("2025-03-06"))
	if len(report.Entries) != 1 {
		t.Fatalf("Entries = %d, want 1", len(report.Entries))
	}
	if report.Entries[0].Underlying != "AAPL" {
		t.Errorf("entry underlying = %s, want AAPL", report.Entries[0].Underlying)
	}
}

func TestCoveredCallCoverage(t *testing.T) {
	p := loadPortfolio(t, []TradeActivity{
		shareBuy("2025-01-02", "AAPL", 250, 150),
		shareBuy("2025-01-02", "KO", 50, 60),
		optionActivity("2025-01-10", ActionSellToOpen, "AAPL", "2025-03-21", 160, Call, 2, 2),
		optionActivity("2025-01-10", ActionSellToOpen, "KO", "2025-03-21", 65, Call, 1, 0.50),
	})

	coverage := CoveredCallCoverage(p)
	if len(coverage) != 2 {
		t.Fatalf("CoveredCallCoverage() = %d symbols, want 2", len(coverage))
	}

	aapl := coverage[0]
	if aapl.Symbol != "AAPL" {
		t.Fatalf("first symbol = %s, want AAPL (sorted)", aapl.Symbol)
	}
	if aapl.SharesCovered != 200 {
		t.Errorf("AAPL SharesCovered = %v, want 200", aapl.SharesCovered)
	}
	if aapl.AvailableShares != 50 {
		t.Errorf("AAPL AvailableShares = %v, want 50", aapl.AvailableShares)
	}

	// KO is over-written: 50 shares cannot back a full contract.
	ko := coverage[1]
	if ko.SharesCovered != 50 {
		t.Errorf("KO SharesCovered = %v, want 50", ko.SharesCovered)
	}
	if ko.AvailableShares != 0 {
		t.Errorf("KO AvailableShares = %v, want 0", ko.AvailableShares)
	}
}

func TestTotalValue(t *testing.T) {
	p := loadPortfolio(t, []TradeActivity{
		shareBuy("2025-01-02", "AAPL", 100, 150),
		optionActivity("2025-01-10", ActionSellToOpen, "AAPL", "2025-03-21", 140, Put, 1, 2),
	})
	quotes := StaticQuotes{"AAPL": {Symbol: "AAPL", Price: 155}}

	// 15 days out: the put is OTM, time value 2 decayed by 0.5.
	v := TotalValue(p, 20000, quotes, MustParse("2025-03-06"))

	if v.Collateral != 14000 {
		t.Errorf("Collateral = %v, want 14000", v.Collateral)
	}
	if v.Cash != 6000 {
		t.Errorf("Cash = %v, want 6000", v.Cash)
	}
	if v.Shares != 15500 {
		t.Errorf("Shares = %v, want 15500", v.Shares)
	}
	// Sold put liability: -(0 + 2x0.5)x100 = -100.
	if v.Options != -100 {
		t.Errorf("Options = %v, want -100", v.Options)
	}
	if want := 6000 + 15500 - 100 + 14000.0; v.Total != want {
		t.Errorf("Total = %v, want %v", v.Total, want)
	}
}

func TestTotalValue_NoQuoteContributesNothing(t *testing.T) {
	p := loadPortfolio(t, []TradeActivity{
		shareBuy("2025-01-02", "AAPL", 100, 150),
		optionActivity("2025-01-10", ActionSellToOpen, "AAPL", "2025-03-21", 140, Put, 1, 2),
	})

	v := TotalValue(p, 20000, StaticQuotes{}, MustParse("2025-03-06"))

	if v.Shares != 0 {
		t.Errorf("Shares = %v, want 0 without a quote", v.Shares)
	}
	if v.Options != 0 {
		t.Errorf("Options = %v, want 0 without a quote", v.Options)
	}
	// Collateral is known without a quote; cash still reserves it.
	if v.Collateral != 14000 {
		t.Errorf("Collateral = %v, want 14000", v.Collateral)
	}
	if v.Total != 20000 {
		t.Errorf("Total = %v, want 20000", v.Total)
	}
}

func TestTotalValue_ITMPutNearExpiry(t *testing.T) {
	p := loadPortfolio(t, []TradeActivity{
		optionActivity("2025-01-10", ActionSellToOpen, "AAPL", "2025-03-21", 150, Put, 1, 3),
	})
	quotes := StaticQuotes{"AAPL": {Symbol: "AAPL", Price: 140}}

	// 1 day out, 10 ITM: intrinsic 10, no time value left above intrinsic.
	v := TotalValue(p, 0, quotes, MustParse("2025-03-20"))

	if want := -10 * 100.0; math.Abs(v.Options-want) > 1e-9 {
		t.Errorf("Options = %v, want %v", v.Options, want)
	}
}
