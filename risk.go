package wheel

// RiskEntry is one assignment-risk exposure: a short put that may assign
// stock in, or a covered call that may assign stock away.
type RiskEntry struct {
	Contract    string // contract identity key
	Underlying  string
	Kind        OptionKind
	Shares      float64 // shares that would change hands on assignment
	RiskValue   float64 // dollar exposure of the entry
	Probability Percent // heuristic probability of exercise
}

// SharesAtRiskReport aggregates assignment exposure across the portfolio.
type SharesAtRiskReport struct {
	AsOf    Date
	Entries []RiskEntry

	TotalShares         float64
	TotalValue          float64
	WeightedProbability Percent // value-weighted average of entry probabilities
}

// SharesAtRisk scans the open option positions for assignment exposure.
// Short puts are always at risk for strike x 100 x contracts. Short calls
// count only when backed by sufficient owned shares, at the shares' market
// value. Positions without a quote are skipped: valuation stays total
// under incomplete data rather than guessing a price.
func SharesAtRisk(p *Portfolio, quotes QuoteProvider, asOf Date) SharesAtRiskReport {
	report := SharesAtRiskReport{AsOf: asOf}

	for pos := range p.OpenOptionPositions() {
		quote, ok := quotes.Quote(pos.Underlying)
		if !ok {
			continue
		}
		dte := DaysToExpiry(pos.Expiration, asOf)
		contracts := pos.OpenContracts.Float64()
		shares := contracts * 100
		strike := pos.Strike.Float64()

		var entry RiskEntry
		switch pos.Kind {
		case Put:
			entry = RiskEntry{
				Contract:    pos.ID(),
				Underlying:  pos.Underlying,
				Kind:        Put,
				Shares:      shares,
				RiskValue:   strike * shares,
				Probability: PutExerciseProbability(quote.Price, strike, dte),
			}
		case Call:
			owned := 0.0
			if sp := p.Shares(pos.Underlying); sp != nil {
				owned = sp.Quantity.Float64()
			}
			if owned < shares {
				// A naked or under-covered call is not a share-assignment
				// exposure; there is no owned stock to call away.
				continue
			}
			entry = RiskEntry{
				Contract:    pos.ID(),
				Underlying:  pos.Underlying,
				Kind:        Call,
				Shares:      shares,
				RiskValue:   shares * quote.Price,
				Probability: CallExerciseProbability(quote.Price, strike, dte),
			}
		}

		report.Entries = append(report.Entries, entry)
		report.TotalShares += entry.Shares
		report.TotalValue += entry.RiskValue
	}

	if report.TotalValue > 0 {
		var weighted float64
		for _, e := range report.Entries {
			weighted += float64(e.Probability) * e.RiskValue
		}
		report.WeightedProbability = Percent(weighted / report.TotalValue)
	}
	return report
}

// Coverage is the covered-call accounting of one symbol.
type Coverage struct {
	Symbol           string
	OwnedShares      float64
	WrittenContracts float64
	SharesCovered    float64 // min(owned, written x 100)
	AvailableShares  float64 // owned - covered
}

// CoveredCallCoverage reports, per symbol with a share position, how many
// owned shares back written calls and how many remain free.
func CoveredCallCoverage(p *Portfolio) []Coverage {
	var out []Coverage
	for symbol := range p.Symbols() {
		sp := p.Shares(symbol)
		if sp == nil || !sp.Quantity.IsPositive() {
			continue
		}
		c := Coverage{Symbol: symbol, OwnedShares: sp.Quantity.Float64()}
		for pos := range p.OpenOptionPositions() {
			if pos.Kind == Call && pos.Underlying == symbol {
				c.WrittenContracts += pos.OpenContracts.Float64()
			}
		}
		c.SharesCovered = c.OwnedShares
		if written := c.WrittenContracts * 100; written < c.SharesCovered {
			c.SharesCovered = written
		}
		c.AvailableShares = c.OwnedShares - c.SharesCovered
		out = append(out, c)
	}
	return out
}

// PortfolioValue is the heuristic mark-to-market value of the whole
// account.
type PortfolioValue struct {
	AsOf Date

	Cash       float64 // free cash after reserving CSP collateral
	Collateral float64 // cash reserved for open cash-secured puts
	Shares     float64 // market value of owned shares
	Options    float64 // mark-to-market of open option legs, negative for liabilities
	Total      float64
}

// TotalValue computes the portfolio's total value: free cash plus share
// market value plus the options mark-to-market plus the reserved
// collateral. Open short legs are liabilities and enter negatively; their
// remaining time value is discounted by the decay factor max(0.1, dte/30).
// Shares without a quote contribute nothing.
func TotalValue(p *Portfolio, cash float64, quotes QuoteProvider, asOf Date) PortfolioValue {
	v := PortfolioValue{AsOf: asOf}

	for symbol := range p.Symbols() {
		sp := p.Shares(symbol)
		if !sp.Quantity.IsPositive() {
			continue
		}
		if quote, ok := quotes.Quote(symbol); ok {
			v.Shares += sp.Quantity.Float64() * quote.Price
		}
	}

	for pos := range p.OpenOptionPositions() {
		if pos.Kind == Put {
			v.Collateral += pos.Strike.Float64() * pos.OpenContracts.Float64() * 100
		}
		quote, ok := quotes.Quote(pos.Underlying)
		if !ok {
			continue
		}
		for _, a := range pos.Analyze(quote, asOf).Legs {
			if a.Status != LegActive {
				continue
			}
			// Sold legs are a liability: their mark enters negatively.
			v.Options -= a.Mark
		}
	}

	v.Cash = cash - v.Collateral
	v.Total = v.Cash + v.Shares + v.Options + v.Collateral
	return v
}
