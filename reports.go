package wheel

// SharePnL holds the P&L of one symbol's share position.
type SharePnL struct {
	Symbol     string
	Quantity   Quantity
	CostBasis  Money // weighted-average cost per share
	Realized   Money
	Unrealized float64 // heuristic, 0 when no quote is available
}

// OptionPnL holds the P&L of one option position.
type OptionPnL struct {
	Contract   string
	Status     PositionStatus
	Contracts  Quantity // still open
	Credit     Money    // outstanding credit
	Realized   Money
	Unrealized float64 // heuristic mark-based, 0 when no quote is available
}

// PnLReport is the portfolio-wide profit-and-loss summary, in the shape
// consumed by the renderer and the CLI.
type PnLReport struct {
	AsOf    Date
	Shares  []SharePnL
	Options []OptionPnL

	Realized   Money // cumulative realized P&L of the whole replay
	Unrealized float64
	Total      float64
}

// NewPnLReport computes realized and unrealized P&L across every position.
// Unrealized values are heuristic marks; positions without a quote
// contribute only their realized side.
func NewPnLReport(p *Portfolio, quotes QuoteProvider, asOf Date) *PnLReport {
	report := &PnLReport{AsOf: asOf, Realized: p.Realized}

	for symbol := range p.Symbols() {
		sp := p.Shares(symbol)
		row := SharePnL{
			Symbol:    symbol,
			Quantity:  sp.Quantity,
			CostBasis: sp.CostBasis(),
			Realized:  sp.Realized,
		}
		if quote, ok := quotes.Quote(symbol); ok && sp.Quantity.IsPositive() {
			row.Unrealized = (quote.Price - sp.CostBasis().Float64()) * sp.Quantity.Float64()
		}
		report.Unrealized += row.Unrealized
		report.Shares = append(report.Shares, row)
	}

	for pos := range p.OptionPositions() {
		row := OptionPnL{
			Contract:  pos.ID(),
			Status:    PositionActive,
			Contracts: pos.OpenContracts,
			Credit:    pos.Credit,
			Realized:  pos.Realized,
		}
		if quote, ok := quotes.Quote(pos.Underlying); ok {
			analysis := pos.Analyze(quote, asOf)
			row.Status = analysis.Status
			for _, leg := range analysis.Legs {
				if leg.Status == LegActive {
					row.Unrealized += leg.Unrealized
				}
			}
		} else if pos.Closed {
			switch pos.Reason {
			case ClosedExpired:
				row.Status = PositionExpired
			case ClosedAssigned:
				row.Status = PositionAssigned
			default:
				row.Status = PositionClosed
			}
		}
		report.Unrealized += row.Unrealized
		report.Options = append(report.Options, row)
	}

	// A contract reopened after a terminal close replaces its map entry;
	// the earlier cycle survives only in the closed history. Its realized
	// P&L still gets a row.
	for _, pos := range p.ClosedOptionPositions() {
		if p.Option(pos.ID()) == pos {
			continue
		}
		row := OptionPnL{
			Contract:  pos.ID(),
			Contracts: pos.OpenContracts,
			Credit:    pos.Credit,
			Realized:  pos.Realized,
		}
		switch pos.Reason {
		case ClosedExpired:
			row.Status = PositionExpired
		case ClosedAssigned:
			row.Status = PositionAssigned
		default:
			row.Status = PositionClosed
		}
		report.Options = append(report.Options, row)
	}

	report.Total = report.Realized.Float64() + report.Unrealized
	return report
}
