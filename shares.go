package wheel

import (
	"fmt"
	"sort"
)

// ShareLot represents a single purchase batch of shares, consumed
// oldest-first on disposal.
type ShareLot struct {
	Quantity Quantity // remaining shares in the lot
	Price    Money    // price per share paid
	Date     Date     // acquisition date
}

type shareLots []ShareLot

// SharePosition is the per-symbol FIFO ledger of purchased share lots.
// It tracks total quantity, total cost, and the realized P&L accumulated
// by sales. It is not safe for concurrent use.
type SharePosition struct {
	Symbol   string
	Quantity Quantity // total shares held
	Cost     Money    // total cost of the held shares
	Realized Money    // running realized P&L of this position

	lots shareLots // open lots, oldest first
}

// NewSharePosition creates an empty position for a symbol.
func NewSharePosition(symbol string) *SharePosition {
	return &SharePosition{Symbol: symbol}
}

// Lots returns a copy of the open lots, oldest first.
func (p *SharePosition) Lots() []ShareLot {
	out := make([]ShareLot, len(p.lots))
	copy(out, p.lots)
	return out
}

// CostBasis returns the weighted-average cost per share of the open
// position, or zero when no shares are held.
func (p *SharePosition) CostBasis() Money {
	if !p.Quantity.IsPositive() {
		return M(0, p.Cost.Currency())
	}
	return p.Cost.Div(p.Quantity)
}

// Buy appends a new lot and updates the position totals. Quantity and
// price must be positive.
func (p *SharePosition) Buy(quantity Quantity, price Money, on Date) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("buy quantity must be positive, got %s", quantity)
	}
	if !price.IsPositive() {
		return fmt.Errorf("buy price must be positive, got %s", price)
	}
	p.lots = append(p.lots, ShareLot{Quantity: quantity, Price: price, Date: on})
	// Keep FIFO order even if a caller replays out-of-order batches.
	sort.SliceStable(p.lots, func(i, j int) bool {
		return p.lots[i].Date.Before(p.lots[j].Date)
	})
	p.Quantity = p.Quantity.Add(quantity)
	p.Cost = p.Cost.Add(price.Mul(quantity))
	return nil
}

// Sell consumes open lots oldest-first and returns the realized P&L of
// this sale. A partially consumed lot keeps its remainder at the front of
// the queue. It fails with ErrInsufficientLots when the sale exceeds the
// position, leaving the position untouched.
func (p *SharePosition) Sell(quantity Quantity, price Money) (Money, error) {
	if !quantity.IsPositive() {
		return Money{}, fmt.Errorf("sell quantity must be positive, got %s", quantity)
	}
	if !price.IsPositive() {
		return Money{}, fmt.Errorf("sell price must be positive, got %s", price)
	}
	if p.Quantity.LessThan(quantity) {
		return Money{}, fmt.Errorf("%w: cannot sell %s of %s, position is only %s", ErrInsufficientLots, quantity, p.Symbol, p.Quantity)
	}

	var realized Money
	remaining := quantity
	for remaining.IsPositive() {
		lot := &p.lots[0]
		lotQty := remaining.Min(lot.Quantity)

		realized = realized.Add(price.Sub(lot.Price).Mul(lotQty))
		p.Quantity = p.Quantity.Sub(lotQty)
		p.Cost = p.Cost.Sub(lot.Price.Mul(lotQty))

		lot.Quantity = lot.Quantity.Sub(lotQty)
		if lot.Quantity.IsZero() {
			p.lots = p.lots[1:]
		}
		remaining = remaining.Sub(lotQty)
	}

	p.Realized = p.Realized.Add(realized)
	return realized, nil
}
