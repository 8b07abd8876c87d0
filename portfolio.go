package wheel

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"
	"sort"
)

// Warning reports a record that was skipped during a replay, with its cause.
// Replays never abort on a single bad record; they collect warnings and
// keep the running totals intact.
type Warning struct {
	Activity TradeActivity
	Err      error
}

func (w Warning) String() string {
	return fmt.Sprintf("skipped %s %q on %s: %v", w.Activity.Action, w.Activity.Symbol, w.Activity.Date, w.Err)
}

// Portfolio owns every share and option ledger of one accounting run and
// the cumulative realized P&L. It is built by replaying a date-ordered
// activity stream; it is not safe for concurrent use — one Portfolio per
// isolated run.
type Portfolio struct {
	Realized Money // cumulative realized P&L across all ledgers

	shares        map[string]*SharePosition
	options       map[string]*OptionPosition
	closedOptions []*OptionPosition // terminally closed positions, in close order
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{
		shares:  make(map[string]*SharePosition),
		options: make(map[string]*OptionPosition),
	}
}

// Load replays a full activity stream: it sorts a copy of the records by
// date (stable, so same-day records keep their relative order) and replays
// them in a single chronological pass, dispatching each record to the
// share or option ledgers by its action kind. One pass matters: a sale of
// shares that an earlier put assignment brought in must see those shares
// already on the books.
func (p *Portfolio) Load(activities []TradeActivity) []Warning {
	sorted := make([]TradeActivity, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var warnings []Warning
	for _, a := range sorted {
		var err error
		switch {
		case a.Action.IsShareAction() && !a.Option:
			err = p.loadShare(a)
		case a.Action.IsOptionAction():
			err = p.loadOption(a)
		default:
			continue
		}
		if err != nil {
			warnings = append(warnings, warn(a, err))
		}
	}
	return warnings
}

// LoadShares replays buy and sell records into the share ledgers, creating
// positions lazily. Records of any other kind are ignored. The stream must
// already be in non-decreasing date order.
func (p *Portfolio) LoadShares(activities []TradeActivity) []Warning {
	var warnings []Warning
	for _, a := range activities {
		if !a.Action.IsShareAction() || a.Option {
			continue
		}
		if err := p.loadShare(a); err != nil {
			warnings = append(warnings, warn(a, err))
		}
	}
	return warnings
}

func (p *Portfolio) loadShare(a TradeActivity) error {
	if err := a.Validate(); err != nil {
		return err
	}
	pos := p.sharePosition(a.Symbol)
	switch a.Action {
	case ActionBuy:
		return pos.Buy(a.Quantity, a.Price, a.Date)
	case ActionSell:
		realized, err := pos.Sell(a.Quantity, a.Price)
		if err != nil {
			return err
		}
		p.Realized = p.Realized.Add(realized)
		return nil
	default:
		return fmt.Errorf("%w: %s on share ledger", ErrUnsupportedActivity, a.Action)
	}
}

// LoadOptions replays option lifecycle records into the option ledgers,
// creating positions lazily on first sell-to-open. Records of any other
// kind are ignored. The stream must already be in non-decreasing date
// order. An assignment also applies its share-side effect: a put assigns
// stock in at the strike, a call assigns stock away at the strike.
func (p *Portfolio) LoadOptions(activities []TradeActivity) []Warning {
	var warnings []Warning
	for _, a := range activities {
		if !a.Action.IsOptionAction() {
			continue
		}
		if err := p.loadOption(a); err != nil {
			warnings = append(warnings, warn(a, err))
		}
	}
	return warnings
}

func (p *Portfolio) loadOption(a TradeActivity) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.Option {
		return fmt.Errorf("%w: %s record is not option-flagged", ErrUnsupportedActivity, a.Action)
	}

	switch a.Action {
	case ActionSellToOpen:
		pos := p.optionPosition(a)
		return pos.SellToOpen(a.Quantity, a.Price, a.Date, a)

	case ActionBuyToClose:
		pos, ok := p.options[a.ContractID()]
		if !ok || pos.Closed {
			return fmt.Errorf("%w: no open position for %s", ErrInsufficientLots, a.ContractID())
		}
		realized, err := pos.BuyToClose(a.Quantity, a.Price, a.Date)
		if err != nil {
			return err
		}
		p.Realized = p.Realized.Add(realized)
		p.retireIfClosed(pos)
		return nil

	case ActionExpired:
		pos, ok := p.options[a.ContractID()]
		if !ok || pos.Closed {
			return fmt.Errorf("%w: no open position for %s", ErrInsufficientLots, a.ContractID())
		}
		realized, err := pos.Expire(a.Date)
		if err != nil {
			return err
		}
		p.Realized = p.Realized.Add(realized)
		p.retireIfClosed(pos)
		return nil

	case ActionAssignment:
		pos, ok := p.options[a.ContractID()]
		if !ok || pos.Closed {
			return fmt.Errorf("%w: no open position for %s", ErrInsufficientLots, a.ContractID())
		}
		contracts := pos.OpenContracts
		realized, err := pos.Assign(a.Date)
		if err != nil {
			return err
		}
		p.Realized = p.Realized.Add(realized)
		p.retireIfClosed(pos)
		return p.assignShares(pos, contracts, a.Date)

	default:
		return fmt.Errorf("%w: %s on option ledger", ErrUnsupportedActivity, a.Action)
	}
}

// assignShares applies the share-side effect of an assignment: an assigned
// put buys the underlying at the strike, an assigned call sells it at the
// strike. This cross-ledger orchestration belongs here, not in the option
// ledger.
func (p *Portfolio) assignShares(pos *OptionPosition, contracts Quantity, on Date) error {
	shares := contracts.Mul(ContractMultiplier)
	underlying := p.sharePosition(pos.Underlying)
	switch pos.Kind {
	case Put:
		return underlying.Buy(shares, pos.Strike, on)
	case Call:
		realized, err := underlying.Sell(shares, pos.Strike)
		if err != nil {
			return fmt.Errorf("assigned call on %s: %w", pos.Underlying, err)
		}
		p.Realized = p.Realized.Add(realized)
		return nil
	}
	return nil
}

// sharePosition returns the share ledger for a symbol, creating it lazily.
func (p *Portfolio) sharePosition(symbol string) *SharePosition {
	pos, ok := p.shares[symbol]
	if !ok {
		pos = NewSharePosition(symbol)
		p.shares[symbol] = pos
	}
	return pos
}

// optionPosition returns the option ledger for a record's contract
// identity, creating it lazily. A terminally closed position is retired
// and replaced by a fresh one: Closed is a terminal state.
func (p *Portfolio) optionPosition(a TradeActivity) *OptionPosition {
	id := a.ContractID()
	pos, ok := p.options[id]
	if !ok || pos.Closed {
		pos = NewOptionPosition(a.Underlying, a.Expiration, a.Strike, a.Kind)
		p.options[id] = pos
	}
	return pos
}

// retireIfClosed moves a terminally closed position to the closed history.
// It stays reachable through ClosedOptionPositions for reporting.
func (p *Portfolio) retireIfClosed(pos *OptionPosition) {
	if pos.Closed {
		p.closedOptions = append(p.closedOptions, pos)
	}
}

// Shares returns the share position for a symbol, or nil if the symbol
// was never traded.
func (p *Portfolio) Shares(symbol string) *SharePosition {
	return p.shares[symbol]
}

// Option returns the option position for a contract identity key, or nil.
func (p *Portfolio) Option(id string) *OptionPosition {
	return p.options[id]
}

// Symbols iterates over the symbols with a share position, sorted.
func (p *Portfolio) Symbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		symbols := slices.Collect(maps.Keys(p.shares))
		slices.Sort(symbols)
		for _, s := range symbols {
			if !yield(s) {
				return
			}
		}
	}
}

// OptionPositions iterates over all option positions still tracked in the
// contract map (open, or closed but never reopened), sorted by identity.
func (p *Portfolio) OptionPositions() iter.Seq[*OptionPosition] {
	return func(yield func(*OptionPosition) bool) {
		ids := slices.Collect(maps.Keys(p.options))
		slices.Sort(ids)
		for _, id := range ids {
			if !yield(p.options[id]) {
				return
			}
		}
	}
}

// OpenOptionPositions iterates over the option positions that still have
// open contracts, sorted by identity.
func (p *Portfolio) OpenOptionPositions() iter.Seq[*OptionPosition] {
	return func(yield func(*OptionPosition) bool) {
		for pos := range p.OptionPositions() {
			if pos.Closed {
				continue
			}
			if !yield(pos) {
				return
			}
		}
	}
}

// ClosedOptionPositions returns the terminally closed positions in the
// order they closed.
func (p *Portfolio) ClosedOptionPositions() []*OptionPosition {
	out := make([]*OptionPosition, len(p.closedOptions))
	copy(out, p.closedOptions)
	return out
}

func warn(a TradeActivity, err error) Warning {
	w := Warning{Activity: a, Err: err}
	log.Printf("%s", w)
	return w
}
