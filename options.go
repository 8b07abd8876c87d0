package wheel

import (
	"fmt"
	"sort"
)

// ContractMultiplier is the number of shares covered by one option contract.
var ContractMultiplier = Q(100)

// CloseReason records which lifecycle path closed an option lot.
type CloseReason string

const (
	ClosedManually CloseReason = "closed"
	ClosedExpired  CloseReason = "expired"
	ClosedAssigned CloseReason = "assigned"
)

// OptionLot represents one sell-to-open batch of short contracts.
type OptionLot struct {
	Contracts Quantity // remaining contracts in the lot
	Premium   Money    // premium collected per share
	Date      Date     // open date
	Source    TradeActivity
}

// ClosedOptionLot is the terminal record of a consumed option lot.
type ClosedOptionLot struct {
	OptionLot
	ClosedOn Date
	Debit    Money // per-share debit paid to close; zero on expiration and assignment
	Realized Money
	Reason   CloseReason
}

// OptionPosition is the FIFO ledger of short-option lots for one contract
// identity (underlying, expiration, strike, kind).
//
// Lifecycle: Open after the first sell-to-open; it stays Open through
// partial closes; it becomes Closed, terminally, when open contracts reach
// zero through a full buy-to-close, an expiration, or an assignment.
// It is not safe for concurrent use.
type OptionPosition struct {
	Underlying string
	Expiration Date
	Strike     Money
	Kind       OptionKind

	OpenContracts Quantity // contracts still open
	Credit        Money    // outstanding credit of the open contracts
	Realized      Money    // running realized P&L of this position
	Closed        bool
	Reason        CloseReason // set when Closed

	lots       []OptionLot // open lots, oldest first
	closedLots []ClosedOptionLot
}

// NewOptionPosition creates an empty position for a contract identity.
func NewOptionPosition(underlying string, expiration Date, strike Money, kind OptionKind) *OptionPosition {
	return &OptionPosition{
		Underlying: underlying,
		Expiration: expiration,
		Strike:     strike,
		Kind:       kind,
	}
}

// ID returns the contract identity key of this position.
func (p *OptionPosition) ID() string {
	return contractID(p.Underlying, p.Expiration, p.Strike, p.Kind)
}

// Lots returns a copy of the open lots, oldest first.
func (p *OptionPosition) Lots() []OptionLot {
	out := make([]OptionLot, len(p.lots))
	copy(out, p.lots)
	return out
}

// ClosedLots returns a copy of the closed-lot history, oldest close first.
func (p *OptionPosition) ClosedLots() []ClosedOptionLot {
	out := make([]ClosedOptionLot, len(p.closedLots))
	copy(out, p.closedLots)
	return out
}

// SellToOpen enqueues a new short lot. Premium is per share; the collected
// credit is premium x contracts x 100.
func (p *OptionPosition) SellToOpen(contracts Quantity, premium Money, on Date, source TradeActivity) error {
	if p.Closed {
		return fmt.Errorf("%w: %s", ErrPositionClosed, p.ID())
	}
	if !contracts.IsPositive() {
		return fmt.Errorf("sell-to-open contracts must be positive, got %s", contracts)
	}
	if !premium.IsPositive() {
		return fmt.Errorf("sell-to-open premium must be positive, got %s", premium)
	}
	p.lots = append(p.lots, OptionLot{Contracts: contracts, Premium: premium, Date: on, Source: source})
	sort.SliceStable(p.lots, func(i, j int) bool {
		return p.lots[i].Date.Before(p.lots[j].Date)
	})
	p.OpenContracts = p.OpenContracts.Add(contracts)
	p.Credit = p.Credit.Add(premium.Mul(contracts).Mul(ContractMultiplier))
	return nil
}

// BuyToClose consumes open lots oldest-first against a per-share debit and
// returns the realized P&L of this close. A partially consumed lot keeps
// its remainder at the front of the queue; fully consumed lots move to the
// closed-lot history. When the last contract closes the position becomes
// terminally Closed.
func (p *OptionPosition) BuyToClose(contracts Quantity, debit Money, on Date) (Money, error) {
	if p.Closed {
		return Money{}, fmt.Errorf("%w: %s", ErrPositionClosed, p.ID())
	}
	if !contracts.IsPositive() {
		return Money{}, fmt.Errorf("buy-to-close contracts must be positive, got %s", contracts)
	}
	if debit.IsNegative() {
		return Money{}, fmt.Errorf("buy-to-close debit cannot be negative, got %s", debit)
	}
	if p.OpenContracts.LessThan(contracts) {
		return Money{}, fmt.Errorf("%w: cannot close %s contracts of %s, only %s open", ErrInsufficientLots, contracts, p.ID(), p.OpenContracts)
	}

	var realized Money
	remaining := contracts
	for remaining.IsPositive() {
		lot := &p.lots[0]
		lotQty := remaining.Min(lot.Contracts)

		lotCredit := lot.Premium.Mul(lotQty).Mul(ContractMultiplier)
		lotDebit := debit.Mul(lotQty).Mul(ContractMultiplier)
		lotRealized := lotCredit.Sub(lotDebit)
		realized = realized.Add(lotRealized)

		p.OpenContracts = p.OpenContracts.Sub(lotQty)
		p.Credit = p.Credit.Sub(lotCredit)

		lot.Contracts = lot.Contracts.Sub(lotQty)
		if lot.Contracts.IsZero() {
			closed := ClosedOptionLot{OptionLot: p.lots[0], ClosedOn: on, Debit: debit, Realized: lotRealized, Reason: ClosedManually}
			closed.Contracts = lotQty
			p.closedLots = append(p.closedLots, closed)
			p.lots = p.lots[1:]
		} else {
			closed := ClosedOptionLot{OptionLot: *lot, ClosedOn: on, Debit: debit, Realized: lotRealized, Reason: ClosedManually}
			closed.Contracts = lotQty
			p.closedLots = append(p.closedLots, closed)
		}
		remaining = remaining.Sub(lotQty)
	}

	p.Realized = p.Realized.Add(realized)
	if p.OpenContracts.IsZero() {
		p.Closed = true
		p.Reason = ClosedManually
	}
	return realized, nil
}

// Expire realizes every remaining lot at its full premium: the contracts
// expired worthless, so the seller keeps 100% of the collected credit.
// The position becomes terminally Closed.
func (p *OptionPosition) Expire(on Date) (Money, error) {
	return p.settle(on, ClosedExpired)
}

// Assign realizes every remaining lot at its full premium, exactly like
// Expire: assignment does not change the option-side bookkeeping. The
// share-side effect of the assignment (a forced stock buy or sell at the
// strike) is the caller's responsibility, not this ledger's.
func (p *OptionPosition) Assign(on Date) (Money, error) {
	return p.settle(on, ClosedAssigned)
}

func (p *OptionPosition) settle(on Date, reason CloseReason) (Money, error) {
	if p.Closed {
		return Money{}, fmt.Errorf("%w: %s", ErrPositionClosed, p.ID())
	}
	if p.OpenContracts.IsZero() {
		return Money{}, fmt.Errorf("%w: no open contracts in %s", ErrInsufficientLots, p.ID())
	}

	var realized Money
	for _, lot := range p.lots {
		lotRealized := lot.Premium.Mul(lot.Contracts).Mul(ContractMultiplier)
		realized = realized.Add(lotRealized)
		p.closedLots = append(p.closedLots, ClosedOptionLot{OptionLot: lot, ClosedOn: on, Realized: lotRealized, Reason: reason})
	}
	p.lots = nil
	p.OpenContracts = Q(0)
	p.Credit = M(0, p.Credit.Currency())
	p.Realized = p.Realized.Add(realized)
	p.Closed = true
	p.Reason = reason
	return realized, nil
}
