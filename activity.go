package wheel

import (
	"errors"
	"fmt"
)

// ActionType is a typed string identifying the kind of brokerage activity.
type ActionType string

// Action kinds reported by brokerages.
const (
	ActionBuy        ActionType = "buy"
	ActionSell       ActionType = "sell"
	ActionSellToOpen ActionType = "sell-to-open"
	ActionBuyToClose ActionType = "buy-to-close"
	ActionAssignment ActionType = "assignment"
	ActionExpired    ActionType = "expired"
	ActionDividend   ActionType = "dividend"
	ActionInterest   ActionType = "interest"
	ActionTransfer   ActionType = "transfer"
	ActionUnknown    ActionType = "unknown"
)

// ParseActionType parses a string into an ActionType, mapping anything
// unrecognized to ActionUnknown.
func ParseActionType(s string) ActionType {
	switch ActionType(s) {
	case ActionBuy, ActionSell, ActionSellToOpen, ActionBuyToClose,
		ActionAssignment, ActionExpired, ActionDividend, ActionInterest,
		ActionTransfer:
		return ActionType(s)
	default:
		return ActionUnknown
	}
}

// IsShareAction reports whether the action is handled by the share ledger.
func (a ActionType) IsShareAction() bool {
	return a == ActionBuy || a == ActionSell
}

// IsOptionAction reports whether the action is handled by the option ledger.
func (a ActionType) IsOptionAction() bool {
	switch a {
	case ActionSellToOpen, ActionBuyToClose, ActionAssignment, ActionExpired:
		return true
	}
	return false
}

// OptionKind distinguishes calls from puts.
type OptionKind string

const (
	Call OptionKind = "call"
	Put  OptionKind = "put"
)

// ParseOptionKind parses a string into an OptionKind. It accepts the single
// letter forms brokers use ("C", "P") as well as the full words.
func ParseOptionKind(s string) (OptionKind, error) {
	switch s {
	case "call", "Call", "CALL", "C", "c":
		return Call, nil
	case "put", "Put", "PUT", "P", "p":
		return Put, nil
	default:
		return "", fmt.Errorf("unknown option kind: %q", s)
	}
}

// TradeActivity is the canonical shape of one brokerage activity record.
// It is the only input of the accounting core; format-specific importers
// produce it, already validated against their source.
type TradeActivity struct {
	Date     Date       `json:"date"`
	Symbol   string     `json:"symbol"`
	Action   ActionType `json:"action"`
	Quantity Quantity   `json:"quantity,omitzero"` // shares or contracts; fractional allowed
	Price    Money      `json:"price,omitzero"`    // per share, or premium per share for options
	Amount   Money      `json:"amount,omitzero"`   // signed cash effect as reported

	// Option fields, meaningful only when Option is true.
	Option     bool       `json:"option,omitempty"`
	Underlying string     `json:"underlying,omitempty"`
	Expiration Date       `json:"expiration,omitzero"`
	Strike     Money      `json:"strike,omitzero"`
	Kind       OptionKind `json:"kind,omitempty"`
}

// Validate checks the structural invariants of the record. An option-flagged
// record must carry its full contract identity.
func (t TradeActivity) Validate() error {
	if t.Date.IsZero() {
		return &ValidationError{Activity: t, Cause: errors.New("date is missing")}
	}
	if t.Symbol == "" {
		return &ValidationError{Activity: t, Cause: errors.New("symbol is missing")}
	}
	if t.Option {
		if t.Underlying == "" {
			return &ValidationError{Activity: t, Cause: errors.New("option record is missing its underlying")}
		}
		if t.Expiration.IsZero() {
			return &ValidationError{Activity: t, Cause: errors.New("option record is missing its expiration")}
		}
		if !t.Strike.IsPositive() {
			return &ValidationError{Activity: t, Cause: fmt.Errorf("option record strike must be positive, got %s", t.Strike)}
		}
		if t.Kind != Call && t.Kind != Put {
			return &ValidationError{Activity: t, Cause: fmt.Errorf("option record kind must be call or put, got %q", t.Kind)}
		}
	}
	return nil
}

// ContractID returns the identity key of the option contract this record
// refers to: underlying, expiration, strike and kind. It is only meaningful
// for option-flagged records.
func (t TradeActivity) ContractID() string {
	return contractID(t.Underlying, t.Expiration, t.Strike, t.Kind)
}

func contractID(underlying string, expiration Date, strike Money, kind OptionKind) string {
	return fmt.Sprintf("%s %s %s %s", underlying, expiration, strike.value.String(), kind)
}
