package wheel

import (
	"errors"
	"fmt"
)

// ErrInsufficientLots is returned when a sale or close consumes more
// quantity than the open lots hold.
var ErrInsufficientLots = errors.New("insufficient lots")

// ErrUnsupportedActivity is returned when a record's action kind is not
// meaningful to the ledger it was dispatched to.
var ErrUnsupportedActivity = errors.New("unsupported activity")

// ErrPositionClosed is returned when an operation targets an option
// position that already reached its terminal state.
var ErrPositionClosed = errors.New("position is closed")

// ValidationError reports a structurally malformed activity record.
// The offending record is carried so orchestrators can warn with context.
type ValidationError struct {
	Activity TradeActivity
	Cause    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s activity on %s for %q: %v", e.Activity.Action, e.Activity.Date, e.Activity.Symbol, e.Cause)
}

func (e *ValidationError) Unwrap() error { return e.Cause }
