package wheel

import (
	"errors"
	"testing"
)

func TestParseActionType(t *testing.T) {
	tests := []struct {
		in   string
		want ActionType
	}{
		{"buy", ActionBuy},
		{"sell", ActionSell},
		{"sell-to-open", ActionSellToOpen},
		{"buy-to-close", ActionBuyToClose},
		{"assignment", ActionAssignment},
		{"expired", ActionExpired},
		{"dividend", ActionDividend},
		{"BUY", ActionUnknown},
		{"journaled shares", ActionUnknown},
		{"", ActionUnknown},
	}
	for _, tt := range tests {
		if got := ParseActionType(tt.in); got != tt.want {
			t.Errorf("ParseActionType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseOptionKind(t *testing.T) {
	for _, s := range []string{"call", "Call", "CALL", "C", "c"} {
		if got, err := ParseOptionKind(s); err != nil || got != Call {
			t.Errorf("ParseOptionKind(%q) = %q, %v, want call", s, got, err)
		}
	}
	for _, s := range []string{"put", "P", "p"} {
		if got, err := ParseOptionKind(s); err != nil || got != Put {
			t.Errorf("ParseOptionKind(%q) = %q, %v, want put", s, got, err)
		}
	}
	if _, err := ParseOptionKind("straddle"); err == nil {
		t.Error("ParseOptionKind(straddle) should fail")
	}
}

func TestTradeActivity_Validate(t *testing.T) {
	valid := optionActivity("2025-02-01", ActionSellToOpen, "AAPL", "2025-03-21", 160, Call, 1, 2.50)
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v on a complete option record", err)
	}

	tests := []struct {
		name    string
		corrupt func(*TradeActivity)
	}{
		{"missing date", func(a *TradeActivity) { a.Date = Date{} }},
		{"missing symbol", func(a *TradeActivity) { a.Symbol = "" }},
		{"missing underlying", func(a *TradeActivity) { a.Underlying = "" }},
		{"missing expiration", func(a *TradeActivity) { a.Expiration = Date{} }},
		{"zero strike", func(a *TradeActivity) { a.Strike = Money{} }},
		{"negative strike", func(a *TradeActivity) { a.Strike = USD(-5) }},
		{"missing kind", func(a *TradeActivity) { a.Kind = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.corrupt(&a)
			err := a.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want an error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("Validate() = %T, want *ValidationError", err)
			}
		})
	}
}

func TestTradeActivity_Validate_ShareRecordIgnoresOptionFields(t *testing.T) {
	// A non-option record does not need the contract identity.
	a := shareBuy("2025-01-10", "AAPL", 100, 150)
	if err := a.Validate(); err != nil {
		t.Errorf("Validate() = %v on a share record", err)
	}
}
