package wheel

import (
	"errors"
	"testing"
)

func TestSharePosition_FIFO(t *testing.T) {
	// Buys 10@$10 then 5@$20, sell 12@$15:
	// realized = (15-10)x10 + (15-20)x2 = $40, 3 shares remain at cost $20.
	pos := NewSharePosition("AAPL")
	if err := pos.Buy(Q(10), USD(10), MustParse("2025-01-10")); err != nil {
		t.Fatalf("Buy() error: %v", err)
	}
	if err := pos.Buy(Q(5), USD(20), MustParse("2025-01-15")); err != nil {
		t.Fatalf("Buy() error: %v", err)
	}

	realized, err := pos.Sell(Q(12), USD(15))
	if err != nil {
		t.Fatalf("Sell() error: %v", err)
	}
	if want := USD(40); !realized.Equal(want) {
		t.Errorf("Sell() realized = %s, want %s", realized, want)
	}
	if want := Q(3); !pos.Quantity.Equal(want) {
		t.Errorf("Quantity = %s, want %s", pos.Quantity, want)
	}
	if want := USD(60); !pos.Cost.Equal(want) {
		t.Errorf("Cost = %s, want %s", pos.Cost, want)
	}
	if want := USD(20); !pos.CostBasis().Equal(want) {
		t.Errorf("CostBasis() = %s, want %s", pos.CostBasis(), want)
	}
	lots := pos.Lots()
	if len(lots) != 1 {
		t.Fatalf("Lots() = %d lots, want 1", len(lots))
	}
	if !lots[0].Quantity.Equal(Q(3)) || !lots[0].Price.Equal(USD(20)) {
		t.Errorf("remaining lot = %s@%s, want 3@$20.00", lots[0].Quantity, lots[0].Price)
	}
}

func TestSharePosition_WeightedAverageCostBasis(t *testing.T) {
	// Buy 100@$50 then 50@$60: cost basis = (100x50 + 50x60)/150 = $53.33
	pos := NewSharePosition("MSFT")
	if err := pos.Buy(Q(100), USD(50), MustParse("2025-02-01")); err != nil {
		t.Fatalf("Buy() error: %v", err)
	}
	if err := pos.Buy(Q(50), USD(60), MustParse("2025-02-10")); err != nil {
		t.Fatalf("Buy() error: %v", err)
	}

	got := pos.CostBasis().Float64()
	want := 8000.0 / 150.0
	if diff := got - want; diff > 0.001 || diff < -0.001 {
		t.Errorf("CostBasis() = %v, want %v", got, want)
	}
}

func TestSharePosition_PartialLotRemainderStaysInFront(t *testing.T) {
	pos := NewSharePosition("NVDA")
	pos.Buy(Q(10), USD(100), MustParse("2025-03-01"))
	pos.Buy(Q(10), USD(110), MustParse("2025-03-05"))

	// Sell 4 from the front lot: 6 must remain in front for the next sale.
	if _, err := pos.Sell(Q(4), USD(120)); err != nil {
		t.Fatalf("Sell() error: %v", err)
	}
	lots := pos.Lots()
	if len(lots) != 2 {
		t.Fatalf("Lots() = %d lots, want 2", len(lots))
	}
	if !lots[0].Quantity.Equal(Q(6)) || !lots[0].Price.Equal(USD(100)) {
		t.Errorf("front lot = %s@%s, want 6@$100.00", lots[0].Quantity, lots[0].Price)
	}

	// The next sale keeps consuming the remainder before the younger lot.
	realized, err := pos.Sell(Q(8), USD(120))
	if err != nil {
		t.Fatalf("Sell() error: %v", err)
	}
	// (120-100)x6 + (120-110)x2 = 140
	if want := USD(140); !realized.Equal(want) {
		t.Errorf("Sell() realized = %s, want %s", realized, want)
	}
}

func TestSharePosition_Sell_InsufficientLots(t *testing.T) {
	pos := NewSharePosition("AMD")
	pos.Buy(Q(5), USD(80), MustParse("2025-01-02"))

	_, err := pos.Sell(Q(6), USD(90))
	if !errors.Is(err, ErrInsufficientLots) {
		t.Fatalf("Sell() error = %v, want ErrInsufficientLots", err)
	}
	// The position is untouched after a refused sale.
	if !pos.Quantity.Equal(Q(5)) {
		t.Errorf("Quantity = %s, want 5", pos.Quantity)
	}
	if !pos.Realized.IsZero() {
		t.Errorf("Realized = %s, want 0", pos.Realized)
	}
}

func TestSharePosition_Preconditions(t *testing.T) {
	pos := NewSharePosition("TSLA")

	testCases := []struct {
		name string
		call func() error
	}{
		{"buy zero quantity", func() error { return pos.Buy(Q(0), USD(10), Today()) }},
		{"buy negative quantity", func() error { return pos.Buy(Q(-1), USD(10), Today()) }},
		{"buy zero price", func() error { return pos.Buy(Q(1), USD(0), Today()) }},
		{"sell zero quantity", func() error { _, err := pos.Sell(Q(0), USD(10)); return err }},
		{"sell negative price", func() error { _, err := pos.Sell(Q(1), USD(-10)); return err }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); err == nil {
				t.Error("want an error, got nil")
			}
		})
	}
}

func TestSharePosition_RunningRealized(t *testing.T) {
	pos := NewSharePosition("INTC")
	pos.Buy(Q(20), USD(30), MustParse("2025-01-02"))

	pos.Sell(Q(5), USD(35))
	pos.Sell(Q(5), USD(25))

	// (35-30)x5 + (25-30)x5 = 0
	if !pos.Realized.IsZero() {
		t.Errorf("Realized = %s, want 0", pos.Realized)
	}
}
