package wheel

import "math"

// Side distinguishes a written (sold) leg from a bought one.
type Side string

const (
	SideSold   Side = "sold"
	SideBought Side = "bought"
)

// LegStatus is the lifecycle state of a single option leg.
type LegStatus string

const (
	LegActive   LegStatus = "active"
	LegClosed   LegStatus = "closed"
	LegExpired  LegStatus = "expired"
	LegAssigned LegStatus = "assigned"
)

// PositionStatus is the aggregate lifecycle state of a position.
type PositionStatus string

const (
	PositionActive   PositionStatus = "ACTIVE"
	PositionClosed   PositionStatus = "CLOSED"
	PositionExpired  PositionStatus = "EXPIRED"
	PositionAssigned PositionStatus = "ASSIGNED"
)

// Leg is the valuation engine's view of one option leg. Premium is per
// share; Contracts may be fractional. Valuation is heuristic float math,
// deliberately separate from the exact decimal ledger arithmetic.
type Leg struct {
	Kind      OptionKind
	Side      Side
	Strike    float64
	Premium   float64 // per share, paid (bought) or received (sold)
	Expiry    Date
	Contracts float64
	Status    LegStatus
}

// LegAnalysis is the ephemeral valuation of one leg against a quote on an
// as-of date. It is recomputed on demand and never persisted as
// authoritative state.
type LegAnalysis struct {
	Leg

	DaysToExpiry int
	Expired      bool
	InTheMoney   bool
	Intrinsic    float64 // per share
	TimeValue    float64 // per share
	Probability  Percent // heuristic probability of exercise
	AutoExercise bool
	Mark         float64 // total heuristic mark value of the leg
	Unrealized   float64 // total unrealized P&L of the leg
}

// PositionAnalysis aggregates the leg analyses of one position with its
// risk metrics.
type PositionAnalysis struct {
	Legs   []LegAnalysis
	Status PositionStatus

	PremiumCollected float64 // total premium received on sold legs
	CapitalAtRisk    float64 // strike x 100 x contracts over active sold puts
	MaxLoss          float64
	MaxGain          float64
	BreakEven        float64
	TotalPL          float64
	ROI              Percent
	AnnualizedROI    Percent
}

// DaysToExpiry returns the number of days from asOf until expiry, never
// negative. Same-day expiry counts as zero (expired).
func DaysToExpiry(expiry, asOf Date) int {
	days := asOf.DaysUntil(expiry)
	if days < 0 {
		return 0
	}
	return days
}

// IntrinsicValue returns the per-share exercise value of an option at the
// given underlying price.
func IntrinsicValue(kind OptionKind, strike, price float64) float64 {
	switch kind {
	case Put:
		return math.Max(0, strike-price)
	case Call:
		return math.Max(0, price-strike)
	}
	return 0
}

// Probability heuristic tuning. The ITM weight scales the days-to-expiry
// contribution; the OTM decay is the distance constant of the exponential
// falloff. Calls are tuned separately from puts.
const (
	putITMWeight  = 50.0
	putOTMDecay   = 10.0
	callITMWeight = 40.0
	callOTMDecay  = 8.0
)

// PutExerciseProbability estimates the probability, in percent, that a
// short put is exercised. This is a heuristic, not a pricing-model
// estimate:
//
//   - expired: 100 if ITM, else 0
//   - ITM:     min(95, moneyness x 100 + 50 x (1 - min(1, dte/30)))
//     with moneyness = intrinsic/strike
//   - OTM:     max(5, 50 x exp(-distance%/10))
//
// Bounds: [5, 95] before expiry, {0, 100} at expiry.
func PutExerciseProbability(price, strike float64, daysToExpiry int) Percent {
	return exerciseProbability(Put, price, strike, daysToExpiry, putITMWeight, putOTMDecay)
}

// CallExerciseProbability is the covered-call analogue of
// PutExerciseProbability, with a 40-point ITM weight and an 8% OTM decay
// constant.
func CallExerciseProbability(price, strike float64, daysToExpiry int) Percent {
	return exerciseProbability(Call, price, strike, daysToExpiry, callITMWeight, callOTMDecay)
}

func exerciseProbability(kind OptionKind, price, strike float64, daysToExpiry int, itmWeight, otmDecay float64) Percent {
	intrinsic := IntrinsicValue(kind, strike, price)
	if daysToExpiry == 0 {
		if intrinsic > 0 {
			return 100
		}
		return 0
	}
	if intrinsic > 0 {
		moneyness := intrinsic / strike
		decay := 1 - math.Min(1, float64(daysToExpiry)/30)
		return Percent(math.Min(95, moneyness*100+itmWeight*decay))
	}
	distancePercent := math.Abs(price-strike) / strike * 100
	return Percent(math.Max(5, 50*math.Exp(-distancePercent/otmDecay)))
}

// timeDecayFactor discounts remaining time value as expiry approaches.
func timeDecayFactor(daysToExpiry int) float64 {
	return math.Max(0.1, float64(daysToExpiry)/30)
}

// AnalyzeLeg values one leg against the underlying price on an as-of date.
// It is a pure function of its inputs.
func AnalyzeLeg(leg Leg, price float64, asOf Date) LegAnalysis {
	a := LegAnalysis{Leg: leg}
	a.DaysToExpiry = DaysToExpiry(leg.Expiry, asOf)
	a.Expired = a.DaysToExpiry == 0
	a.Intrinsic = IntrinsicValue(leg.Kind, leg.Strike, price)
	a.InTheMoney = a.Intrinsic > 0
	a.TimeValue = math.Max(0, leg.Premium-a.Intrinsic)

	switch leg.Kind {
	case Put:
		a.Probability = PutExerciseProbability(price, leg.Strike, a.DaysToExpiry)
	case Call:
		a.Probability = CallExerciseProbability(price, leg.Strike, a.DaysToExpiry)
	}

	a.AutoExercise = a.Expired && a.InTheMoney && a.Intrinsic > 0.01

	markPerShare := a.Intrinsic + a.TimeValue*timeDecayFactor(a.DaysToExpiry)
	a.Mark = markPerShare * 100 * leg.Contracts

	premium := leg.Premium * 100 * leg.Contracts
	if leg.Side == SideSold {
		a.Unrealized = premium - a.Mark
	} else {
		a.Unrealized = a.Mark - premium
	}
	return a
}

// AnalyzePosition values a whole position: every leg, the aggregate
// status, and the wheel risk metrics. Realized is the P&L already realized
// by the position's ledger, included in TotalPL and ROI.
func AnalyzePosition(legs []Leg, realized float64, price float64, asOf Date) PositionAnalysis {
	p := PositionAnalysis{Legs: make([]LegAnalysis, 0, len(legs))}

	var anyActive, anyExpired, anyAssigned bool
	var soldPutShares, soldPutPremium float64
	var positionDTE int

	for _, leg := range legs {
		a := AnalyzeLeg(leg, price, asOf)
		p.Legs = append(p.Legs, a)

		switch leg.Status {
		case LegAssigned:
			anyAssigned = true
		case LegExpired:
			anyExpired = true
		case LegActive:
			anyActive = true
		}

		if leg.Side == SideSold {
			p.PremiumCollected += leg.Premium * 100 * leg.Contracts
		}
		if leg.Status == LegActive {
			p.TotalPL += a.Unrealized
			if a.DaysToExpiry > positionDTE {
				positionDTE = a.DaysToExpiry
			}
			if leg.Side == SideSold && leg.Kind == Put {
				p.CapitalAtRisk += leg.Strike * 100 * leg.Contracts
				soldPutShares += 100 * leg.Contracts
				soldPutPremium += leg.Premium * 100 * leg.Contracts
			}
		}
	}
	p.TotalPL += realized

	switch {
	case anyAssigned:
		p.Status = PositionAssigned
	case !anyActive && anyExpired:
		p.Status = PositionExpired
	case !anyActive && len(legs) > 0:
		p.Status = PositionClosed
	default:
		p.Status = PositionActive
	}

	p.MaxLoss = p.CapitalAtRisk - p.PremiumCollected
	p.MaxGain = p.PremiumCollected
	if soldPutShares > 0 {
		// Average strike of the active sold puts, reduced by their own
		// premium per covered share. Call premium does not lower the price
		// at which the puts start losing.
		p.BreakEven = (p.CapitalAtRisk - soldPutPremium) / soldPutShares
	}
	if p.CapitalAtRisk > 0 {
		p.ROI = Percent(p.TotalPL / p.CapitalAtRisk * 100)
	}
	if positionDTE > 0 {
		p.AnnualizedROI = Percent(float64(p.ROI) * 365 / float64(positionDTE))
	}
	return p
}

// Analyze builds the valuation legs of an option position from its open
// and closed lots and values them against a quote. Open lots become active
// sold legs; closed lots carry the status of their closing path.
func (pos *OptionPosition) Analyze(quote Quote, asOf Date) PositionAnalysis {
	var legs []Leg
	for _, lot := range pos.Lots() {
		legs = append(legs, Leg{
			Kind:      pos.Kind,
			Side:      SideSold,
			Strike:    pos.Strike.Float64(),
			Premium:   lot.Premium.Float64(),
			Expiry:    pos.Expiration,
			Contracts: lot.Contracts.Float64(),
			Status:    LegActive,
		})
	}
	for _, lot := range pos.ClosedLots() {
		status := LegClosed
		switch lot.Reason {
		case ClosedExpired:
			status = LegExpired
		case ClosedAssigned:
			status = LegAssigned
		}
		legs = append(legs, Leg{
			Kind:      pos.Kind,
			Side:      SideSold,
			Strike:    pos.Strike.Float64(),
			Premium:   lot.Premium.Float64(),
			Expiry:    pos.Expiration,
			Contracts: lot.Contracts.Float64(),
			Status:    status,
		})
	}
	return AnalyzePosition(legs, pos.Realized.Float64(), quote.Price, asOf)
}
