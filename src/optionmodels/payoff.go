package optionmodels

import "math"

// PayoffAt returns the profit or loss of a single leg if the underlying
// settles at price. Every payoff in the system, whether for metrics or for
// charting, must go through this function.
func PayoffAt(leg OptionLeg, price float64) float64 {
	var intrinsic float64
	switch leg.OptionType {
	case Put:
		intrinsic = math.Max(0, leg.Strike-price)
	default:
		intrinsic = math.Max(0, price-leg.Strike)
	}

	payoff := intrinsic - leg.Premium
	if leg.Action == Sell {
		payoff = -payoff
	}

	return payoff * float64(leg.Contracts)
}

// StrategyPayoff sums PayoffAt over all legs at the given settlement price.
func StrategyPayoff(legs []OptionLeg, price float64) float64 {
	total := 0.0
	for _, leg := range legs {
		total += PayoffAt(leg, price)
	}

	return total
}
