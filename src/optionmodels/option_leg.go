package optionmodels

import "fmt"

type OptionLeg struct {
	Action     TradeAction `json:"action"`
	OptionType OptionType  `json:"option_type"`
	Strike     float64     `json:"strike"`
	Premium    float64     `json:"premium"`
	Contracts  int         `json:"contracts"`
}

func (leg OptionLeg) Validate() error {
	if err := leg.Action.Validate(); err != nil {
		return fmt.Errorf("OptionLeg: Validate: %w", err)
	}

	if err := leg.OptionType.Validate(); err != nil {
		return fmt.Errorf("OptionLeg: Validate: %w", err)
	}

	if leg.Strike < 0 {
		return fmt.Errorf("OptionLeg: Validate: strike must be non-negative, got %v", leg.Strike)
	}

	if leg.Premium < 0 {
		return fmt.Errorf("OptionLeg: Validate: premium must be non-negative, got %v", leg.Premium)
	}

	if leg.Contracts < 1 {
		return fmt.Errorf("OptionLeg: Validate: contracts must be at least 1, got %v", leg.Contracts)
	}

	return nil
}

// SignedPremium is credit-positive: sells collect premium, buys pay it.
func (leg OptionLeg) SignedPremium() float64 {
	total := leg.Premium * float64(leg.Contracts)
	if leg.Action == Sell {
		return total
	}

	return -total
}

// NetPremium is the total credit received minus total debit paid across all legs.
func NetPremium(legs []OptionLeg) float64 {
	net := 0.0
	for _, leg := range legs {
		net += leg.SignedPremium()
	}

	return net
}
