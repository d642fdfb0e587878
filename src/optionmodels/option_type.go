package optionmodels

import "fmt"

type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

func (o OptionType) Validate() error {
	if o != Call && o != Put {
		return fmt.Errorf("OptionType: Validate: invalid option type: %s", o)
	}

	return nil
}

// Display returns the option type as it appears in strategy names, e.g. "Call".
func (o OptionType) Display() string {
	switch o {
	case Call:
		return "Call"
	case Put:
		return "Put"
	default:
		return "Unknown"
	}
}

type TradeAction string

const (
	Buy  TradeAction = "buy"
	Sell TradeAction = "sell"
)

func (a TradeAction) Validate() error {
	if a != Buy && a != Sell {
		return fmt.Errorf("TradeAction: Validate: invalid trade action: %s", a)
	}

	return nil
}
