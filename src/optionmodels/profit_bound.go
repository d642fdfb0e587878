package optionmodels

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

const unboundedLabel = "unbounded"

// ProfitBound is either a finite profit/loss amount or the unbounded
// sentinel. Consumers must branch on IsUnbounded rather than relying on a
// magic numeric value.
type ProfitBound struct {
	value     float64
	unbounded bool
}

func BoundedProfit(value float64) ProfitBound {
	return ProfitBound{value: value}
}

func UnboundedProfit() ProfitBound {
	return ProfitBound{unbounded: true}
}

func (p ProfitBound) IsUnbounded() bool {
	return p.unbounded
}

// Value returns the finite amount and true, or (0, false) when unbounded.
func (p ProfitBound) Value() (float64, bool) {
	if p.unbounded {
		return 0, false
	}

	return p.value, true
}

func (p ProfitBound) String() string {
	if p.unbounded {
		return unboundedLabel
	}

	return strconv.FormatFloat(p.value, 'f', 2, 64)
}

// MarshalJSON emits either the string "unbounded" or the amount rounded to
// cents. Full precision is kept internally; rounding happens at output only.
func (p ProfitBound) MarshalJSON() ([]byte, error) {
	if p.unbounded {
		return json.Marshal(unboundedLabel)
	}

	return json.Marshal(math.Round(p.value*100) / 100)
}

func (p *ProfitBound) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		if label != unboundedLabel {
			return fmt.Errorf("ProfitBound: UnmarshalJSON: unexpected label: %s", label)
		}

		*p = UnboundedProfit()
		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("ProfitBound: UnmarshalJSON: %w", err)
	}

	*p = BoundedProfit(value)
	return nil
}
