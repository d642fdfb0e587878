package optionmodels

import (
	"strings"

	"github.com/jiaming2012/strategy-analyzer/src/utils"
)

// OptionLegDTO is the loosely typed leg shape received from forms, yaml
// files and query params. Numeric fields may arrive as strings, numbers or
// nothing at all; conversion never fails.
type OptionLegDTO struct {
	Action     string      `json:"action" yaml:"action"`
	OptionType string      `json:"option_type" yaml:"optionType"`
	Strike     interface{} `json:"strike" yaml:"strike"`
	Premium    interface{} `json:"premium" yaml:"premium"`
	Contracts  interface{} `json:"contracts" yaml:"contracts"`
}

func (dto OptionLegDTO) ToOptionLeg() OptionLeg {
	action := Buy
	if strings.EqualFold(strings.TrimSpace(dto.Action), string(Sell)) {
		action = Sell
	}

	optionType := Call
	if strings.EqualFold(strings.TrimSpace(dto.OptionType), string(Put)) {
		optionType = Put
	}

	contracts := utils.ParseIntOrDefault(dto.Contracts, 1)
	if contracts < 1 {
		contracts = 1
	}

	return OptionLeg{
		Action:     action,
		OptionType: optionType,
		Strike:     utils.ParseFloatOrDefault(dto.Strike, 0),
		Premium:    utils.ParseFloatOrDefault(dto.Premium, 0),
		Contracts:  contracts,
	}
}

func ConvertToOptionLegs(dtos []OptionLegDTO) []OptionLeg {
	legs := make([]OptionLeg, 0, len(dtos))
	for _, dto := range dtos {
		legs = append(legs, dto.ToOptionLeg())
	}

	return legs
}
