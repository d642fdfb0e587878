package optionservices

import (
	"sort"

	"github.com/jiaming2012/strategy-analyzer/src/optionmodels"
)

// ClassifyStrategy matches a leg set against the known 1, 2 and 4 leg
// shapes. Any other count, malformed strikes, or an unmatched shape
// classifies as "Custom Strategy"; classification never errors.
func ClassifyStrategy(legs []optionmodels.OptionLeg) optionmodels.Classification {
	if len(legs) == 0 {
		return optionmodels.Classification{
			Name:        "N/A",
			Category:    optionmodels.CategoryCustom,
			Direction:   optionmodels.DirectionLong,
			Composition: optionmodels.CompositionMixed,
		}
	}

	composition := legComposition(legs)
	isCredit := optionmodels.NetPremium(legs) > 0

	direction := optionmodels.DirectionLong
	if isCredit {
		direction = optionmodels.DirectionShort
	}

	custom := optionmodels.Classification{
		Name:        "Custom Strategy",
		Category:    optionmodels.CategoryCustom,
		Direction:   direction,
		IsCredit:    isCredit,
		Composition: composition,
	}

	for _, leg := range legs {
		if leg.Strike <= 0 {
			return custom
		}
	}

	sorted := sortedByStrike(legs)
	strikes := distinctStrikes(sorted)

	result := custom

	switch len(legs) {
	case 1:
		leg := legs[0]
		if leg.Action == optionmodels.Buy {
			result.Name = "Long " + leg.OptionType.Display()
		} else {
			result.Name = "Naked " + leg.OptionType.Display()
		}
		result.Category = optionmodels.CategorySingleLeg

	case 2:
		lower, higher := sorted[0], sorted[1]

		if composition != optionmodels.CompositionMixed && len(strikes) == 2 {
			name := verticalSpreadName(lower, higher)
			if name == "" {
				return custom
			}

			result.Name = name
			result.Category = optionmodels.CategoryVerticalSpread
		} else if composition == optionmodels.CompositionMixed {
			switch len(strikes) {
			case 1:
				result.Name = "Straddle"
			case 2:
				result.Name = "Strangle"
			default:
				return custom
			}
			result.Category = optionmodels.CategoryCombination
		} else {
			return custom
		}

	case 4:
		if composition == optionmodels.CompositionMixed && len(strikes) == 4 {
			if isReverseCondorShape(sorted) {
				result.Name = "Reverse Iron Condor"
				result.IsReverse = true
			} else {
				result.Name = "Iron Condor"
			}
			result.Category = optionmodels.CategoryCondor
		} else if composition != optionmodels.CompositionMixed && len(strikes) == 3 {
			middleCount := 0
			for _, leg := range sorted {
				if leg.Strike == strikes[1] {
					middleCount++
				}
			}

			if middleCount != 2 {
				return custom
			}

			outerLow, outerHigh := sorted[0], sorted[3]
			typeName := outerLow.OptionType.Display()

			switch {
			case outerLow.Action == optionmodels.Buy && outerHigh.Action == optionmodels.Buy:
				result.Name = "Long " + typeName + " Butterfly"
			case outerLow.Action == optionmodels.Sell && outerHigh.Action == optionmodels.Sell:
				result.Name = "Short " + typeName + " Butterfly"
			default:
				result.Name = typeName + " Butterfly"
			}
			result.Category = optionmodels.CategoryButterfly
		} else if composition != optionmodels.CompositionMixed && len(strikes) == 4 {
			typeName := sorted[0].OptionType.Display()
			if isReverseCondorShape(sorted) {
				result.Name = "Reverse " + typeName + " Condor"
				result.IsReverse = true
			} else {
				result.Name = typeName + " Condor"
			}
			result.Category = optionmodels.CategoryCondor
		} else {
			return custom
		}

	default:
		return custom
	}

	return result
}

func legComposition(legs []optionmodels.OptionLeg) optionmodels.OptionComposition {
	allCalls, allPuts := true, true
	for _, leg := range legs {
		if leg.OptionType != optionmodels.Call {
			allCalls = false
		}
		if leg.OptionType != optionmodels.Put {
			allPuts = false
		}
	}

	if allCalls {
		return optionmodels.CompositionCalls
	}

	if allPuts {
		return optionmodels.CompositionPuts
	}

	return optionmodels.CompositionMixed
}

func sortedByStrike(legs []optionmodels.OptionLeg) []optionmodels.OptionLeg {
	sorted := make([]optionmodels.OptionLeg, len(legs))
	copy(sorted, legs)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Strike < sorted[j].Strike
	})

	return sorted
}

func distinctStrikes(sorted []optionmodels.OptionLeg) []float64 {
	var strikes []float64
	for _, leg := range sorted {
		if len(strikes) == 0 || strikes[len(strikes)-1] != leg.Strike {
			strikes = append(strikes, leg.Strike)
		}
	}

	return strikes
}

func verticalSpreadName(lower, higher optionmodels.OptionLeg) string {
	isCall := lower.OptionType == optionmodels.Call

	switch {
	case lower.Action == optionmodels.Buy && higher.Action == optionmodels.Sell:
		if isCall {
			return "Bull Call Spread"
		}
		return "Bull Put Spread"
	case lower.Action == optionmodels.Sell && higher.Action == optionmodels.Buy:
		if isCall {
			return "Bear Call Spread"
		}
		return "Bear Put Spread"
	default:
		return ""
	}
}

// isReverseCondorShape encodes the literal table: with legs sorted by
// strike, outer legs both bought AND inner legs both sold marks the
// reverse variant. The trigger is easy to invert; keep it in one place.
func isReverseCondorShape(sorted []optionmodels.OptionLeg) bool {
	outerBuy := sorted[0].Action == optionmodels.Buy && sorted[3].Action == optionmodels.Buy
	innerSell := sorted[1].Action == optionmodels.Sell && sorted[2].Action == optionmodels.Sell

	return outerBuy && innerSell
}
