package optionservices

import (
	"fmt"

	"github.com/jiaming2012/strategy-analyzer/src/optionmodels"
)

// ExplainMaxProfitLoss returns static max-profit and max-loss condition
// text keyed by the classification name, parameterized by the relevant
// strike(s). Classifications with no template return empty text.
func ExplainMaxProfitLoss(classification optionmodels.Classification, legs []optionmodels.OptionLeg) (string, string) {
	sorted := sortedByStrike(legs)

	switch classification.Name {
	case "Long Call":
		strike := sorted[0].Strike
		return fmt.Sprintf("Profit is unlimited as the underlying rises above the %.2f strike.", strike),
			fmt.Sprintf("Loss is limited to the premium paid if the underlying settles at or below the %.2f strike.", strike)

	case "Long Put":
		strike := sorted[0].Strike
		return fmt.Sprintf("Profit grows as the underlying falls below the %.2f strike, up to the underlying reaching zero.", strike),
			fmt.Sprintf("Loss is limited to the premium paid if the underlying settles at or above the %.2f strike.", strike)

	case "Naked Call":
		strike := sorted[0].Strike
		return fmt.Sprintf("Profit is capped at the premium collected if the underlying settles at or below the %.2f strike.", strike),
			fmt.Sprintf("Loss is unlimited as the underlying rises above the %.2f strike.", strike)

	case "Naked Put":
		strike := sorted[0].Strike
		return fmt.Sprintf("Profit is capped at the premium collected if the underlying settles at or above the %.2f strike.", strike),
			fmt.Sprintf("Loss grows as the underlying falls below the %.2f strike, up to the underlying reaching zero.", strike)

	case "Bull Call Spread", "Bull Put Spread":
		lower, higher := sorted[0].Strike, sorted[len(sorted)-1].Strike
		return fmt.Sprintf("Maximum profit is reached when the underlying settles at or above the %.2f strike.", higher),
			fmt.Sprintf("Maximum loss is reached when the underlying settles at or below the %.2f strike.", lower)

	case "Bear Call Spread", "Bear Put Spread":
		lower, higher := sorted[0].Strike, sorted[len(sorted)-1].Strike
		return fmt.Sprintf("Maximum profit is reached when the underlying settles at or below the %.2f strike.", lower),
			fmt.Sprintf("Maximum loss is reached when the underlying settles at or above the %.2f strike.", higher)

	case "Straddle":
		strike := sorted[0].Strike
		return fmt.Sprintf("Profit grows the further the underlying settles from the %.2f strike in either direction.", strike),
			fmt.Sprintf("Maximum loss is reached when the underlying settles exactly at the %.2f strike.", strike)

	case "Strangle":
		lower, higher := sorted[0].Strike, sorted[len(sorted)-1].Strike
		return fmt.Sprintf("Profit grows the further the underlying settles below the %.2f strike or above the %.2f strike.", lower, higher),
			fmt.Sprintf("Maximum loss is reached when the underlying settles between the %.2f and %.2f strikes.", lower, higher)

	case "Iron Condor":
		inner1, inner2 := sorted[1].Strike, sorted[2].Strike
		return fmt.Sprintf("Maximum profit is reached when the underlying settles between the %.2f and %.2f strikes.", inner1, inner2),
			fmt.Sprintf("Maximum loss is reached when the underlying settles beyond either the %.2f or %.2f wing strike.", sorted[0].Strike, sorted[3].Strike)

	case "Reverse Iron Condor":
		inner1, inner2 := sorted[1].Strike, sorted[2].Strike
		return fmt.Sprintf("Maximum profit is reached when the underlying settles beyond either the %.2f or %.2f wing strike.", sorted[0].Strike, sorted[3].Strike),
			fmt.Sprintf("Maximum loss is reached when the underlying settles between the %.2f and %.2f strikes.", inner1, inner2)

	default:
		return "", ""
	}
}
