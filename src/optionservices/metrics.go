package optionservices

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/strategy-analyzer/src/optionmodels"
)

const defaultSampleCount = 500

// ComputeMetrics derives the full risk/reward profile of a leg set:
// net premium, sampled max profit/loss, breakevens, ROI and the attached
// classification. Malformed legs must be coerced before this point (see
// OptionLegDTO); the computation itself is total and never errors.
func ComputeMetrics(legs []optionmodels.OptionLeg, assetPrice *float64, marginRequired *float64) optionmodels.StrategyMetrics {
	classification := ClassifyStrategy(legs)

	if len(legs) == 0 {
		return optionmodels.StrategyMetrics{
			MaxProfit:      optionmodels.BoundedProfit(0),
			MaxLoss:        optionmodels.BoundedProfit(0),
			Breakevens:     []float64{},
			ProbOfProfit:   optionmodels.ProbabilityNotComputed,
			Classification: classification,
		}
	}

	netPremium := optionmodels.NetPremium(legs)

	start, end := SamplingRange(legs)

	prices := make([]float64, 0, defaultSampleCount+len(legs))
	step := (end - start) / float64(defaultSampleCount-1)
	for i := 0; i < defaultSampleCount; i++ {
		prices = append(prices, start+float64(i)*step)
	}

	// The payoff kinks exactly at each strike; sampling the strikes
	// themselves keeps the extrema and breakevens exact instead of landing
	// between two grid points.
	for _, leg := range legs {
		if leg.Strike > start && leg.Strike < end {
			prices = append(prices, leg.Strike)
		}
	}

	sort.Float64s(prices)
	prices = dedupeSorted(prices)

	payoffs := make([]float64, len(prices))
	for i, price := range prices {
		payoffs[i] = optionmodels.StrategyPayoff(legs, price)
	}

	maxSampled, _ := stats.Max(payoffs)
	minSampled, _ := stats.Min(payoffs)

	maxProfit := optionmodels.BoundedProfit(maxSampled)
	maxLoss := optionmodels.BoundedProfit(math.Max(0, -minSampled))

	// Finite sampling cannot see an unbounded tail. Net long call exposure
	// means payoff grows without limit as the underlying rises; net short
	// call exposure means the loss does. Put tails stay finite because the
	// underlying stops at zero.
	if exposure := netCallExposure(legs); exposure > 0 {
		maxProfit = optionmodels.UnboundedProfit()
	} else if exposure < 0 {
		maxLoss = optionmodels.UnboundedProfit()
	}

	// Single put legs have exact closed forms that sampling only
	// approximates, since price zero sits outside the sampling range.
	if len(legs) == 1 {
		leg := legs[0]
		if leg.OptionType == optionmodels.Put {
			exact := math.Max(0, leg.Strike-leg.Premium) * float64(leg.Contracts)
			if leg.Action == optionmodels.Buy {
				maxProfit = optionmodels.BoundedProfit(exact)
			} else {
				maxLoss = optionmodels.BoundedProfit(exact)
			}
		}
	}

	roi := 0.0
	if marginRequired != nil && *marginRequired != 0 {
		roi = netPremium / *marginRequired * 100
	}

	maxProfitText, maxLossText := ExplainMaxProfitLoss(classification, legs)

	return optionmodels.StrategyMetrics{
		NetPremium:           round2(netPremium),
		MaxProfit:            maxProfit,
		MaxLoss:              maxLoss,
		Breakevens:           findBreakevens(prices, payoffs),
		Roi:                  round2(roi),
		ProbOfProfit:         optionmodels.ProbabilityNotComputed,
		Classification:       classification,
		MaxProfitExplanation: maxProfitText,
		MaxLossExplanation:   maxLossText,
	}
}

// SamplingRange spans half the lowest strike to one and a half times the
// highest, over legs with a positive strike. A leg set with no positive
// strikes falls back to [10, 100].
func SamplingRange(legs []optionmodels.OptionLeg) (float64, float64) {
	minStrike, maxStrike := 0.0, 0.0
	found := false

	for _, leg := range legs {
		if leg.Strike <= 0 {
			continue
		}

		if !found || leg.Strike < minStrike {
			minStrike = leg.Strike
		}
		if !found || leg.Strike > maxStrike {
			maxStrike = leg.Strike
		}
		found = true
	}

	if !found {
		return 10, 100
	}

	return math.Max(0, minStrike*0.5), maxStrike * 1.5
}

func netCallExposure(legs []optionmodels.OptionLeg) int {
	exposure := 0
	for _, leg := range legs {
		if leg.OptionType != optionmodels.Call {
			continue
		}

		if leg.Action == optionmodels.Buy {
			exposure += leg.Contracts
		} else {
			exposure -= leg.Contracts
		}
	}

	return exposure
}

// findBreakevens scans consecutive samples for sign changes, zero
// inclusive, and linearly interpolates each crossing price. A flat
// zero-payoff stretch only breaks even at its edges, so interior
// zero/zero pairs are skipped. Results are rounded to cents,
// non-negative, deduplicated and ascending.
func findBreakevens(prices, payoffs []float64) []float64 {
	var crossings []float64

	for i := 0; i+1 < len(prices); i++ {
		y1, y2 := payoffs[i], payoffs[i+1]

		if y1 == 0 && y2 == 0 {
			continue
		}

		if y1 == 0 {
			crossings = append(crossings, prices[i])
			continue
		}

		if y2 == 0 {
			crossings = append(crossings, prices[i+1])
			continue
		}

		if y1*y2 < 0 {
			t := y1 / (y1 - y2)
			crossings = append(crossings, prices[i]+t*(prices[i+1]-prices[i]))
		}
	}

	seen := make(map[float64]struct{})
	breakevens := []float64{}

	for _, crossing := range crossings {
		rounded := round2(crossing)
		if rounded < 0 {
			continue
		}

		if _, ok := seen[rounded]; ok {
			continue
		}

		seen[rounded] = struct{}{}
		breakevens = append(breakevens, rounded)
	}

	sort.Float64s(breakevens)

	return breakevens
}

func dedupeSorted(values []float64) []float64 {
	deduped := values[:0]
	for _, v := range values {
		if len(deduped) == 0 || deduped[len(deduped)-1] != v {
			deduped = append(deduped, v)
		}
	}

	return deduped
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
