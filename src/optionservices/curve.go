package optionservices

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/strategy-analyzer/src/optionmodels"
)

// Offsets inserted around each strike so the rendered piecewise-linear
// curve reproduces the payoff kink exactly at the strike.
var strikeRefinementOffsets = []float64{-0.5, -0.1, 0, 0.1, 0.5}

// BuildCurve samples the strategy payoff over [startPrice, endPrice] at the
// given step, refining around strikes that sit within one step of a grid
// point. Every final point is evaluated through StrategyPayoff; nothing is
// interpolated from neighboring points.
func BuildCurve(legs []optionmodels.OptionLeg, startPrice, endPrice, step float64) []optionmodels.ChartPoint {
	if step <= 0 || endPrice < startPrice {
		return []optionmodels.ChartPoint{}
	}

	priceSet := make(map[float64]struct{})

	n := int(math.Floor((endPrice-startPrice)/step + 1e-9))
	grid := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		price := startPrice + float64(i)*step
		grid = append(grid, price)
		priceSet[price] = struct{}{}
	}

	for _, leg := range legs {
		near := false
		for _, price := range grid {
			if math.Abs(price-leg.Strike) <= step {
				near = true
				break
			}
		}

		if !near {
			continue
		}

		for _, offset := range strikeRefinementOffsets {
			refined := leg.Strike + offset
			if refined < startPrice {
				refined = startPrice
			}
			if refined > endPrice {
				refined = endPrice
			}

			priceSet[refined] = struct{}{}
		}
	}

	prices := make([]float64, 0, len(priceSet))
	for price := range priceSet {
		prices = append(prices, price)
	}
	sort.Float64s(prices)

	points := make([]optionmodels.ChartPoint, 0, len(prices))
	for _, price := range prices {
		points = append(points, optionmodels.ChartPoint{
			Price:  price,
			Payoff: optionmodels.StrategyPayoff(legs, price),
		})
	}

	return points
}

// ExtractAnnotations recomputes the max/min payoff lines and the breakeven
// crossings over the chart's denser point set, with the same sign-change
// interpolation the metrics engine uses.
func ExtractAnnotations(points []optionmodels.ChartPoint) optionmodels.ChartAnnotations {
	if len(points) == 0 {
		return optionmodels.ChartAnnotations{Breakevens: []float64{}}
	}

	prices := make([]float64, len(points))
	payoffs := make([]float64, len(points))
	for i, point := range points {
		prices[i] = point.Price
		payoffs[i] = point.Payoff
	}

	maxPayoff, _ := stats.Max(payoffs)
	minPayoff, _ := stats.Min(payoffs)

	return optionmodels.ChartAnnotations{
		MaxPayoff:  maxPayoff,
		MinPayoff:  minPayoff,
		Breakevens: findBreakevens(prices, payoffs),
	}
}
