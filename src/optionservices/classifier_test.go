package optionservices

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/strategy-analyzer/src/optionmodels"
)

func leg(action optionmodels.TradeAction, optionType optionmodels.OptionType, strike, premium float64) optionmodels.OptionLeg {
	return optionmodels.OptionLeg{Action: action, OptionType: optionType, Strike: strike, Premium: premium, Contracts: 1}
}

func TestClassifyStrategy_SingleLeg(t *testing.T) {
	t.Run("long call", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{leg(optionmodels.Buy, optionmodels.Call, 100, 5)})

		assert.Equal(t, "Long Call", result.Name)
		assert.Equal(t, optionmodels.CategorySingleLeg, result.Category)
		assert.Equal(t, optionmodels.CompositionCalls, result.Composition)
		assert.Equal(t, optionmodels.DirectionLong, result.Direction)
		assert.False(t, result.IsCredit)
	})

	t.Run("naked put", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{leg(optionmodels.Sell, optionmodels.Put, 100, 3)})

		assert.Equal(t, "Naked Put", result.Name)
		assert.Equal(t, optionmodels.CategorySingleLeg, result.Category)
		assert.Equal(t, optionmodels.CompositionPuts, result.Composition)
		assert.Equal(t, optionmodels.DirectionShort, result.Direction)
		assert.True(t, result.IsCredit)
	})
}

func TestClassifyStrategy_VerticalSpreads(t *testing.T) {
	t.Run("bull call spread", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Buy, optionmodels.Call, 100, 5),
			leg(optionmodels.Sell, optionmodels.Call, 110, 2),
		})

		assert.Equal(t, "Bull Call Spread", result.Name)
		assert.Equal(t, optionmodels.CategoryVerticalSpread, result.Category)
		assert.Equal(t, optionmodels.DirectionLong, result.Direction)
	})

	t.Run("bear call spread", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Sell, optionmodels.Call, 100, 5),
			leg(optionmodels.Buy, optionmodels.Call, 110, 2),
		})

		assert.Equal(t, "Bear Call Spread", result.Name)
		assert.True(t, result.IsCredit)
	})

	t.Run("bull put spread", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Buy, optionmodels.Put, 90, 1),
			leg(optionmodels.Sell, optionmodels.Put, 100, 4),
		})

		assert.Equal(t, "Bull Put Spread", result.Name)
		assert.Equal(t, optionmodels.CompositionPuts, result.Composition)
	})

	t.Run("bear put spread", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Sell, optionmodels.Put, 90, 1),
			leg(optionmodels.Buy, optionmodels.Put, 100, 4),
		})

		assert.Equal(t, "Bear Put Spread", result.Name)
	})

	t.Run("leg order as entered does not matter", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Sell, optionmodels.Call, 110, 2),
			leg(optionmodels.Buy, optionmodels.Call, 100, 5),
		})

		assert.Equal(t, "Bull Call Spread", result.Name)
	})

	t.Run("same action both legs is custom", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Buy, optionmodels.Call, 100, 5),
			leg(optionmodels.Buy, optionmodels.Call, 110, 2),
		})

		assert.Equal(t, "Custom Strategy", result.Name)
		assert.Equal(t, optionmodels.CategoryCustom, result.Category)
	})
}

func TestClassifyStrategy_Combinations(t *testing.T) {
	t.Run("straddle", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Buy, optionmodels.Call, 100, 4),
			leg(optionmodels.Buy, optionmodels.Put, 100, 3),
		})

		assert.Equal(t, "Straddle", result.Name)
		assert.Equal(t, optionmodels.CategoryCombination, result.Category)
		assert.Equal(t, optionmodels.CompositionMixed, result.Composition)
	})

	t.Run("strangle", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Buy, optionmodels.Put, 95, 2),
			leg(optionmodels.Buy, optionmodels.Call, 105, 2),
		})

		assert.Equal(t, "Strangle", result.Name)
		assert.Equal(t, optionmodels.CategoryCombination, result.Category)
	})
}

func TestClassifyStrategy_Condors(t *testing.T) {
	t.Run("outer buys with inner sells is the reverse iron condor", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Buy, optionmodels.Put, 90, 1),
			leg(optionmodels.Sell, optionmodels.Put, 95, 2),
			leg(optionmodels.Sell, optionmodels.Call, 105, 2),
			leg(optionmodels.Buy, optionmodels.Call, 110, 1),
		})

		assert.Equal(t, "Reverse Iron Condor", result.Name)
		assert.Equal(t, optionmodels.CategoryCondor, result.Category)
		assert.True(t, result.IsReverse)
	})

	t.Run("any other four strike mixed shape is the iron condor", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Sell, optionmodels.Put, 90, 1),
			leg(optionmodels.Buy, optionmodels.Put, 95, 2),
			leg(optionmodels.Buy, optionmodels.Call, 105, 2),
			leg(optionmodels.Sell, optionmodels.Call, 110, 1),
		})

		assert.Equal(t, "Iron Condor", result.Name)
		assert.Equal(t, optionmodels.CategoryCondor, result.Category)
		assert.False(t, result.IsReverse)
	})

	t.Run("single type condor", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Sell, optionmodels.Call, 90, 6),
			leg(optionmodels.Buy, optionmodels.Call, 95, 4),
			leg(optionmodels.Buy, optionmodels.Call, 100, 3),
			leg(optionmodels.Sell, optionmodels.Call, 105, 2),
		})

		assert.Equal(t, "Call Condor", result.Name)
		assert.Equal(t, optionmodels.CategoryCondor, result.Category)
	})

	t.Run("single type reverse condor", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Buy, optionmodels.Put, 90, 1),
			leg(optionmodels.Sell, optionmodels.Put, 95, 2),
			leg(optionmodels.Sell, optionmodels.Put, 100, 3),
			leg(optionmodels.Buy, optionmodels.Put, 105, 4),
		})

		assert.Equal(t, "Reverse Put Condor", result.Name)
		assert.True(t, result.IsReverse)
	})
}

func TestClassifyStrategy_Butterflies(t *testing.T) {
	t.Run("long call butterfly", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Buy, optionmodels.Call, 90, 12),
			leg(optionmodels.Sell, optionmodels.Call, 100, 5),
			leg(optionmodels.Sell, optionmodels.Call, 100, 5),
			leg(optionmodels.Buy, optionmodels.Call, 110, 2),
		})

		assert.Equal(t, "Long Call Butterfly", result.Name)
		assert.Equal(t, optionmodels.CategoryButterfly, result.Category)
	})

	t.Run("short put butterfly", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Sell, optionmodels.Put, 90, 2),
			leg(optionmodels.Buy, optionmodels.Put, 100, 5),
			leg(optionmodels.Buy, optionmodels.Put, 100, 5),
			leg(optionmodels.Sell, optionmodels.Put, 110, 12),
		})

		assert.Equal(t, "Short Put Butterfly", result.Name)
		assert.Equal(t, optionmodels.CategoryButterfly, result.Category)
	})

	t.Run("middle strike must hold exactly two legs", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Buy, optionmodels.Call, 90, 12),
			leg(optionmodels.Sell, optionmodels.Call, 90, 5),
			leg(optionmodels.Sell, optionmodels.Call, 90, 5),
			leg(optionmodels.Buy, optionmodels.Call, 110, 2),
		})

		assert.Equal(t, "Custom Strategy", result.Name)
	})
}

func TestClassifyStrategy_Fallthrough(t *testing.T) {
	t.Run("zero legs", func(t *testing.T) {
		result := ClassifyStrategy(nil)

		assert.Equal(t, "N/A", result.Name)
		assert.Equal(t, optionmodels.CategoryCustom, result.Category)
	})

	t.Run("three legs", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Buy, optionmodels.Call, 100, 5),
			leg(optionmodels.Sell, optionmodels.Call, 105, 3),
			leg(optionmodels.Sell, optionmodels.Call, 110, 2),
		})

		assert.Equal(t, "Custom Strategy", result.Name)
		assert.Equal(t, optionmodels.CategoryCustom, result.Category)
	})

	t.Run("zero strike", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{leg(optionmodels.Buy, optionmodels.Call, 0, 5)})

		assert.Equal(t, "Custom Strategy", result.Name)
	})

	t.Run("negative strike", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Buy, optionmodels.Call, -100, 5),
			leg(optionmodels.Sell, optionmodels.Call, 110, 2),
		})

		assert.Equal(t, "Custom Strategy", result.Name)
	})

	t.Run("same type single strike pair", func(t *testing.T) {
		result := ClassifyStrategy([]optionmodels.OptionLeg{
			leg(optionmodels.Buy, optionmodels.Call, 100, 5),
			leg(optionmodels.Sell, optionmodels.Call, 100, 5),
		})

		assert.Equal(t, "Custom Strategy", result.Name)
	})
}
