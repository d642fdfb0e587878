package optionmodels

type StrategyCategory string

const (
	CategorySingleLeg      StrategyCategory = "Single Leg"
	CategoryVerticalSpread StrategyCategory = "Vertical Spread"
	CategoryCombination    StrategyCategory = "Combination"
	CategoryCondor         StrategyCategory = "Condor"
	CategoryButterfly      StrategyCategory = "Butterfly"
	CategoryCustom         StrategyCategory = "Custom"
)

type StrategyDirection string

const (
	DirectionLong  StrategyDirection = "long"
	DirectionShort StrategyDirection = "short"
)

type OptionComposition string

const (
	CompositionCalls OptionComposition = "calls"
	CompositionPuts  OptionComposition = "puts"
	CompositionMixed OptionComposition = "mixed"
)

// Classification describes the named pattern a leg set matches, e.g.
// {"Iron Condor", Condor, short, credit}. Unmatched shapes classify as
// "Custom Strategy" rather than erroring.
type Classification struct {
	Name        string            `json:"name"`
	Category    StrategyCategory  `json:"category"`
	Direction   StrategyDirection `json:"direction"`
	IsCredit    bool              `json:"is_credit"`
	IsReverse   bool              `json:"is_reverse"`
	Composition OptionComposition `json:"composition"`
}
