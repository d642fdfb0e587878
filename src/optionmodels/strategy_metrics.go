package optionmodels

type ProbabilityEstimate string

// Probability of profit requires an implied-volatility model, which is
// outside this engine's scope; the marker makes that explicit instead of
// returning a fabricated number.
const ProbabilityNotComputed ProbabilityEstimate = "not_computed"

type StrategyMetrics struct {
	NetPremium           float64             `json:"net_premium"`
	MaxProfit            ProfitBound         `json:"max_profit"`
	MaxLoss              ProfitBound         `json:"max_loss"`
	Breakevens           []float64           `json:"breakevens"`
	Roi                  float64             `json:"roi"`
	ProbOfProfit         ProbabilityEstimate `json:"probability_of_profit"`
	Classification       Classification      `json:"classification"`
	MaxProfitExplanation string              `json:"max_profit_explanation"`
	MaxLossExplanation   string              `json:"max_loss_explanation"`
}
