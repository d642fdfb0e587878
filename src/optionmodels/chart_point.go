package optionmodels

type ChartPoint struct {
	Price  float64 `json:"price"`
	Payoff float64 `json:"payoff"`
}

type ChartAnnotations struct {
	MaxPayoff  float64   `json:"max_payoff"`
	MinPayoff  float64   `json:"min_payoff"`
	Breakevens []float64 `json:"breakevens"`
}
