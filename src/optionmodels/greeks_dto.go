package optionmodels

// GreeksDTO carries display-scaled sensitivities: theta is quoted per
// calendar day, vega per 1% change in volatility, and rho per 1% change
// in the risk-free rate.
type GreeksDTO struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}
