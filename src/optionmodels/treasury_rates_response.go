package optionmodels

type TreasuryRatesResponse struct {
	Rates       map[string]float64 `json:"rates"`
	DefaultRate float64            `json:"default_rate"`
}
