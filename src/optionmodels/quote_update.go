package optionmodels

import "time"

// ContractQuote is one repriced contract inside a quote update.
type ContractQuote struct {
	Strike         float64    `json:"strike"`
	ExpirationDate string     `json:"expiration_date"`
	OptionType     OptionType `json:"option_type"`
	TimeToExpiry   float64    `json:"time_to_expiry"`
	RiskFreeRate   float64    `json:"risk_free_rate"`
	Volatility     float64    `json:"volatility"`
	ModelPrice     float64    `json:"model_price"`
	Greeks         GreeksDTO  `json:"greeks"`
}

// QuoteUpdate is the payload broadcast to websocket subscribers each
// refresh cycle.
type QuoteUpdate struct {
	Symbol    StockSymbol     `json:"symbol"`
	SpotPrice float64         `json:"spot_price"`
	Timestamp time.Time       `json:"timestamp"`
	Contracts []ContractQuote `json:"contracts"`
}
