package optionmodels

type OptionChainEntry struct {
	Symbol            string     `json:"symbol"`
	Underlying        string     `json:"underlying"`
	Strike            float64    `json:"strike"`
	OptionType        OptionType `json:"option_type"`
	ExpirationDate    string     `json:"expiration_date"`
	SharesPerContract int        `json:"shares_per_contract"`
	Bid               *float64   `json:"bid,omitempty"`
	Ask               *float64   `json:"ask,omitempty"`
	LastPrice         *float64   `json:"last_price,omitempty"`
	Volume            *int       `json:"volume,omitempty"`
	OpenInterest      *int       `json:"open_interest,omitempty"`
	ImpliedVolatility *float64   `json:"implied_volatility,omitempty"`
	ModelPrice        *float64   `json:"model_price,omitempty"`
	Difference        *float64   `json:"difference,omitempty"`
	Greeks            *GreeksDTO `json:"greeks,omitempty"`
}

type OptionChainResponse struct {
	Underlying           StockSymbol        `json:"underlying"`
	ExpirationDate       string             `json:"expiration_date"`
	AvailableExpirations []string           `json:"available_expirations"`
	Calls                []OptionChainEntry `json:"calls"`
	Puts                 []OptionChainEntry `json:"puts"`
	SpotPrice            float64            `json:"spot_price"`
	RiskFreeRate         float64            `json:"risk_free_rate"`
	TreasuryMaturity     string             `json:"treasury_maturity"`
}
