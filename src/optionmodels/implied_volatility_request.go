package optionmodels

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ImpliedVolatilityRequest struct {
	MarketPrice   float64    `json:"market_price"`
	Spot          float64    `json:"spot"`
	Strike        float64    `json:"strike"`
	TimeToExpiry  float64    `json:"time_to_expiry"`
	RiskFreeRate  float64    `json:"risk_free_rate"`
	DividendYield float64    `json:"dividend_yield"`
	OptionType    OptionType `json:"option_type"`
}

func (req *ImpliedVolatilityRequest) ParseHTTPRequest(r *http.Request) error {
	jsonDecoder := json.NewDecoder(r.Body)
	if err := jsonDecoder.Decode(req); err != nil {
		return fmt.Errorf("ImpliedVolatilityRequest: ParseHTTPRequest: decode: %w", err)
	}

	return nil
}

func (req *ImpliedVolatilityRequest) Validate(r *http.Request) error {
	if req.MarketPrice <= 0 {
		return fmt.Errorf("ImpliedVolatilityRequest: Validate: market_price must be positive, got %v", req.MarketPrice)
	}

	if req.Spot <= 0 {
		return fmt.Errorf("ImpliedVolatilityRequest: Validate: spot must be positive, got %v", req.Spot)
	}

	if req.Strike <= 0 {
		return fmt.Errorf("ImpliedVolatilityRequest: Validate: strike must be positive, got %v", req.Strike)
	}

	if req.TimeToExpiry <= 0 {
		return fmt.Errorf("ImpliedVolatilityRequest: Validate: time_to_expiry must be positive, got %v", req.TimeToExpiry)
	}

	if req.RiskFreeRate < 0 || req.RiskFreeRate > 1 {
		return fmt.Errorf("ImpliedVolatilityRequest: Validate: risk_free_rate must be between 0 and 1, got %v", req.RiskFreeRate)
	}

	if req.DividendYield < 0 {
		return fmt.Errorf("ImpliedVolatilityRequest: Validate: dividend_yield cannot be negative, got %v", req.DividendYield)
	}

	if err := req.OptionType.Validate(); err != nil {
		return fmt.Errorf("ImpliedVolatilityRequest: Validate: %w", err)
	}

	return nil
}

type ImpliedVolatilityResponse struct {
	ImpliedVolatility float64 `json:"implied_volatility"`
	MarketPrice       float64 `json:"market_price"`
	ModelPrice        float64 `json:"model_price"`
	Difference        float64 `json:"difference"`
	Iterations        int     `json:"iterations"`
}
