package optionmodels

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type PriceOptionRequest struct {
	Spot          float64    `json:"spot"`
	Strike        float64    `json:"strike"`
	TimeToExpiry  float64    `json:"time_to_expiry"`
	RiskFreeRate  float64    `json:"risk_free_rate"`
	Volatility    float64    `json:"volatility"`
	DividendYield float64    `json:"dividend_yield"`
	OptionType    OptionType `json:"option_type"`
}

func (req *PriceOptionRequest) ParseHTTPRequest(r *http.Request) error {
	jsonDecoder := json.NewDecoder(r.Body)
	if err := jsonDecoder.Decode(req); err != nil {
		return fmt.Errorf("PriceOptionRequest: ParseHTTPRequest: decode: %w", err)
	}

	return nil
}

func (req *PriceOptionRequest) Validate(r *http.Request) error {
	if req.Spot <= 0 {
		return fmt.Errorf("PriceOptionRequest: Validate: spot must be positive, got %v", req.Spot)
	}

	if req.Strike <= 0 {
		return fmt.Errorf("PriceOptionRequest: Validate: strike must be positive, got %v", req.Strike)
	}

	if req.TimeToExpiry < 0 {
		return fmt.Errorf("PriceOptionRequest: Validate: time_to_expiry cannot be negative, got %v", req.TimeToExpiry)
	}

	if req.TimeToExpiry > 10 {
		return fmt.Errorf("PriceOptionRequest: Validate: time_to_expiry too large (max 10 years), got %v", req.TimeToExpiry)
	}

	if req.RiskFreeRate < 0 || req.RiskFreeRate > 1 {
		return fmt.Errorf("PriceOptionRequest: Validate: risk_free_rate must be between 0 and 1, got %v", req.RiskFreeRate)
	}

	if req.Volatility < 0 {
		return fmt.Errorf("PriceOptionRequest: Validate: volatility cannot be negative, got %v", req.Volatility)
	}

	if req.Volatility > 5 {
		return fmt.Errorf("PriceOptionRequest: Validate: volatility too high (max 500%%), got %v", req.Volatility)
	}

	if req.DividendYield < 0 {
		return fmt.Errorf("PriceOptionRequest: Validate: dividend_yield cannot be negative, got %v", req.DividendYield)
	}

	if err := req.OptionType.Validate(); err != nil {
		return fmt.Errorf("PriceOptionRequest: Validate: %w", err)
	}

	return nil
}

type PriceOptionResponse struct {
	OptionPrice float64            `json:"option_price"`
	Greeks      GreeksDTO          `json:"greeks"`
	Inputs      PriceOptionRequest `json:"inputs"`
}
