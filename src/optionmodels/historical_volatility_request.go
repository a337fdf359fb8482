package optionmodels

import (
	"encoding/json"
	"fmt"
	"net/http"
)

var validPeriods = map[string]bool{
	"1d": true, "5d": true, "1mo": true, "3mo": true,
	"6mo": true, "1y": true, "2y": true, "5y": true,
}

type HistoricalVolatilityRequest struct {
	Ticker StockSymbol `json:"ticker"`
	Period string      `json:"period"`
	Window int         `json:"window"`
}

func (req *HistoricalVolatilityRequest) ParseHTTPRequest(r *http.Request) error {
	jsonDecoder := json.NewDecoder(r.Body)
	if err := jsonDecoder.Decode(req); err != nil {
		return fmt.Errorf("HistoricalVolatilityRequest: ParseHTTPRequest: decode: %w", err)
	}

	req.Ticker = NewStockSymbol(string(req.Ticker))

	if req.Period == "" {
		req.Period = "1y"
	}

	if req.Window == 0 {
		req.Window = 30
	}

	return nil
}

func (req *HistoricalVolatilityRequest) Validate(r *http.Request) error {
	if err := req.Ticker.Validate(); err != nil {
		return fmt.Errorf("HistoricalVolatilityRequest: Validate: %w", err)
	}

	if !validPeriods[req.Period] {
		return fmt.Errorf("HistoricalVolatilityRequest: Validate: invalid period: %s", req.Period)
	}

	if req.Window < 2 || req.Window > 252 {
		return fmt.Errorf("HistoricalVolatilityRequest: Validate: window must be between 2 and 252, got %d", req.Window)
	}

	return nil
}

type HistoricalVolatilityResponse struct {
	Ticker     StockSymbol `json:"ticker"`
	Volatility float64     `json:"volatility"`
	WindowDays int         `json:"window_days"`
	Period     string      `json:"period"`
}
