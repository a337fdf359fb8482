package optionmodels

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type StockInfoRequest struct {
	Ticker StockSymbol `json:"ticker"`
}

func (req *StockInfoRequest) ParseHTTPRequest(r *http.Request) error {
	jsonDecoder := json.NewDecoder(r.Body)
	if err := jsonDecoder.Decode(req); err != nil {
		return fmt.Errorf("StockInfoRequest: ParseHTTPRequest: decode: %w", err)
	}

	req.Ticker = NewStockSymbol(string(req.Ticker))

	return nil
}

func (req *StockInfoRequest) Validate(r *http.Request) error {
	if err := req.Ticker.Validate(); err != nil {
		return fmt.Errorf("StockInfoRequest: Validate: %w", err)
	}

	return nil
}

type StockInfoResponse struct {
	Ticker        StockSymbol `json:"ticker"`
	CurrentPrice  float64     `json:"current_price"`
	PreviousClose float64     `json:"previous_close"`
	Open          float64     `json:"open"`
	DayHigh       float64     `json:"day_high"`
	DayLow        float64     `json:"day_low"`
	Volume        int64       `json:"volume"`
	CompanyName   string      `json:"company_name"`
}
