package optionmodels

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
)

type OptionChainRequest struct {
	Ticker         StockSymbol    `schema:"-"`
	ExpirationDate ExpirationDate `schema:"expiration_date"`
	Limit          int            `schema:"limit"`
}

func (req *OptionChainRequest) ParseHTTPRequest(r *http.Request) error {
	req.Ticker = NewStockSymbol(mux.Vars(r)["ticker"])

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("OptionChainRequest: ParseHTTPRequest: parse form: %w", err)
	}

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	if err := decoder.Decode(req, r.Form); err != nil {
		return fmt.Errorf("OptionChainRequest: ParseHTTPRequest: decode query: %w", err)
	}

	if req.Limit == 0 {
		req.Limit = 50
	}

	return nil
}

func (req *OptionChainRequest) Validate(r *http.Request) error {
	if err := req.Ticker.Validate(); err != nil {
		return fmt.Errorf("OptionChainRequest: Validate: %w", err)
	}

	if req.ExpirationDate != "" {
		if err := req.ExpirationDate.Validate(); err != nil {
			return fmt.Errorf("OptionChainRequest: Validate: %w", err)
		}
	}

	if req.Limit < 1 || req.Limit > 100 {
		return fmt.Errorf("OptionChainRequest: Validate: limit must be between 1 and 100, got %d", req.Limit)
	}

	return nil
}

type ExpirationsRequest struct {
	Ticker StockSymbol `schema:"-"`
	Limit  int         `schema:"limit"`
}

func (req *ExpirationsRequest) ParseHTTPRequest(r *http.Request) error {
	req.Ticker = NewStockSymbol(mux.Vars(r)["ticker"])

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("ExpirationsRequest: ParseHTTPRequest: parse form: %w", err)
	}

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	if err := decoder.Decode(req, r.Form); err != nil {
		return fmt.Errorf("ExpirationsRequest: ParseHTTPRequest: decode query: %w", err)
	}

	if req.Limit == 0 {
		req.Limit = 20
	}

	return nil
}

func (req *ExpirationsRequest) Validate(r *http.Request) error {
	if err := req.Ticker.Validate(); err != nil {
		return fmt.Errorf("ExpirationsRequest: Validate: %w", err)
	}

	if req.Limit < 1 || req.Limit > 50 {
		return fmt.Errorf("ExpirationsRequest: Validate: limit must be between 1 and 50, got %d", req.Limit)
	}

	return nil
}

type ExpirationsResponse struct {
	Ticker      StockSymbol `json:"ticker"`
	Expirations []string    `json:"expirations"`
	Count       int         `json:"count"`
}
