package optionmodels

import (
	"fmt"
	"strconv"
)

// Twelve Data quotes all numeric fields as strings.
type TwelveDataQuoteDTO struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Open          string `json:"open"`
	High          string `json:"high"`
	Low           string `json:"low"`
	Close         string `json:"close"`
	Volume        string `json:"volume"`
	PreviousClose string `json:"previous_close"`

	// Populated on error responses
	Code    int    `json:"code,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

func (dto *TwelveDataQuoteDTO) ToModel(ticker StockSymbol) (*StockInfoResponse, error) {
	if dto.Status == "error" {
		return nil, fmt.Errorf("TwelveDataQuoteDTO: ToModel: api error %d: %s", dto.Code, dto.Message)
	}

	parse := func(field, raw string) (float64, error) {
		if raw == "" {
			return 0, nil
		}

		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("TwelveDataQuoteDTO: ToModel: failed to parse %s %q: %w", field, raw, err)
		}

		return v, nil
	}

	closePrice, err := parse("close", dto.Close)
	if err != nil {
		return nil, err
	}

	previousClose, err := parse("previous_close", dto.PreviousClose)
	if err != nil {
		return nil, err
	}

	openPrice, err := parse("open", dto.Open)
	if err != nil {
		return nil, err
	}

	high, err := parse("high", dto.High)
	if err != nil {
		return nil, err
	}

	low, err := parse("low", dto.Low)
	if err != nil {
		return nil, err
	}

	var volume int64
	if dto.Volume != "" {
		volume, err = strconv.ParseInt(dto.Volume, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TwelveDataQuoteDTO: ToModel: failed to parse volume %q: %w", dto.Volume, err)
		}
	}

	name := dto.Name
	if name == "" {
		name = ticker.String()
	}

	return &StockInfoResponse{
		Ticker:        ticker,
		CurrentPrice:  closePrice,
		PreviousClose: previousClose,
		Open:          openPrice,
		DayHigh:       high,
		DayLow:        low,
		Volume:        volume,
		CompanyName:   name,
	}, nil
}

type TwelveDataTimeSeriesDTO struct {
	Values []TwelveDataBarDTO `json:"values"`

	Code    int    `json:"code,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

type TwelveDataBarDTO struct {
	Datetime string `json:"datetime"`
	Open     string `json:"open"`
	High     string `json:"high"`
	Low      string `json:"low"`
	Close    string `json:"close"`
	Volume   string `json:"volume"`
}

// Closes returns closing prices in chronological order. Twelve Data
// serves bars newest first.
func (dto *TwelveDataTimeSeriesDTO) Closes() ([]float64, error) {
	if dto.Status == "error" {
		return nil, fmt.Errorf("TwelveDataTimeSeriesDTO: Closes: api error %d: %s", dto.Code, dto.Message)
	}

	closes := make([]float64, 0, len(dto.Values))
	for i := len(dto.Values) - 1; i >= 0; i-- {
		v, err := strconv.ParseFloat(dto.Values[i].Close, 64)
		if err != nil {
			return nil, fmt.Errorf("TwelveDataTimeSeriesDTO: Closes: failed to parse close %q: %w", dto.Values[i].Close, err)
		}

		closes = append(closes, v)
	}

	return closes, nil
}
