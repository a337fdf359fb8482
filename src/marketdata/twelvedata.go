package marketdata

import (
	"fmt"
	"net/url"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
	"github.com/jiaming2012/options-pricing/src/utils"
)

const twelveDataBaseURL = "https://api.twelvedata.com"

// periodOutputSizes maps dashboard periods to the number of daily bars
// requested from Twelve Data.
var periodOutputSizes = map[string]int{
	"1d":  1,
	"5d":  5,
	"1mo": 30,
	"3mo": 90,
	"6mo": 180,
	"1y":  365,
	"2y":  730,
	"5y":  1825,
}

type TwelveDataClient struct {
	BaseURL string
	APIKey  string
}

func NewTwelveDataClient(apiKey string) *TwelveDataClient {
	return &TwelveDataClient{
		BaseURL: twelveDataBaseURL,
		APIKey:  apiKey,
	}
}

func (c *TwelveDataClient) FetchStockInfo(symbol optionmodels.StockSymbol) (*optionmodels.StockInfoResponse, error) {
	endpoint := fmt.Sprintf("%s/quote?symbol=%s&apikey=%s", c.BaseURL, url.QueryEscape(symbol.String()), c.APIKey)

	var dto optionmodels.TwelveDataQuoteDTO
	if err := utils.GetJSON(endpoint, nil, &dto); err != nil {
		return nil, fmt.Errorf("FetchStockInfo: failed to fetch quote for %s: %w", symbol, err)
	}

	info, err := dto.ToModel(symbol)
	if err != nil {
		return nil, fmt.Errorf("FetchStockInfo: %w", err)
	}

	return info, nil
}

func (c *TwelveDataClient) FetchCurrentPrice(symbol optionmodels.StockSymbol) (float64, error) {
	info, err := c.FetchStockInfo(symbol)
	if err != nil {
		return 0, fmt.Errorf("FetchCurrentPrice: %w", err)
	}

	return info.CurrentPrice, nil
}

// FetchDailyCloses returns closing prices in chronological order for
// the given dashboard period.
func (c *TwelveDataClient) FetchDailyCloses(symbol optionmodels.StockSymbol, period string) ([]float64, error) {
	outputSize, found := periodOutputSizes[period]
	if !found {
		return nil, fmt.Errorf("FetchDailyCloses: unknown period %s", period)
	}

	endpoint := fmt.Sprintf("%s/time_series?symbol=%s&interval=1day&outputsize=%d&apikey=%s", c.BaseURL, url.QueryEscape(symbol.String()), outputSize, c.APIKey)

	var dto optionmodels.TwelveDataTimeSeriesDTO
	if err := utils.GetJSON(endpoint, nil, &dto); err != nil {
		return nil, fmt.Errorf("FetchDailyCloses: failed to fetch time series for %s: %w", symbol, err)
	}

	closes, err := dto.Closes()
	if err != nil {
		return nil, fmt.Errorf("FetchDailyCloses: %w", err)
	}

	if len(closes) == 0 {
		return nil, fmt.Errorf("FetchDailyCloses: no historical data found for %s", symbol)
	}

	return closes, nil
}

func (c *TwelveDataClient) ValidateTicker(symbol optionmodels.StockSymbol) bool {
	if _, err := c.FetchStockInfo(symbol); err != nil {
		log.Debugf("ValidateTicker: %s: %v", symbol, err)
		return false
	}

	return true
}
