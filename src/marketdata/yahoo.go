package marketdata

import (
	"fmt"
	"net/url"
	"time"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
	"github.com/jiaming2012/options-pricing/src/utils"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooClient fetches option chains and index quotes from the public
// Yahoo Finance v7 endpoints.
type YahooClient struct {
	BaseURL string
}

func NewYahooClient() *YahooClient {
	return &YahooClient{
		BaseURL: yahooBaseURL,
	}
}

type YahooChain struct {
	Underlying       optionmodels.StockSymbol
	SpotPrice        float64
	ExpirationDate   optionmodels.ExpirationDate
	ExpirationDates  []optionmodels.ExpirationDate
	Calls            []optionmodels.YahooOptionTickDTO
	Puts             []optionmodels.YahooOptionTickDTO
}

func (c *YahooClient) fetchChainDTO(symbol optionmodels.StockSymbol, expiration *time.Time) (*optionmodels.YahooOptionChainResultDTO, error) {
	endpoint := fmt.Sprintf("%s/v7/finance/options/%s", c.BaseURL, url.PathEscape(symbol.String()))
	if expiration != nil {
		endpoint = fmt.Sprintf("%s?date=%d", endpoint, expiration.Unix())
	}

	var dto optionmodels.YahooOptionChainResponseDTO
	if err := utils.GetJSON(endpoint, nil, &dto); err != nil {
		return nil, fmt.Errorf("fetchChainDTO: failed to fetch option chain for %s: %w", symbol, err)
	}

	result, err := dto.Result()
	if err != nil {
		return nil, fmt.Errorf("fetchChainDTO: %w", err)
	}

	return result, nil
}

// FetchExpirations lists available expiration dates, at most limit.
func (c *YahooClient) FetchExpirations(symbol optionmodels.StockSymbol, limit int) ([]optionmodels.ExpirationDate, error) {
	result, err := c.fetchChainDTO(symbol, nil)
	if err != nil {
		return nil, fmt.Errorf("FetchExpirations: %w", err)
	}

	expirations := make([]optionmodels.ExpirationDate, 0, len(result.ExpirationDates))
	for _, epoch := range result.ExpirationDates {
		if limit > 0 && len(expirations) >= limit {
			break
		}

		date := time.Unix(epoch, 0).UTC().Format(optionmodels.ExpirationDateLayout)
		expirations = append(expirations, optionmodels.ExpirationDate(date))
	}

	return expirations, nil
}

// FetchChain returns the raw chain for one expiration. A zero-value
// expiration selects the nearest one Yahoo serves.
func (c *YahooClient) FetchChain(symbol optionmodels.StockSymbol, expiration optionmodels.ExpirationDate) (*YahooChain, error) {
	var expirationTime *time.Time
	if expiration != "" {
		t, err := expiration.ToTime()
		if err != nil {
			return nil, fmt.Errorf("FetchChain: %w", err)
		}

		expirationTime = &t
	}

	result, err := c.fetchChainDTO(symbol, expirationTime)
	if err != nil {
		return nil, fmt.Errorf("FetchChain: %w", err)
	}

	if len(result.Options) == 0 {
		return nil, fmt.Errorf("FetchChain: no option data found for %s", symbol)
	}

	optionsSet := result.Options[0]
	resolvedExpiration := optionmodels.ExpirationDate(time.Unix(optionsSet.ExpirationDate, 0).UTC().Format(optionmodels.ExpirationDateLayout))

	availableExpirations := make([]optionmodels.ExpirationDate, 0, len(result.ExpirationDates))
	for _, epoch := range result.ExpirationDates {
		date := time.Unix(epoch, 0).UTC().Format(optionmodels.ExpirationDateLayout)
		availableExpirations = append(availableExpirations, optionmodels.ExpirationDate(date))
	}

	return &YahooChain{
		Underlying:      symbol,
		SpotPrice:       result.Quote.RegularMarketPrice,
		ExpirationDate:  resolvedExpiration,
		ExpirationDates: availableExpirations,
		Calls:           optionsSet.Calls,
		Puts:            optionsSet.Puts,
	}, nil
}

// FetchIndexQuote returns the last price of an index symbol such as
// ^TNX. Treasury yield indexes quote in percentage points.
func (c *YahooClient) FetchIndexQuote(symbol optionmodels.StockSymbol) (float64, error) {
	endpoint := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", c.BaseURL, url.QueryEscape(symbol.String()))

	var dto optionmodels.YahooQuoteResponseDTO
	if err := utils.GetJSON(endpoint, nil, &dto); err != nil {
		return 0, fmt.Errorf("FetchIndexQuote: failed to fetch quote for %s: %w", symbol, err)
	}

	price, err := dto.FirstPrice()
	if err != nil {
		return 0, fmt.Errorf("FetchIndexQuote: %w", err)
	}

	return price, nil
}
