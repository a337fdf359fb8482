package marketdata

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
)

// PolygonOptionsClient lists option contract reference data from the
// Polygon.io REST API. It backs the chain endpoints when Yahoo serves
// no contracts for a symbol.
type PolygonOptionsClient struct {
	Client *polygon.Client
}

func NewPolygonOptionsClient(apiKey string) *PolygonOptionsClient {
	return &PolygonOptionsClient{
		Client: polygon.New(apiKey),
	}
}

func ptr[T any](v T) *T {
	return &v
}

// ListContracts fetches option contracts for an underlying, optionally
// filtered to a single expiration date.
func (c *PolygonOptionsClient) ListContracts(ctx context.Context, underlying optionmodels.StockSymbol, expiration optionmodels.ExpirationDate, limit int) ([]optionmodels.OptionContract, error) {
	params := &models.ListOptionsContractsParams{
		UnderlyingTickerEQ: ptr(underlying.String()),
		Limit:              ptr(limit),
		Order:              ptr(models.Asc),
	}

	if expiration != "" {
		expirationTime, err := expiration.ToTime()
		if err != nil {
			return nil, fmt.Errorf("ListContracts: %w", err)
		}

		params.ExpirationDateEQ = ptr(models.Date(expirationTime))
	}

	iter := c.Client.ListOptionsContracts(ctx, params)

	var contracts []optionmodels.OptionContract
	for iter.Next() {
		item := iter.Item()

		optionType := optionmodels.OptionType(item.ContractType)
		if err := optionType.Validate(); err != nil {
			log.Warnf("ListContracts: skipping contract %s: %v", item.Ticker, err)
			continue
		}

		expirationTime := time.Time(item.ExpirationDate)

		contracts = append(contracts, optionmodels.OptionContract{
			Symbol:       item.Ticker,
			Underlying:   optionmodels.StockSymbol(item.UnderlyingTicker),
			Strike:       item.StrikePrice,
			OptionType:   optionType,
			ContractSize: int(item.SharesPerContract),
			Expiration:   expirationTime,
			ExpirationDt: optionmodels.ExpirationDate(expirationTime.Format(optionmodels.ExpirationDateLayout)),
		})

		if limit > 0 && len(contracts) >= limit {
			break
		}
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("ListContracts: failed to list contracts for %s: %w", underlying, err)
	}

	return contracts, nil
}

// ListExpirations collects the distinct expiration dates of the
// contracts Polygon reports for an underlying.
func (c *PolygonOptionsClient) ListExpirations(ctx context.Context, underlying optionmodels.StockSymbol, limit int) ([]optionmodels.ExpirationDate, error) {
	contracts, err := c.ListContracts(ctx, underlying, "", 1000)
	if err != nil {
		return nil, fmt.Errorf("ListExpirations: %w", err)
	}

	seen := make(map[optionmodels.ExpirationDate]bool)
	var expirations []optionmodels.ExpirationDate

	for _, contract := range contracts {
		if seen[contract.ExpirationDt] {
			continue
		}

		seen[contract.ExpirationDt] = true
		expirations = append(expirations, contract.ExpirationDt)

		if limit > 0 && len(expirations) >= limit {
			break
		}
	}

	return expirations, nil
}
