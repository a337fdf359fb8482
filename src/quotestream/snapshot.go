package quotestream

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
	"github.com/jiaming2012/options-pricing/src/optionpricing"
)

const hoursPerYear = 24 * 365.0

// BuildQuoteUpdate reprices every contract a watch item spans at the
// given spot and volatility. Contracts that fail to price are logged
// and skipped rather than failing the whole update.
func BuildQuoteUpdate(item optionmodels.WatchItemYAML, spot float64, volatility float64, rateForExpiry func(timeToExpiryYears float64) float64, now time.Time) optionmodels.QuoteUpdate {
	update := optionmodels.QuoteUpdate{
		Symbol:    optionmodels.NewStockSymbol(item.Symbol),
		SpotPrice: spot,
		Timestamp: now,
	}

	for _, days := range item.ExpirationsInDays {
		expiration := now.AddDate(0, 0, days)
		timeToExpiry := expiration.Sub(now).Hours() / hoursPerYear
		riskFreeRate := rateForExpiry(timeToExpiry)

		for _, strike := range item.Strikes {
			for _, optionType := range item.OptionTypes {
				contract := optionpricing.Contract{
					Spot:          spot,
					Strike:        strike,
					TimeToExpiry:  timeToExpiry,
					RiskFreeRate:  riskFreeRate,
					Volatility:    volatility,
					DividendYield: item.DividendYield,
					OptionType:    optionmodels.OptionType(optionType),
				}

				price, err := optionpricing.Price(contract)
				if err != nil {
					log.Warnf("BuildQuoteUpdate: skipping %s %v %.2f: %v", item.Symbol, optionType, strike, err)
					continue
				}

				greeks, err := optionpricing.Greeks(contract)
				if err != nil {
					log.Warnf("BuildQuoteUpdate: skipping %s %v %.2f: %v", item.Symbol, optionType, strike, err)
					continue
				}

				update.Contracts = append(update.Contracts, optionmodels.ContractQuote{
					Strike:         strike,
					ExpirationDate: expiration.Format(optionmodels.ExpirationDateLayout),
					OptionType:     optionmodels.OptionType(optionType),
					TimeToExpiry:   timeToExpiry,
					RiskFreeRate:   riskFreeRate,
					Volatility:     volatility,
					ModelPrice:     price,
					Greeks:         greeks.ToDTO(),
				})
			}
		}
	}

	return update
}
