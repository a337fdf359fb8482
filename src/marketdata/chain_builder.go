package marketdata

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
	"github.com/jiaming2012/options-pricing/src/optionpricing"
	"github.com/jiaming2012/options-pricing/src/utils"
)

// fallbackImpliedVol is assumed when a quote carries no market implied
// volatility, matching the dashboard's default slider value.
const fallbackImpliedVol = 0.25

// BuildChainResponse enriches raw chain quotes with model prices,
// price differences and greeks, all computed at the quote's market
// implied volatility.
func BuildChainResponse(chain *YahooChain, riskFreeRate float64, treasuryMaturity string, now time.Time, limit int) optionmodels.OptionChainResponse {
	timeToExpiry, err := utils.YearsUntilExpirationDate(chain.ExpirationDate.String(), now)
	if err != nil {
		log.Warnf("BuildChainResponse: %v: treating chain as expiring now", err)
		timeToExpiry = 0
	}

	response := optionmodels.OptionChainResponse{
		Underlying:       chain.Underlying,
		ExpirationDate:   chain.ExpirationDate.String(),
		SpotPrice:        chain.SpotPrice,
		RiskFreeRate:     riskFreeRate,
		TreasuryMaturity: treasuryMaturity,
	}

	for _, expiration := range chain.ExpirationDates {
		response.AvailableExpirations = append(response.AvailableExpirations, expiration.String())
	}

	response.Calls = buildEntries(chain.Calls, chain, optionmodels.OptionTypeCall, timeToExpiry, riskFreeRate, limit)
	response.Puts = buildEntries(chain.Puts, chain, optionmodels.OptionTypePut, timeToExpiry, riskFreeRate, limit)

	return response
}

func buildEntries(ticks []optionmodels.YahooOptionTickDTO, chain *YahooChain, optionType optionmodels.OptionType, timeToExpiry float64, riskFreeRate float64, limit int) []optionmodels.OptionChainEntry {
	entries := make([]optionmodels.OptionChainEntry, 0, len(ticks))

	for _, tick := range ticks {
		if limit > 0 && len(entries) >= limit {
			break
		}

		entry := optionmodels.OptionChainEntry{
			Symbol:            tick.ContractSymbol,
			Underlying:        chain.Underlying.String(),
			Strike:            tick.Strike,
			OptionType:        optionType,
			ExpirationDate:    chain.ExpirationDate.String(),
			SharesPerContract: 100,
			Bid:               tick.Bid,
			Ask:               tick.Ask,
			LastPrice:         tick.LastPrice,
			Volume:            tick.Volume,
			OpenInterest:      tick.OpenInterest,
			ImpliedVolatility: tick.ImpliedVolatility,
		}

		sigma := fallbackImpliedVol
		if tick.ImpliedVolatility != nil && *tick.ImpliedVolatility > 0 {
			sigma = *tick.ImpliedVolatility
		}

		contract := optionpricing.Contract{
			Spot:         chain.SpotPrice,
			Strike:       tick.Strike,
			TimeToExpiry: timeToExpiry,
			RiskFreeRate: riskFreeRate,
			Volatility:   sigma,
			OptionType:   optionType,
		}

		greeks, err := optionpricing.Greeks(contract)
		if err != nil {
			log.Warnf("buildEntries: skipping model values for %s: %v", tick.ContractSymbol, err)
			entries = append(entries, entry)
			continue
		}

		modelPrice := greeks.Price
		entry.ModelPrice = &modelPrice

		if tick.LastPrice != nil {
			difference := *tick.LastPrice - modelPrice
			entry.Difference = &difference
		}

		dto := greeks.ToDTO()
		entry.Greeks = &dto

		entries = append(entries, entry)
	}

	return entries
}
