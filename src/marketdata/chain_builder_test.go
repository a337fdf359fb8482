package marketdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func testChain() *YahooChain {
	return &YahooChain{
		Underlying:      "AAPL",
		SpotPrice:       100,
		ExpirationDate:  "2030-06-21",
		ExpirationDates: []optionmodels.ExpirationDate{"2030-06-21", "2030-07-19"},
		Calls: []optionmodels.YahooOptionTickDTO{
			{
				ContractSymbol:    "AAPL300621C00100000",
				Strike:            100,
				Bid:               floatPtr(9.8),
				Ask:               floatPtr(10.2),
				LastPrice:         floatPtr(10.0),
				Volume:            intPtr(120),
				OpenInterest:      intPtr(540),
				ImpliedVolatility: floatPtr(0.2),
			},
			{
				ContractSymbol: "AAPL300621C00120000",
				Strike:         120,
			},
		},
		Puts: []optionmodels.YahooOptionTickDTO{
			{
				ContractSymbol:    "AAPL300621P00100000",
				Strike:            100,
				LastPrice:         floatPtr(5.4),
				ImpliedVolatility: floatPtr(0.2),
			},
		},
	}
}

func TestBuildChainResponse(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("enriches quotes with model values", func(t *testing.T) {
		response := BuildChainResponse(testChain(), 0.05, "5Y", now, 50)

		assert.Equal(t, optionmodels.StockSymbol("AAPL"), response.Underlying)
		assert.Equal(t, "2030-06-21", response.ExpirationDate)
		assert.Equal(t, []string{"2030-06-21", "2030-07-19"}, response.AvailableExpirations)
		assert.Equal(t, 0.05, response.RiskFreeRate)
		assert.Equal(t, "5Y", response.TreasuryMaturity)
		assert.Len(t, response.Calls, 2)
		assert.Len(t, response.Puts, 1)

		atm := response.Calls[0]
		assert.NotNil(t, atm.ModelPrice)
		assert.Greater(t, *atm.ModelPrice, 0.0)
		assert.NotNil(t, atm.Greeks)
		assert.Greater(t, atm.Greeks.Delta, 0.0)
		assert.NotNil(t, atm.Difference)
		assert.InDelta(t, *atm.LastPrice-*atm.ModelPrice, *atm.Difference, 1e-12)
	})

	t.Run("missing market iv uses fallback", func(t *testing.T) {
		response := BuildChainResponse(testChain(), 0.05, "5Y", now, 50)

		otm := response.Calls[1]
		assert.Nil(t, otm.ImpliedVolatility)
		assert.NotNil(t, otm.ModelPrice)
		// No last price means no difference to report
		assert.Nil(t, otm.Difference)
	})

	t.Run("limit caps entries per side", func(t *testing.T) {
		response := BuildChainResponse(testChain(), 0.05, "5Y", now, 1)

		assert.Len(t, response.Calls, 1)
		assert.Len(t, response.Puts, 1)
	})

	t.Run("put delta negative", func(t *testing.T) {
		response := BuildChainResponse(testChain(), 0.05, "5Y", now, 50)

		put := response.Puts[0]
		assert.NotNil(t, put.Greeks)
		assert.Less(t, put.Greeks.Delta, 0.0)
	})
}
