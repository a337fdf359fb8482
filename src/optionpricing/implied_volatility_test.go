package optionpricing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
)

func TestImpliedVolatility(t *testing.T) {
	t.Run("round trip recovers volatility", func(t *testing.T) {
		for _, sigma := range []float64{0.08, 0.2, 0.55, 1.3} {
			c := referenceCall()
			c.Volatility = sigma

			price, err := Price(c)
			assert.NoError(t, err)

			result, err := ImpliedVolatility(ImpliedVolatilityQuery{
				Contract:    c.WithVolatility(0),
				MarketPrice: price,
			})
			assert.NoError(t, err)
			assert.InDelta(t, sigma, result.Volatility, 1e-4)
			assert.InDelta(t, price, result.ModelPrice, priceTolerance)
		}
	})

	t.Run("round trip for puts", func(t *testing.T) {
		c := referenceCall()
		c.OptionType = optionmodels.OptionTypePut
		c.Volatility = 0.35

		price, err := Price(c)
		assert.NoError(t, err)

		result, err := ImpliedVolatility(ImpliedVolatilityQuery{
			Contract:    c.WithVolatility(0),
			MarketPrice: price,
		})
		assert.NoError(t, err)
		assert.InDelta(t, 0.35, result.Volatility, 1e-4)
	})

	t.Run("deep in the money call converges", func(t *testing.T) {
		c := Contract{
			Spot:         100,
			Strike:       10,
			TimeToExpiry: 0.25,
			RiskFreeRate: 0.05,
			Volatility:   0.4,
			OptionType:   optionmodels.OptionTypeCall,
		}

		price, err := Price(c)
		assert.NoError(t, err)

		result, err := ImpliedVolatility(ImpliedVolatilityQuery{
			Contract:    c.WithVolatility(0),
			MarketPrice: price,
		})
		assert.NoError(t, err)
		assert.InDelta(t, price, result.ModelPrice, priceTolerance)
	})

	t.Run("market price below intrinsic fails", func(t *testing.T) {
		c := Contract{
			Spot:         100,
			Strike:       50,
			TimeToExpiry: 0.5,
			RiskFreeRate: 0.05,
			OptionType:   optionmodels.OptionTypeCall,
		}

		_, err := ImpliedVolatility(ImpliedVolatilityQuery{
			Contract:    c,
			MarketPrice: 45,
		})
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrConvergenceFailure))

		var convErr *ConvergenceError
		assert.True(t, errors.As(err, &convErr))
		assert.Contains(t, convErr.Reason, "below intrinsic")
	})

	t.Run("market price above bracket maximum fails", func(t *testing.T) {
		_, err := ImpliedVolatility(ImpliedVolatilityQuery{
			Contract:    referenceCall().WithVolatility(0),
			MarketPrice: 99.9,
		})
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrConvergenceFailure))
	})

	t.Run("expired contract fails", func(t *testing.T) {
		c := referenceCall().WithVolatility(0)
		c.TimeToExpiry = 0

		_, err := ImpliedVolatility(ImpliedVolatilityQuery{
			Contract:    c,
			MarketPrice: 5,
		})
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrConvergenceFailure))
	})

	t.Run("non positive market price rejected", func(t *testing.T) {
		_, err := ImpliedVolatility(ImpliedVolatilityQuery{
			Contract:    referenceCall().WithVolatility(0),
			MarketPrice: 0,
		})
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("invalid contract rejected", func(t *testing.T) {
		c := referenceCall().WithVolatility(0)
		c.Spot = -1

		_, err := ImpliedVolatility(ImpliedVolatilityQuery{
			Contract:    c,
			MarketPrice: 5,
		})
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}
