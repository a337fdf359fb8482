package optionpricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
)

func TestGreeks(t *testing.T) {
	t.Run("reference call greeks", func(t *testing.T) {
		result, err := Greeks(referenceCall())
		assert.NoError(t, err)

		assert.InDelta(t, 10.4506, result.Price, 1e-3)
		assert.InDelta(t, 0.6368, result.Delta, 1e-4)
		assert.InDelta(t, 0.018762, result.Gamma, 1e-5)
		assert.InDelta(t, 37.5240, result.Vega, 1e-3)
		assert.InDelta(t, -6.4140, result.Theta, 1e-3)
		assert.InDelta(t, 53.2325, result.Rho, 1e-3)
	})

	t.Run("reference put greeks", func(t *testing.T) {
		c := referenceCall()
		c.OptionType = optionmodels.OptionTypePut

		result, err := Greeks(c)
		assert.NoError(t, err)

		assert.InDelta(t, 5.5735, result.Price, 1e-3)
		assert.InDelta(t, -0.3632, result.Delta, 1e-4)
		assert.InDelta(t, 0.018762, result.Gamma, 1e-5)
		assert.InDelta(t, 37.5240, result.Vega, 1e-3)
		assert.InDelta(t, -41.8905, result.Rho, 1e-3)
	})

	t.Run("greeks price matches Price", func(t *testing.T) {
		c := referenceCall()
		c.Strike = 117.5
		c.Volatility = 0.42

		price, err := Price(c)
		assert.NoError(t, err)

		result, err := Greeks(c)
		assert.NoError(t, err)
		assert.Equal(t, price, result.Price)
	})

	t.Run("gamma and vega non negative", func(t *testing.T) {
		for _, strike := range []float64{60, 100, 150} {
			for _, optionType := range []optionmodels.OptionType{optionmodels.OptionTypeCall, optionmodels.OptionTypePut} {
				c := referenceCall()
				c.Strike = strike
				c.OptionType = optionType

				result, err := Greeks(c)
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, result.Gamma, 0.0)
				assert.GreaterOrEqual(t, result.Vega, 0.0)
			}
		}
	})

	t.Run("expired in the money call", func(t *testing.T) {
		c := referenceCall()
		c.TimeToExpiry = 0
		c.Spot = 120

		result, err := Greeks(c)
		assert.NoError(t, err)
		assert.Equal(t, 20.0, result.Price)
		assert.Equal(t, 1.0, result.Delta)
		assert.Equal(t, 0.0, result.Gamma)
		assert.Equal(t, 0.0, result.Theta)
		assert.Equal(t, 0.0, result.Vega)
	})

	t.Run("expired out of the money call", func(t *testing.T) {
		c := referenceCall()
		c.TimeToExpiry = 0
		c.Spot = 80

		result, err := Greeks(c)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, result.Price)
		assert.Equal(t, 0.0, result.Delta)
	})

	t.Run("expired in the money put", func(t *testing.T) {
		c := referenceCall()
		c.TimeToExpiry = 0
		c.Spot = 80
		c.OptionType = optionmodels.OptionTypePut

		result, err := Greeks(c)
		assert.NoError(t, err)
		assert.Equal(t, 20.0, result.Price)
		assert.Equal(t, -1.0, result.Delta)
	})

	t.Run("zero volatility degenerates", func(t *testing.T) {
		c := referenceCall()
		c.Volatility = 0
		c.Spot = 105

		result, err := Greeks(c)
		assert.NoError(t, err)
		assert.Equal(t, 5.0, result.Price)
		assert.Equal(t, 1.0, result.Delta)
		assert.Equal(t, 0.0, result.Vega)
	})

	t.Run("display scaling", func(t *testing.T) {
		result, err := Greeks(referenceCall())
		assert.NoError(t, err)

		dto := result.ToDTO()
		assert.InDelta(t, result.Theta/365, dto.Theta, 1e-12)
		assert.InDelta(t, result.Vega/100, dto.Vega, 1e-12)
		assert.InDelta(t, result.Rho/100, dto.Rho, 1e-12)
		assert.Equal(t, result.Delta, dto.Delta)
		assert.Equal(t, result.Gamma, dto.Gamma)
	})
}
