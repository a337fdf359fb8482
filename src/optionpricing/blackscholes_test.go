package optionpricing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
)

func referenceCall() Contract {
	return Contract{
		Spot:         100,
		Strike:       100,
		TimeToExpiry: 1,
		RiskFreeRate: 0.05,
		Volatility:   0.2,
		OptionType:   optionmodels.OptionTypeCall,
	}
}

func TestPrice(t *testing.T) {
	t.Run("reference call value", func(t *testing.T) {
		price, err := Price(referenceCall())
		assert.NoError(t, err)
		assert.InDelta(t, 10.4506, price, 1e-3)
	})

	t.Run("reference put value via direct formula", func(t *testing.T) {
		c := referenceCall()
		c.OptionType = optionmodels.OptionTypePut

		price, err := Price(c)
		assert.NoError(t, err)
		assert.InDelta(t, 5.5735, price, 1e-3)
	})

	t.Run("put call parity", func(t *testing.T) {
		call := referenceCall()
		put := call
		put.OptionType = optionmodels.OptionTypePut

		callPrice, err := Price(call)
		assert.NoError(t, err)

		putPrice, err := Price(put)
		assert.NoError(t, err)

		forward := call.Spot*math.Exp(-call.DividendYield*call.TimeToExpiry) - call.Strike*math.Exp(-call.RiskFreeRate*call.TimeToExpiry)
		assert.InDelta(t, forward, callPrice-putPrice, 1e-9)
	})

	t.Run("put call parity with dividend yield", func(t *testing.T) {
		call := referenceCall()
		call.DividendYield = 0.03

		put := call
		put.OptionType = optionmodels.OptionTypePut

		callPrice, err := Price(call)
		assert.NoError(t, err)

		putPrice, err := Price(put)
		assert.NoError(t, err)

		forward := call.Spot*math.Exp(-call.DividendYield*call.TimeToExpiry) - call.Strike*math.Exp(-call.RiskFreeRate*call.TimeToExpiry)
		assert.InDelta(t, forward, callPrice-putPrice, 1e-9)
	})

	t.Run("no arbitrage bounds", func(t *testing.T) {
		strikes := []float64{50, 80, 100, 120, 200}
		vols := []float64{0.05, 0.2, 0.8, 2.5}

		for _, strike := range strikes {
			for _, vol := range vols {
				call := referenceCall()
				call.Strike = strike
				call.Volatility = vol

				callPrice, err := Price(call)
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, callPrice, 0.0)
				assert.LessOrEqual(t, callPrice, call.Spot)

				put := call
				put.OptionType = optionmodels.OptionTypePut

				putPrice, err := Price(put)
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, putPrice, 0.0)
				assert.LessOrEqual(t, putPrice, put.Strike*math.Exp(-put.RiskFreeRate*put.TimeToExpiry))
			}
		}
	})

	t.Run("expired contract prices at intrinsic", func(t *testing.T) {
		c := referenceCall()
		c.TimeToExpiry = 0
		c.Spot = 110

		price, err := Price(c)
		assert.NoError(t, err)
		assert.Equal(t, 10.0, price)
	})

	t.Run("zero volatility prices at intrinsic", func(t *testing.T) {
		c := referenceCall()
		c.Volatility = 0
		c.Spot = 90
		c.OptionType = optionmodels.OptionTypePut

		price, err := Price(c)
		assert.NoError(t, err)
		assert.Equal(t, 10.0, price)
	})

	t.Run("price converges to intrinsic as expiry approaches", func(t *testing.T) {
		c := referenceCall()
		c.Spot = 110
		c.TimeToExpiry = 1e-9

		price, err := Price(c)
		assert.NoError(t, err)
		assert.InDelta(t, c.IntrinsicValue(), price, 1e-6)
	})

	t.Run("non positive spot rejected", func(t *testing.T) {
		c := referenceCall()
		c.Spot = 0

		_, err := Price(c)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("non positive strike rejected", func(t *testing.T) {
		c := referenceCall()
		c.Strike = -5

		_, err := Price(c)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("negative volatility rejected", func(t *testing.T) {
		c := referenceCall()
		c.Volatility = -0.1

		_, err := Price(c)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("invalid option type rejected", func(t *testing.T) {
		c := referenceCall()
		c.OptionType = "straddle"

		_, err := Price(c)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}
