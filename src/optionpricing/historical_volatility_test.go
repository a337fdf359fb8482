package optionpricing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoricalVolatility(t *testing.T) {
	t.Run("known series", func(t *testing.T) {
		closes := []float64{100, 110, 99, 104.5}

		v, err := HistoricalVolatility(closes, 30)
		assert.NoError(t, err)
		assert.InDelta(t, 1.6823, v, 1e-3)
	})

	t.Run("constant growth has zero volatility", func(t *testing.T) {
		closes := []float64{100, 101, 102.01, 103.0301}

		v, err := HistoricalVolatility(closes, 30)
		assert.NoError(t, err)
		assert.InDelta(t, 0, v, 1e-9)
	})

	t.Run("single return yields zero", func(t *testing.T) {
		v, err := HistoricalVolatility([]float64{100, 105}, 30)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, v)
	})

	t.Run("window truncates older returns", func(t *testing.T) {
		// The first, wildly different return falls outside the window.
		closes := []float64{10, 1000, 1010, 1020.1, 1030.301}

		v, err := HistoricalVolatility(closes, 3)
		assert.NoError(t, err)
		assert.InDelta(t, 0, v, 1e-9)
	})

	t.Run("too few closes rejected", func(t *testing.T) {
		_, err := HistoricalVolatility([]float64{100}, 30)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("non positive close rejected", func(t *testing.T) {
		_, err := HistoricalVolatility([]float64{100, 0, 101}, 30)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("window below two rejected", func(t *testing.T) {
		_, err := HistoricalVolatility([]float64{100, 101, 102}, 1)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}
