package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYearsUntil(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("one year out", func(t *testing.T) {
		exp := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

		years, err := YearsUntil(exp, now)
		assert.NoError(t, err)
		assert.InDelta(t, 1.0, years, 1e-9)
	})

	t.Run("past expiration rejected", func(t *testing.T) {
		exp := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

		_, err := YearsUntil(exp, now)
		assert.Error(t, err)
	})

	t.Run("date string pinned to end of day", func(t *testing.T) {
		years, err := YearsUntilExpirationDate("2025-06-01", now)
		assert.NoError(t, err)
		assert.Greater(t, years, 0.0)
		assert.Less(t, years, 1.0/365.0)
	})

	t.Run("invalid date string rejected", func(t *testing.T) {
		_, err := YearsUntilExpirationDate("06/01/2025", now)
		assert.Error(t, err)
	})
}

func TestMinMaxTime(t *testing.T) {
	a := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, a, GetMinTime(a, b))
	assert.Equal(t, b, GetMaxTime(a, b))
}
