package marketdata

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		c := NewCache[float64](time.Minute)
		c.Set("AAPL", 187.5)

		v, found := c.Get("AAPL")
		assert.True(t, found)
		assert.Equal(t, 187.5, v)
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		c := NewCache[float64](time.Minute)

		_, found := c.Get("MSFT")
		assert.False(t, found)
	})

	t.Run("entries expire", func(t *testing.T) {
		c := NewCache[float64](time.Millisecond)
		c.Set("AAPL", 187.5)

		time.Sleep(5 * time.Millisecond)

		_, found := c.Get("AAPL")
		assert.False(t, found)
	})

	t.Run("get or fetch caches the result", func(t *testing.T) {
		c := NewCache[int](time.Minute)

		calls := 0
		fetch := func() (int, error) {
			calls++
			return 42, nil
		}

		v, err := c.GetOrFetch("key", fetch)
		assert.NoError(t, err)
		assert.Equal(t, 42, v)

		v, err = c.GetOrFetch("key", fetch)
		assert.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.Equal(t, 1, calls)
	})

	t.Run("get or fetch propagates errors without caching", func(t *testing.T) {
		c := NewCache[int](time.Minute)

		_, err := c.GetOrFetch("key", func() (int, error) {
			return 0, fmt.Errorf("upstream down")
		})
		assert.Error(t, err)

		_, found := c.Get("key")
		assert.False(t, found)
	})

	t.Run("purge clears all entries", func(t *testing.T) {
		c := NewCache[float64](time.Minute)
		c.Set("AAPL", 187.5)
		c.Purge()

		_, found := c.Get("AAPL")
		assert.False(t, found)
	})
}
