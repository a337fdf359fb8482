package quotestream

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeTempWatchlist(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "watchlist.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	return path
}

func TestLoadWatchlist(t *testing.T) {
	t.Run("parses a valid watchlist", func(t *testing.T) {
		path := writeTempWatchlist(t, `
refreshIntervalSeconds: 15
symbols:
  - symbol: AAPL
    expirationsInDays: [30, 60]
    strikes: [180, 190, 200]
    optionTypes: [call, put]
    dividendYield: 0.005
  - symbol: SPY
    expirationsInDays: [7]
    strikes: [550]
    optionTypes: [put]
`)

		config, err := LoadWatchlist(path)
		assert.NoError(t, err)
		assert.Equal(t, 15*time.Second, config.RefreshInterval())
		assert.Len(t, config.Symbols, 2)

		item, err := config.GetSymbol("aapl")
		assert.NoError(t, err)
		assert.Equal(t, 0.005, item.DividendYield)
	})

	t.Run("missing interval falls back to default", func(t *testing.T) {
		path := writeTempWatchlist(t, `
symbols:
  - symbol: SPY
    expirationsInDays: [7]
    strikes: [550]
    optionTypes: [call]
`)

		config, err := LoadWatchlist(path)
		assert.NoError(t, err)
		assert.Equal(t, 30*time.Second, config.RefreshInterval())
	})

	t.Run("rejects an empty watchlist", func(t *testing.T) {
		path := writeTempWatchlist(t, "symbols: []\n")

		_, err := LoadWatchlist(path)
		assert.Error(t, err)
	})

	t.Run("rejects an invalid option type", func(t *testing.T) {
		path := writeTempWatchlist(t, `
symbols:
  - symbol: SPY
    expirationsInDays: [7]
    strikes: [550]
    optionTypes: [straddle]
`)

		_, err := LoadWatchlist(path)
		assert.Error(t, err)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := LoadWatchlist(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
