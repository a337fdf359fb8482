package quotestream

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
)

// LoadWatchlist reads and validates the streaming watchlist config.
func LoadWatchlist(path string) (*optionmodels.WatchlistConfigYAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadWatchlist: failed to read %s: %w", path, err)
	}

	var config optionmodels.WatchlistConfigYAML
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("LoadWatchlist: failed to parse %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("LoadWatchlist: %w", err)
	}

	return &config, nil
}
