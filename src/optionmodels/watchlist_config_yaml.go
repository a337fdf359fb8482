package optionmodels

import (
	"fmt"
	"strings"
	"time"
)

type WatchlistConfigYAML struct {
	RefreshIntervalSeconds int             `yaml:"refreshIntervalSeconds"`
	Symbols                []WatchItemYAML `yaml:"symbols"`
}

type WatchItemYAML struct {
	Symbol            string    `yaml:"symbol"`
	ExpirationsInDays []int     `yaml:"expirationsInDays"`
	Strikes           []float64 `yaml:"strikes"`
	OptionTypes       []string  `yaml:"optionTypes"`
	DividendYield     float64   `yaml:"dividendYield,omitempty"`
}

func (c *WatchlistConfigYAML) RefreshInterval() time.Duration {
	if c.RefreshIntervalSeconds <= 0 {
		return 30 * time.Second
	}

	return time.Duration(c.RefreshIntervalSeconds) * time.Second
}

func (c *WatchlistConfigYAML) GetSymbol(symbol StockSymbol) (*WatchItemYAML, error) {
	sym1 := strings.ToLower(string(symbol))
	for i, item := range c.Symbols {
		sym2 := strings.ToLower(item.Symbol)
		if sym1 == sym2 {
			return &c.Symbols[i], nil
		}
	}

	return nil, fmt.Errorf("WatchlistConfigYAML: symbol %s not found", symbol)
}

func (c *WatchlistConfigYAML) Validate() error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("WatchlistConfigYAML: Validate: no symbols configured")
	}

	for _, item := range c.Symbols {
		if err := NewStockSymbol(item.Symbol).Validate(); err != nil {
			return fmt.Errorf("WatchlistConfigYAML: Validate: %w", err)
		}

		for _, optionType := range item.OptionTypes {
			if err := OptionType(optionType).Validate(); err != nil {
				return fmt.Errorf("WatchlistConfigYAML: Validate: symbol %s: %w", item.Symbol, err)
			}
		}
	}

	return nil
}
