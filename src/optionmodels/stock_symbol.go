package optionmodels

import (
	"fmt"
	"strings"
	"unicode"
)

type StockSymbol string

func (s StockSymbol) String() string {
	return string(s)
}

func NewStockSymbol(raw string) StockSymbol {
	return StockSymbol(strings.ToUpper(strings.TrimSpace(raw)))
}

func (s StockSymbol) Validate() error {
	if s == "" {
		return fmt.Errorf("StockSymbol: Validate: symbol is empty")
	}

	if len(s) > 10 {
		return fmt.Errorf("StockSymbol: Validate: symbol %s too long", s)
	}

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '^' {
			continue
		}

		return fmt.Errorf("StockSymbol: Validate: symbol %s contains invalid character %q", s, r)
	}

	return nil
}
