package optionmodels

import "time"

type OptionContract struct {
	Symbol       string         `json:"symbol"`
	Underlying   StockSymbol    `json:"underlying"`
	Strike       float64        `json:"strike"`
	OptionType   OptionType     `json:"option_type"`
	ContractSize int            `json:"contract_size"`
	Expiration   time.Time      `json:"expiration"`
	ExpirationDt ExpirationDate `json:"expiration_date"`
}
