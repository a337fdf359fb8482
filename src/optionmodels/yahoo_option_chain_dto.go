package optionmodels

import "fmt"

type YahooOptionChainResponseDTO struct {
	OptionChain YahooOptionChainDTO `json:"optionChain"`
}

type YahooOptionChainDTO struct {
	Result []YahooOptionChainResultDTO `json:"result"`
	Error  *YahooErrorDTO              `json:"error"`
}

type YahooErrorDTO struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type YahooOptionChainResultDTO struct {
	UnderlyingSymbol string                `json:"underlyingSymbol"`
	ExpirationDates  []int64               `json:"expirationDates"`
	Quote            YahooQuoteDTO         `json:"quote"`
	Options          []YahooOptionsSetDTO  `json:"options"`
}

type YahooQuoteDTO struct {
	Symbol             string  `json:"symbol"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
}

type YahooOptionsSetDTO struct {
	ExpirationDate int64                   `json:"expirationDate"`
	Calls          []YahooOptionTickDTO    `json:"calls"`
	Puts           []YahooOptionTickDTO    `json:"puts"`
}

type YahooOptionTickDTO struct {
	ContractSymbol    string   `json:"contractSymbol"`
	Strike            float64  `json:"strike"`
	Bid               *float64 `json:"bid,omitempty"`
	Ask               *float64 `json:"ask,omitempty"`
	LastPrice         *float64 `json:"lastPrice,omitempty"`
	Volume            *int     `json:"volume,omitempty"`
	OpenInterest      *int     `json:"openInterest,omitempty"`
	ImpliedVolatility *float64 `json:"impliedVolatility,omitempty"`
}

func (dto *YahooOptionChainResponseDTO) Result() (*YahooOptionChainResultDTO, error) {
	if dto.OptionChain.Error != nil {
		return nil, fmt.Errorf("YahooOptionChainResponseDTO: Result: %s: %s", dto.OptionChain.Error.Code, dto.OptionChain.Error.Description)
	}

	if len(dto.OptionChain.Result) == 0 {
		return nil, fmt.Errorf("YahooOptionChainResponseDTO: Result: empty result set")
	}

	return &dto.OptionChain.Result[0], nil
}
