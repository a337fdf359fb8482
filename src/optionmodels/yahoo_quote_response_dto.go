package optionmodels

import "fmt"

type YahooQuoteResponseDTO struct {
	QuoteResponse YahooQuoteResultSetDTO `json:"quoteResponse"`
}

type YahooQuoteResultSetDTO struct {
	Result []YahooQuoteDTO `json:"result"`
	Error  *YahooErrorDTO  `json:"error"`
}

func (dto *YahooQuoteResponseDTO) FirstPrice() (float64, error) {
	if dto.QuoteResponse.Error != nil {
		return 0, fmt.Errorf("YahooQuoteResponseDTO: FirstPrice: %s: %s", dto.QuoteResponse.Error.Code, dto.QuoteResponse.Error.Description)
	}

	if len(dto.QuoteResponse.Result) == 0 {
		return 0, fmt.Errorf("YahooQuoteResponseDTO: FirstPrice: empty result set")
	}

	return dto.QuoteResponse.Result[0].RegularMarketPrice, nil
}
