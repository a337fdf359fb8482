package optionmodels

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type GreeksSurfaceRequest struct {
	PriceOptionRequest
}

func (req *GreeksSurfaceRequest) ParseHTTPRequest(r *http.Request) error {
	jsonDecoder := json.NewDecoder(r.Body)
	if err := jsonDecoder.Decode(req); err != nil {
		return fmt.Errorf("GreeksSurfaceRequest: ParseHTTPRequest: decode: %w", err)
	}

	return nil
}

// GreeksSurfaceResponse holds greeks sampled over a range of spot prices,
// used by the dashboard to chart sensitivity curves.
type GreeksSurfaceResponse struct {
	SpotPrices []float64  `json:"spot_prices"`
	Delta      []float64  `json:"delta"`
	Gamma      []float64  `json:"gamma"`
	Theta      []float64  `json:"theta"`
	Vega       []float64  `json:"vega"`
	Strike     float64    `json:"strike"`
	OptionType OptionType `json:"option_type"`
}
