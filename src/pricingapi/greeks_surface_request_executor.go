package pricingapi

import (
	"fmt"
	"net/http"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
	"github.com/jiaming2012/options-pricing/src/optionpricing"
)

const (
	surfaceSpotLowerFrac = 0.5
	surfaceSpotUpperFrac = 1.5
	surfaceSamplePoints  = 51
)

type GreeksSurfaceRequestExecutor struct{}

// serve samples greeks across a band of spot prices around the
// requested spot, holding every other contract parameter fixed.
func (s *GreeksSurfaceRequestExecutor) serve(req *optionmodels.GreeksSurfaceRequest, resultCh chan interface{}, errorCh chan error) {
	base := contractFromRequest(&req.PriceOptionRequest)

	lower := req.Spot * surfaceSpotLowerFrac
	upper := req.Spot * surfaceSpotUpperFrac
	step := (upper - lower) / float64(surfaceSamplePoints-1)

	response := &optionmodels.GreeksSurfaceResponse{
		SpotPrices: make([]float64, 0, surfaceSamplePoints),
		Delta:      make([]float64, 0, surfaceSamplePoints),
		Gamma:      make([]float64, 0, surfaceSamplePoints),
		Theta:      make([]float64, 0, surfaceSamplePoints),
		Vega:       make([]float64, 0, surfaceSamplePoints),
		Strike:     req.Strike,
		OptionType: req.OptionType,
	}

	for i := 0; i < surfaceSamplePoints; i++ {
		contract := base
		contract.Spot = lower + float64(i)*step

		greeks, err := optionpricing.Greeks(contract)
		if err != nil {
			errorCh <- fmt.Errorf("GreeksSurfaceRequestExecutor: serve: spot %.4f: %w", contract.Spot, err)
			return
		}

		dto := greeks.ToDTO()
		response.SpotPrices = append(response.SpotPrices, contract.Spot)
		response.Delta = append(response.Delta, dto.Delta)
		response.Gamma = append(response.Gamma, dto.Gamma)
		response.Theta = append(response.Theta, dto.Theta)
		response.Vega = append(response.Vega, dto.Vega)
	}

	resultCh <- response
}

func (s *GreeksSurfaceRequestExecutor) Serve(r *http.Request, request ApiRequest) (chan interface{}, chan error) {
	req := request.(*optionmodels.GreeksSurfaceRequest)
	resultCh := make(chan interface{})
	errorCh := make(chan error)

	go s.serve(req, resultCh, errorCh)

	return resultCh, errorCh
}
