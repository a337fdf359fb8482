package pricingapi

import (
	"fmt"
	"net/http"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
	"github.com/jiaming2012/options-pricing/src/optionpricing"
)

type ImpliedVolatilityRequestExecutor struct{}

func (s *ImpliedVolatilityRequestExecutor) serve(req *optionmodels.ImpliedVolatilityRequest, resultCh chan interface{}, errorCh chan error) {
	query := optionpricing.ImpliedVolatilityQuery{
		Contract: optionpricing.Contract{
			Spot:          req.Spot,
			Strike:        req.Strike,
			TimeToExpiry:  req.TimeToExpiry,
			RiskFreeRate:  req.RiskFreeRate,
			DividendYield: req.DividendYield,
			OptionType:    req.OptionType,
		},
		MarketPrice: req.MarketPrice,
	}

	result, err := optionpricing.ImpliedVolatility(query)
	if err != nil {
		errorCh <- fmt.Errorf("ImpliedVolatilityRequestExecutor: serve: %w", err)
		return
	}

	resultCh <- &optionmodels.ImpliedVolatilityResponse{
		ImpliedVolatility: result.Volatility,
		MarketPrice:       req.MarketPrice,
		ModelPrice:        result.ModelPrice,
		Difference:        result.ModelPrice - req.MarketPrice,
		Iterations:        result.Iterations,
	}
}

func (s *ImpliedVolatilityRequestExecutor) Serve(r *http.Request, request ApiRequest) (chan interface{}, chan error) {
	req := request.(*optionmodels.ImpliedVolatilityRequest)
	resultCh := make(chan interface{})
	errorCh := make(chan error)

	go s.serve(req, resultCh, errorCh)

	return resultCh, errorCh
}
