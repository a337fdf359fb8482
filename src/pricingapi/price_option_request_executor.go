package pricingapi

import (
	"fmt"
	"net/http"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
	"github.com/jiaming2012/options-pricing/src/optionpricing"
)

type PriceOptionRequestExecutor struct{}

func contractFromRequest(req *optionmodels.PriceOptionRequest) optionpricing.Contract {
	return optionpricing.Contract{
		Spot:          req.Spot,
		Strike:        req.Strike,
		TimeToExpiry:  req.TimeToExpiry,
		RiskFreeRate:  req.RiskFreeRate,
		Volatility:    req.Volatility,
		DividendYield: req.DividendYield,
		OptionType:    req.OptionType,
	}
}

func (s *PriceOptionRequestExecutor) serve(req *optionmodels.PriceOptionRequest, resultCh chan interface{}, errorCh chan error) {
	contract := contractFromRequest(req)

	price, err := optionpricing.Price(contract)
	if err != nil {
		errorCh <- fmt.Errorf("PriceOptionRequestExecutor: serve: %w", err)
		return
	}

	greeks, err := optionpricing.Greeks(contract)
	if err != nil {
		errorCh <- fmt.Errorf("PriceOptionRequestExecutor: serve: %w", err)
		return
	}

	resultCh <- &optionmodels.PriceOptionResponse{
		OptionPrice: price,
		Greeks:      greeks.ToDTO(),
		Inputs:      *req,
	}
}

func (s *PriceOptionRequestExecutor) Serve(r *http.Request, request ApiRequest) (chan interface{}, chan error) {
	req := request.(*optionmodels.PriceOptionRequest)
	resultCh := make(chan interface{})
	errorCh := make(chan error)

	go s.serve(req, resultCh, errorCh)

	return resultCh, errorCh
}
