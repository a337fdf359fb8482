package pricingapi

import (
	"net/http"

	"github.com/jiaming2012/options-pricing/src/marketdata"
	"github.com/jiaming2012/options-pricing/src/optionmodels"
)

type TreasuryRatesRequestExecutor struct {
	RateService *marketdata.RiskFreeRateService
}

func (s *TreasuryRatesRequestExecutor) serve(resultCh chan interface{}, errorCh chan error) {
	resultCh <- &optionmodels.TreasuryRatesResponse{
		Rates:       s.RateService.GetAllRates(),
		DefaultRate: s.RateService.FallbackRate(),
	}
}

func (s *TreasuryRatesRequestExecutor) Serve(r *http.Request, request ApiRequest) (chan interface{}, chan error) {
	resultCh := make(chan interface{})
	errorCh := make(chan error)

	go s.serve(resultCh, errorCh)

	return resultCh, errorCh
}
