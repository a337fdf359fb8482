package pricingapi

import (
	"fmt"
	"net/http"

	"github.com/jiaming2012/options-pricing/src/marketdata"
	"github.com/jiaming2012/options-pricing/src/optionmodels"
	"github.com/jiaming2012/options-pricing/src/optionpricing"
)

type StockInfoRequestExecutor struct {
	TwelveDataClient *marketdata.TwelveDataClient
	QuoteCache       *marketdata.Cache[*optionmodels.StockInfoResponse]
}

func (s *StockInfoRequestExecutor) serve(req *optionmodels.StockInfoRequest, resultCh chan interface{}, errorCh chan error) {
	info, err := s.QuoteCache.GetOrFetch(req.Ticker.String(), func() (*optionmodels.StockInfoResponse, error) {
		return s.TwelveDataClient.FetchStockInfo(req.Ticker)
	})

	if err != nil {
		errorCh <- fmt.Errorf("StockInfoRequestExecutor: serve: %w", err)
		return
	}

	resultCh <- info
}

func (s *StockInfoRequestExecutor) Serve(r *http.Request, request ApiRequest) (chan interface{}, chan error) {
	req := request.(*optionmodels.StockInfoRequest)
	resultCh := make(chan interface{})
	errorCh := make(chan error)

	go s.serve(req, resultCh, errorCh)

	return resultCh, errorCh
}

type HistoricalVolatilityRequestExecutor struct {
	TwelveDataClient *marketdata.TwelveDataClient
}

func (s *HistoricalVolatilityRequestExecutor) serve(req *optionmodels.HistoricalVolatilityRequest, resultCh chan interface{}, errorCh chan error) {
	closes, err := s.TwelveDataClient.FetchDailyCloses(req.Ticker, req.Period)
	if err != nil {
		errorCh <- fmt.Errorf("HistoricalVolatilityRequestExecutor: serve: %w", err)
		return
	}

	volatility, err := optionpricing.HistoricalVolatility(closes, req.Window)
	if err != nil {
		errorCh <- fmt.Errorf("HistoricalVolatilityRequestExecutor: serve: %w", err)
		return
	}

	resultCh <- &optionmodels.HistoricalVolatilityResponse{
		Ticker:     req.Ticker,
		Volatility: volatility,
		WindowDays: req.Window,
		Period:     req.Period,
	}
}

func (s *HistoricalVolatilityRequestExecutor) Serve(r *http.Request, request ApiRequest) (chan interface{}, chan error) {
	req := request.(*optionmodels.HistoricalVolatilityRequest)
	resultCh := make(chan interface{})
	errorCh := make(chan error)

	go s.serve(req, resultCh, errorCh)

	return resultCh, errorCh
}
