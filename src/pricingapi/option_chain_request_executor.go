package pricingapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jiaming2012/options-pricing/src/marketdata"
	"github.com/jiaming2012/options-pricing/src/optionmodels"
	"github.com/jiaming2012/options-pricing/src/utils"
)

type OptionChainRequestExecutor struct {
	YahooClient *marketdata.YahooClient
	RateService *marketdata.RiskFreeRateService
	ChainCache  *marketdata.Cache[optionmodels.OptionChainResponse]
}

func (s *OptionChainRequestExecutor) serve(ctx context.Context, req *optionmodels.OptionChainRequest, resultCh chan interface{}, errorCh chan error) {
	tracer := otel.GetTracerProvider().Tracer("pricingapi:chain")
	_, span := tracer.Start(ctx, "OptionChainRequestExecutor.serve")
	span.SetAttributes(attribute.String("ticker", req.Ticker.String()), attribute.String("expiration", req.ExpirationDate.String()))
	defer span.End()

	cacheKey := fmt.Sprintf("%s:%s:%d", req.Ticker, req.ExpirationDate, req.Limit)

	response, err := s.ChainCache.GetOrFetch(cacheKey, func() (optionmodels.OptionChainResponse, error) {
		chain, fetchErr := s.YahooClient.FetchChain(req.Ticker, req.ExpirationDate)
		if fetchErr != nil {
			return optionmodels.OptionChainResponse{}, fmt.Errorf("OptionChainRequestExecutor: serve: %w", fetchErr)
		}

		now := time.Now().UTC()
		timeToExpiry, ttlErr := utils.YearsUntilExpirationDate(chain.ExpirationDate.String(), now)
		if ttlErr != nil {
			return optionmodels.OptionChainResponse{}, fmt.Errorf("OptionChainRequestExecutor: serve: %w", ttlErr)
		}

		riskFreeRate, maturity := s.RateService.GetRateForExpiry(timeToExpiry)

		return marketdata.BuildChainResponse(chain, riskFreeRate, maturity, now, req.Limit), nil
	})

	if err != nil {
		errorCh <- err
		return
	}

	resultCh <- &response
}

func (s *OptionChainRequestExecutor) Serve(r *http.Request, request ApiRequest) (chan interface{}, chan error) {
	req := request.(*optionmodels.OptionChainRequest)
	resultCh := make(chan interface{})
	errorCh := make(chan error)

	go s.serve(r.Context(), req, resultCh, errorCh)

	return resultCh, errorCh
}

type ExpirationsRequestExecutor struct {
	YahooClient *marketdata.YahooClient
}

func (s *ExpirationsRequestExecutor) serve(req *optionmodels.ExpirationsRequest, resultCh chan interface{}, errorCh chan error) {
	expirations, err := s.YahooClient.FetchExpirations(req.Ticker, req.Limit)
	if err != nil {
		errorCh <- fmt.Errorf("ExpirationsRequestExecutor: serve: %w", err)
		return
	}

	dates := make([]string, 0, len(expirations))
	for _, expiration := range expirations {
		dates = append(dates, expiration.String())
	}

	resultCh <- &optionmodels.ExpirationsResponse{
		Ticker:      req.Ticker,
		Expirations: dates,
		Count:       len(dates),
	}
}

func (s *ExpirationsRequestExecutor) Serve(r *http.Request, request ApiRequest) (chan interface{}, chan error) {
	req := request.(*optionmodels.ExpirationsRequest)
	resultCh := make(chan interface{})
	errorCh := make(chan error)

	go s.serve(req, resultCh, errorCh)

	return resultCh, errorCh
}
