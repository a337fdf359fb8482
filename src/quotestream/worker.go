package quotestream

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-pricing/src/marketdata"
	"github.com/jiaming2012/options-pricing/src/optionmodels"
	"github.com/jiaming2012/options-pricing/src/optionpricing"
)

const (
	defaultStreamVolatility = 0.25
	volatilityWindowDays    = 30
	volatilityPeriod        = "1y"
)

// QuoteFetcher is the slice of the Twelve Data client the worker needs.
type QuoteFetcher interface {
	FetchCurrentPrice(symbol optionmodels.StockSymbol) (float64, error)
	FetchDailyCloses(symbol optionmodels.StockSymbol, period string) ([]float64, error)
}

// QuoteWorker reprices the watchlist on a fixed interval and publishes
// each update on the event bus.
type QuoteWorker struct {
	watchlist    *optionmodels.WatchlistConfigYAML
	fetcher      QuoteFetcher
	rateService  *marketdata.RiskFreeRateService
	volatilities map[string]float64
}

func NewQuoteWorker(watchlist *optionmodels.WatchlistConfigYAML, fetcher QuoteFetcher, rateService *marketdata.RiskFreeRateService) *QuoteWorker {
	return &QuoteWorker{
		watchlist:    watchlist,
		fetcher:      fetcher,
		rateService:  rateService,
		volatilities: make(map[string]float64),
	}
}

// warmVolatilities seeds each symbol's repricing volatility from its
// trailing historical volatility. Symbols whose history cannot be
// fetched fall back to the default.
func (w *QuoteWorker) warmVolatilities() {
	for _, item := range w.watchlist.Symbols {
		symbol := optionmodels.NewStockSymbol(item.Symbol)

		closes, err := w.fetcher.FetchDailyCloses(symbol, volatilityPeriod)
		if err != nil {
			log.Warnf("QuoteWorker: warmVolatilities: %s: %v", symbol, err)
			w.volatilities[symbol.String()] = defaultStreamVolatility
			continue
		}

		volatility, err := optionpricing.HistoricalVolatility(closes, volatilityWindowDays)
		if err != nil || volatility == 0 {
			log.Warnf("QuoteWorker: warmVolatilities: %s: using default volatility: %v", symbol, err)
			w.volatilities[symbol.String()] = defaultStreamVolatility
			continue
		}

		w.volatilities[symbol.String()] = volatility
	}
}

func (w *QuoteWorker) volatilityFor(symbol optionmodels.StockSymbol) float64 {
	if volatility, found := w.volatilities[symbol.String()]; found {
		return volatility
	}

	return defaultStreamVolatility
}

func (w *QuoteWorker) refresh(now time.Time) {
	for _, item := range w.watchlist.Symbols {
		symbol := optionmodels.NewStockSymbol(item.Symbol)

		spot, err := w.fetcher.FetchCurrentPrice(symbol)
		if err != nil {
			log.Errorf("QuoteWorker: refresh: %s: %v", symbol, err)
			continue
		}

		rateForExpiry := func(timeToExpiryYears float64) float64 {
			rate, _ := w.rateService.GetRateForExpiry(timeToExpiryYears)
			return rate
		}

		update := BuildQuoteUpdate(item, spot, w.volatilityFor(symbol), rateForExpiry, now)
		Publish(QuoteUpdateEvent, update)
	}
}

// Start blocks until ctx is cancelled.
func (w *QuoteWorker) Start(ctx context.Context) {
	w.warmVolatilities()
	w.refresh(time.Now().UTC())

	ticker := time.NewTicker(w.watchlist.RefreshInterval())
	defer ticker.Stop()

	log.Infof("QuoteWorker: streaming %d symbols every %s", len(w.watchlist.Symbols), w.watchlist.RefreshInterval())

	for {
		select {
		case <-ctx.Done():
			log.Info("QuoteWorker: stopping")
			return
		case tick := <-ticker.C:
			w.refresh(tick.UTC())
		}
	}
}
