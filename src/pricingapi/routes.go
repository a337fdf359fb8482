package pricingapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
)

var (
	priceOptionRequestExecutor          *PriceOptionRequestExecutor
	impliedVolatilityRequestExecutor    *ImpliedVolatilityRequestExecutor
	greeksSurfaceRequestExecutor        *GreeksSurfaceRequestExecutor
	optionChainRequestExecutor          *OptionChainRequestExecutor
	expirationsRequestExecutor          *ExpirationsRequestExecutor
	stockInfoRequestExecutor            *StockInfoRequestExecutor
	historicalVolatilityRequestExecutor *HistoricalVolatilityRequestExecutor
	treasuryRatesRequestExecutor        *TreasuryRatesRequestExecutor
)

func priceHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == "POST" {
		ApiRequestHandler(&optionmodels.PriceOptionRequest{}, priceOptionRequestExecutor, w, r)
	} else {
		w.WriteHeader(404)
	}
}

func impliedVolatilityHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == "POST" {
		ApiRequestHandler(&optionmodels.ImpliedVolatilityRequest{}, impliedVolatilityRequestExecutor, w, r)
	} else {
		w.WriteHeader(404)
	}
}

func greeksSurfaceHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == "POST" {
		ApiRequestHandler(&optionmodels.GreeksSurfaceRequest{}, greeksSurfaceRequestExecutor, w, r)
	} else {
		w.WriteHeader(404)
	}
}

func chainHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		ApiRequestHandler(&optionmodels.OptionChainRequest{}, optionChainRequestExecutor, w, r)
	} else {
		w.WriteHeader(404)
	}
}

func expirationsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		ApiRequestHandler(&optionmodels.ExpirationsRequest{}, expirationsRequestExecutor, w, r)
	} else {
		w.WriteHeader(404)
	}
}

func stockInfoHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == "POST" {
		ApiRequestHandler(&optionmodels.StockInfoRequest{}, stockInfoRequestExecutor, w, r)
	} else {
		w.WriteHeader(404)
	}
}

func historicalVolatilityHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == "POST" {
		ApiRequestHandler(&optionmodels.HistoricalVolatilityRequest{}, historicalVolatilityRequestExecutor, w, r)
	} else {
		w.WriteHeader(404)
	}
}

func treasuryRatesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		ApiRequestHandler(&optionmodels.NoArgsRequest{}, treasuryRatesRequestExecutor, w, r)
	} else {
		w.WriteHeader(404)
	}
}

// SetupOptionsHandler mounts the pure pricing endpoints, which depend
// only on the pricing engine.
func SetupOptionsHandler(router *mux.Router) {
	priceOptionRequestExecutor = &PriceOptionRequestExecutor{}
	impliedVolatilityRequestExecutor = &ImpliedVolatilityRequestExecutor{}
	greeksSurfaceRequestExecutor = &GreeksSurfaceRequestExecutor{}

	router.HandleFunc("/price", priceHandler)
	router.HandleFunc("/implied-volatility", impliedVolatilityHandler)
	router.HandleFunc("/greeks-surface", greeksSurfaceHandler)
}

// SetupOptionChainHandler mounts the chain endpoints backed by Yahoo
// Finance.
func SetupOptionChainHandler(router *mux.Router, chainExecutor *OptionChainRequestExecutor, expirationsExecutor *ExpirationsRequestExecutor) {
	optionChainRequestExecutor = chainExecutor
	expirationsRequestExecutor = expirationsExecutor

	router.HandleFunc("/chain/{ticker}", chainHandler)
	router.HandleFunc("/expirations/{ticker}", expirationsHandler)
}

// SetupMarketHandler mounts the market data endpoints backed by Twelve
// Data and the treasury rate service.
func SetupMarketHandler(router *mux.Router, stockExecutor *StockInfoRequestExecutor, volExecutor *HistoricalVolatilityRequestExecutor, ratesExecutor *TreasuryRatesRequestExecutor) {
	stockInfoRequestExecutor = stockExecutor
	historicalVolatilityRequestExecutor = volExecutor
	treasuryRatesRequestExecutor = ratesExecutor

	router.HandleFunc("/stock-info", stockInfoHandler)
	router.HandleFunc("/historical-volatility", historicalVolatilityHandler)
	router.HandleFunc("/treasury-rates", treasuryRatesHandler)
}
