package pricingapi

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
)

func newOptionsTestRouter() *mux.Router {
	router := mux.NewRouter()
	SetupOptionsHandler(router.PathPrefix("/api/options").Subrouter())
	return router
}

func postJSON(t *testing.T, router *mux.Router, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestPriceEndpoint(t *testing.T) {
	router := newOptionsTestRouter()

	t.Run("prices a call with greeks", func(t *testing.T) {
		rec := postJSON(t, router, "/api/options/price", optionmodels.PriceOptionRequest{
			Spot:         100,
			Strike:       100,
			TimeToExpiry: 1,
			RiskFreeRate: 0.05,
			Volatility:   0.2,
			OptionType:   optionmodels.OptionTypeCall,
		})

		assert.Equal(t, 200, rec.Code)

		var resp optionmodels.PriceOptionResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

		assert.InDelta(t, 10.4506, resp.OptionPrice, 1e-3)
		assert.InDelta(t, 0.6368, resp.Greeks.Delta, 1e-3)
		assert.Equal(t, optionmodels.OptionTypeCall, resp.Inputs.OptionType)
	})

	t.Run("rejects a non-positive spot", func(t *testing.T) {
		rec := postJSON(t, router, "/api/options/price", optionmodels.PriceOptionRequest{
			Spot:         -1,
			Strike:       100,
			TimeToExpiry: 1,
			Volatility:   0.2,
			OptionType:   optionmodels.OptionTypeCall,
		})

		assert.Equal(t, 400, rec.Code)

		var errDTO optionmodels.ErrorDTO
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errDTO))
		assert.Contains(t, errDTO.Msg, "spot")
	})

	t.Run("rejects an unknown option type", func(t *testing.T) {
		rec := postJSON(t, router, "/api/options/price", map[string]interface{}{
			"spot":           100.0,
			"strike":         100.0,
			"time_to_expiry": 1.0,
			"volatility":     0.2,
			"option_type":    "straddle",
		})

		assert.Equal(t, 400, rec.Code)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/options/price", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, 400, rec.Code)
	})

	t.Run("GET is not found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/options/price", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, 404, rec.Code)
	})
}

func TestImpliedVolatilityEndpoint(t *testing.T) {
	router := newOptionsTestRouter()

	t.Run("recovers the volatility behind a market price", func(t *testing.T) {
		rec := postJSON(t, router, "/api/options/implied-volatility", optionmodels.ImpliedVolatilityRequest{
			MarketPrice:  10.4506,
			Spot:         100,
			Strike:       100,
			TimeToExpiry: 1,
			RiskFreeRate: 0.05,
			OptionType:   optionmodels.OptionTypeCall,
		})

		assert.Equal(t, 200, rec.Code)

		var resp optionmodels.ImpliedVolatilityResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

		assert.InDelta(t, 0.2, resp.ImpliedVolatility, 1e-3)
		assert.Greater(t, resp.Iterations, 0)
	})

	t.Run("price below intrinsic is unprocessable", func(t *testing.T) {
		rec := postJSON(t, router, "/api/options/implied-volatility", optionmodels.ImpliedVolatilityRequest{
			MarketPrice:  1,
			Spot:         100,
			Strike:       50,
			TimeToExpiry: 0.5,
			OptionType:   optionmodels.OptionTypeCall,
		})

		assert.Equal(t, 422, rec.Code)

		var errDTO optionmodels.ErrorDTO
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errDTO))
		assert.Equal(t, "executor", errDTO.Type)
	})
}

func TestGreeksSurfaceEndpoint(t *testing.T) {
	router := newOptionsTestRouter()

	rec := postJSON(t, router, "/api/options/greeks-surface", optionmodels.PriceOptionRequest{
		Spot:         100,
		Strike:       100,
		TimeToExpiry: 0.5,
		RiskFreeRate: 0.03,
		Volatility:   0.25,
		OptionType:   optionmodels.OptionTypePut,
	})

	assert.Equal(t, 200, rec.Code)

	var resp optionmodels.GreeksSurfaceResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Len(t, resp.SpotPrices, 51)
	assert.Len(t, resp.Delta, 51)
	assert.InDelta(t, 50, resp.SpotPrices[0], 1e-9)
	assert.InDelta(t, 150, resp.SpotPrices[50], 1e-9)

	// Deep ITM put delta approaches -1, deep OTM approaches 0.
	assert.Less(t, resp.Delta[0], -0.9)
	assert.Greater(t, resp.Delta[50], -0.1)
}

func TestStatusCodeForError(t *testing.T) {
	assert.Equal(t, 500, statusCodeForError(assert.AnError))
}
