package pricingapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
	"github.com/jiaming2012/options-pricing/src/optionpricing"
	"github.com/jiaming2012/options-pricing/src/utils"
)

func SetResponse[T any](obj *T, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	if err := json.NewEncoder(w).Encode(obj); err != nil {
		return fmt.Errorf("SetResponse: encode: %w", err)
	}

	return nil
}

func SetGenericResponse(obj interface{}, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	if err := json.NewEncoder(w).Encode(obj); err != nil {
		return fmt.Errorf("SetGenericResponse: encode: %w", err)
	}

	return nil
}

func SetErrorResponse(errType string, statusCode int, err error, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := optionmodels.NewErrorDTO(errType, err.Error())
	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		return encodeErr
	}

	return nil
}

// statusCodeForError maps domain errors to HTTP status codes. Invalid
// contract parameters are a client fault, an implied volatility solve
// that cannot converge is unprocessable, and upstream data failures
// surface as bad gateway.
func statusCodeForError(err error) int {
	switch {
	case errors.Is(err, optionpricing.ErrInvalidInput):
		return 400
	case errors.Is(err, optionpricing.ErrConvergenceFailure):
		return 422
	case errors.Is(err, utils.ErrNotFound):
		return 404
	case errors.Is(err, utils.ErrUpstream):
		return 502
	default:
		return 500
	}
}
