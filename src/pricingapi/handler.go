package pricingapi

import (
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type ApiRequest interface {
	ParseHTTPRequest(r *http.Request) error
	Validate(r *http.Request) error
}

type RequestExecutor interface {
	Serve(r *http.Request, request ApiRequest) (chan interface{}, chan error)
}

// ApiRequestHandler parses and validates the request, hands it to the
// executor, and writes whichever of the result/error channels answers
// first.
func ApiRequestHandler(request ApiRequest, executor RequestExecutor, w http.ResponseWriter, r *http.Request) {
	if err := request.ParseHTTPRequest(r); err != nil {
		if respErr := SetErrorResponse("parser", 400, err, w); respErr != nil {
			log.Errorf("ApiRequestHandler: failed to set parse error response: %v", respErr)
		}
		return
	}

	if err := request.Validate(r); err != nil {
		if respErr := SetErrorResponse("validation", 400, err, w); respErr != nil {
			log.Errorf("ApiRequestHandler: failed to set validation error response: %v", respErr)
		}
		return
	}

	requestID := uuid.New()
	log.Debugf("ApiRequestHandler: serving %s %s, requestID %s", r.Method, r.URL.Path, requestID)

	resultCh, errCh := executor.Serve(r, request)

	select {
	case result := <-resultCh:
		if err := SetGenericResponse(result, w); err != nil {
			log.Errorf("ApiRequestHandler: failed to set response for requestID %s: %v", requestID, err)
			w.WriteHeader(500)
			return
		}
	case err := <-errCh:
		statusCode := statusCodeForError(err)
		if respErr := SetErrorResponse("executor", statusCode, err, w); respErr != nil {
			log.Errorf("ApiRequestHandler: failed to set error response for requestID %s: %v", requestID, respErr)
			w.WriteHeader(500)
			return
		}
	}
}
