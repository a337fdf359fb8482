package optionmodels

import "net/http"

// NoArgsRequest backs GET endpoints that take no parameters.
type NoArgsRequest struct{}

func (req *NoArgsRequest) ParseHTTPRequest(r *http.Request) error {
	return nil
}

func (req *NoArgsRequest) Validate(r *http.Request) error {
	return nil
}
