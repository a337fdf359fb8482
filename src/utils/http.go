package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
)

var (
	ErrNotFound = errors.New("resource not found")
	ErrUpstream = errors.New("upstream request failed")
)

// GetJSON fetches url with the supplied headers and decodes the JSON
// body into out. Responses with a 4xx/5xx status are decoded as an
// ErrorDTO and surfaced as an error.
func GetJSON(url string, headers map[string]string, out interface{}) error {
	client := http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("GetJSON: failed to create request: %w", err)
	}

	req.Header.Add("Accept", "application/json")
	req.Header.Add("User-Agent", "options-pricing/1.0")

	for k, v := range headers {
		req.Header.Add(k, v)
	}

	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("GetJSON: failed to fetch %s: %w", url, err)
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("GetJSON: failed to read response body: %w", err)
	}

	if res.StatusCode >= 400 {
		sentinel := ErrUpstream
		if res.StatusCode == http.StatusNotFound {
			sentinel = ErrNotFound
		}

		var errDTO optionmodels.ErrorDTO
		if jsonErr := json.Unmarshal(body, &errDTO); jsonErr == nil && errDTO.Msg != "" {
			return fmt.Errorf("GetJSON: %s: %s: %w", res.Status, errDTO.Msg, sentinel)
		}

		return fmt.Errorf("GetJSON: %s: %s: %w", url, res.Status, sentinel)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("GetJSON: failed to unmarshal response: %w", err)
	}

	return nil
}
