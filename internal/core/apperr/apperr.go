// Package apperr decodes the error envelope shared by the WooCommerce REST API,
// the Store API and WordPress plugins: {"code": "...", "message": "...", "data": {"status": 400}}.
package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
)

// APIError is an upstream error carrying the server's message verbatim.
type APIError struct {
	// Status is the HTTP status returned by the upstream.
	Status int
	// Code is the machine readable error code, e.g. "woocommerce_rest_invalid_product_id".
	Code string
	// Message is the human readable message, suitable to show the shopper.
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("upstream error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("upstream error %d: %s", e.Status, e.Message)
}

type envelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Status int `json:"status"`
	} `json:"data"`
}

// maxErrorBody bounds how much of an error body is read.
const maxErrorBody = 64 << 10

// FromResponse builds an APIError from a non-2xx response. fallback is used
// as the message when the body carries none. The body is not closed.
func FromResponse(resp *http.Response, fallback string) *APIError {
	apiErr := &APIError{Status: resp.StatusCode, Message: fallback}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && len(body) > 0 {
		var env envelope
		if json.Unmarshal(body, &env) == nil {
			apiErr.Code = env.Code
			if msg := strings.TrimSpace(env.Message); msg != "" {
				apiErr.Message = html.UnescapeString(msg)
			} else if apiErr.Message == "" {
				apiErr.Message = env.Code
			}
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

// Message returns the shopper facing message of err when it wraps an APIError.
func Message(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message, true
	}
	return "", false
}

// StatusOf returns the upstream status of err, or 0 when err is not an APIError.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsUnauthorized reports whether the upstream rejected the credentials.
func IsUnauthorized(err error) bool {
	status := StatusOf(err)
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}
