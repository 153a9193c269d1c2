// Package wcapi is a thin client for the WooCommerce REST API (wp-json/wc/v3)
// authenticated with the store's consumer key and secret.
package wcapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"storefront-gateway/internal/core/apperr"
	"storefront-gateway/internal/core/config"
)

const basePath = "/wp-json/wc/v3"

// Client performs authenticated calls against the WooCommerce REST API.
type Client struct {
	// http is the HTTP client used for API requests.
	http *http.Client
	// baseURL is the store URL without trailing slash.
	baseURL string
	// authorization is the precomputed Basic header value.
	authorization string
}

// New creates a Client for the configured store.
func New(cfg config.WooCommerceConfig, httpClient *http.Client) *Client {
	authVal := make([]byte, 0, len(cfg.ConsumerKey)+len(cfg.ConsumerSecret)+1)
	authVal = fmt.Appendf(authVal, "%s:%s", cfg.ConsumerKey, cfg.ConsumerSecret)

	return &Client{
		http:          httpClient,
		baseURL:       strings.TrimRight(cfg.URL, "/"),
		authorization: "Basic " + base64.StdEncoding.EncodeToString(authVal),
	}
}

// Get issues a GET request and decodes the JSON answer into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

// Do executes the request. Non-2xx answers are returned as *apperr.APIError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + basePath + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.authorization)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperr.FromResponse(resp, fmt.Sprintf("woocommerce API returned status: %d", resp.StatusCode))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	return apperr.StatusOf(err) == http.StatusNotFound
}
