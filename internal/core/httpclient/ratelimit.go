package httpclient

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitedRoundTripper blocks until the shared token bucket admits the request.
type RateLimitedRoundTripper struct {
	Proxied http.RoundTripper
	Limiter *rate.Limiter
}

// RoundTrip waits for a token, honouring the request context.
func (r *RateLimitedRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := r.Limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("outbound rate limit: %w", err)
	}
	return r.Proxied.RoundTrip(req)
}
