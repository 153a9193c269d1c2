package httpclient

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"storefront-gateway/internal/core/config"
	"storefront-gateway/internal/core/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// LoggingRoundTripper captures request details for debugging.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	target := redact(req.URL)

	logger.Get().Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", target),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.Get().Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", target),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Get().Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", target),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// redact drops the query string, which may carry consumer keys or emails.
func redact(u *url.URL) string {
	c := *u
	c.RawQuery = ""
	c.User = nil
	return c.String()
}

// Factory builds http.Clients that share one transport chain, so breaker and
// rate limiter state is common to every shopper session.
type Factory struct {
	transport http.RoundTripper
	timeout   time.Duration
}

// NewFactory assembles logging -> breaker -> rate limit -> base transport.
func NewFactory(cfg config.HTTPConfig) (*Factory, error) {
	base := http.DefaultTransport.(*http.Transport).Clone()

	if proxyURL := cfg.Proxy.URL(); proxyURL != "" {
		parsed, err := url.Parse(proxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %w", err)
		}
		base.Proxy = http.ProxyURL(parsed)
	}

	var next http.RoundTripper = base
	if cfg.RateLimit > 0 {
		burst := int(cfg.RateLimit)
		if burst < 1 {
			burst = 1
		}
		next = &RateLimitedRoundTripper{
			Proxied: next,
			Limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), burst),
		}
	}
	if cfg.BreakerFailures > 0 {
		next = NewBreakerRoundTripper(next, uint32(cfg.BreakerFailures), cfg.BreakerCooldown)
	}

	return &Factory{
		transport: &LoggingRoundTripper{Proxied: next},
		timeout:   cfg.Timeout,
	}, nil
}

// NewClient returns a client on the shared transport. jar may be nil.
func (f *Factory) NewClient(jar http.CookieJar) *http.Client {
	return &http.Client{
		Transport: f.transport,
		Timeout:   f.timeout,
		Jar:       jar,
	}
}
