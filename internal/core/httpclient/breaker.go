package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"storefront-gateway/internal/core/logger"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// ErrUpstreamUnavailable is returned while the breaker for a host is open.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// serverError marks a 5xx answer as a breaker failure while still handing
// the response back to the caller.
type serverError struct {
	resp *http.Response
}

func (e *serverError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.resp.StatusCode)
}

// BreakerRoundTripper keeps one circuit breaker per upstream host.
type BreakerRoundTripper struct {
	Proxied  http.RoundTripper
	failures uint32
	cooldown time.Duration

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[*http.Response]
}

// NewBreakerRoundTripper opens a host's breaker after failures consecutive errors or 5xx answers.
func NewBreakerRoundTripper(next http.RoundTripper, failures uint32, cooldown time.Duration) *BreakerRoundTripper {
	return &BreakerRoundTripper{
		Proxied:  next,
		failures: failures,
		cooldown: cooldown,
		breakers: make(map[string]*gobreaker.CircuitBreaker[*http.Response]),
	}
}

func (b *BreakerRoundTripper) breaker(host string) *gobreaker.CircuitBreaker[*http.Response] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cb, ok := b.breakers[host]; ok {
		return cb
	}

	threshold := b.failures
	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        host,
		MaxRequests: 1,
		Timeout:     b.cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A caller giving up says nothing about the upstream's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Named("httpclient").Warn("Circuit breaker state changed",
				zap.String("host", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	b.breakers[host] = cb
	return cb
}

// RoundTrip executes the request through the host's breaker.
func (b *BreakerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	cb := b.breaker(req.URL.Host)

	resp, err := cb.Execute(func() (*http.Response, error) {
		resp, err := b.Proxied.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, &serverError{resp: resp}
		}
		return resp, nil
	})

	var se *serverError
	if errors.As(err, &se) {
		return se.resp, nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, req.URL.Host, err)
	}
	return resp, err
}
