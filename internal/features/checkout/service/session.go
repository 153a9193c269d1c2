package service

import (
	"sync"
	"sync/atomic"
	"time"

	shipservice "storefront-gateway/internal/features/shipping/service"
	storeservice "storefront-gateway/internal/features/storecart/service"
)

// Session is the checkout of one shopper: its server cart, its shipping
// quote and whether the order was already placed. mu serializes the
// operations of the session.
type Session struct {
	id       string
	sync     *storeservice.Synchronizer
	resolver *shipservice.Resolver
	started  atomic.Bool
	closed   atomic.Bool

	mu sync.Mutex

	// seen is guarded by the owning Registry.
	seen time.Time
}

// Started reports whether a cart sync succeeded at least once.
func (s *Session) Started() bool {
	return s.started.Load()
}

// Closed reports whether the session already placed its order.
func (s *Session) Closed() bool {
	return s.closed.Load()
}

func (s *Session) stop() {
	s.resolver.Stop()
}
