package service

import (
	"fmt"
	"sync"
	"time"

	"storefront-gateway/internal/core/logger"
	"storefront-gateway/internal/features/checkout/ports"
	shipservice "storefront-gateway/internal/features/shipping/service"
	storeservice "storefront-gateway/internal/features/storecart/service"
)

// Registry owns the checkout sessions of every shopper. Sessions idle for
// longer than idleTTL are evicted by Sweep.
type Registry struct {
	stores   ports.StoreCartFactory
	debounce time.Duration
	idleTTL  time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates an empty Registry.
func NewRegistry(stores ports.StoreCartFactory, debounce, idleTTL time.Duration) *Registry {
	return &Registry{
		stores:   stores,
		debounce: debounce,
		idleTTL:  idleTTL,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Open returns the session of sessionID, creating one when there is none.
// With renew, a session that already placed its order is replaced by a
// fresh one.
func (r *Registry) Open(sessionID string, renew bool) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[sessionID]; ok {
		if !renew || !s.Closed() {
			s.seen = r.now()
			return s, nil
		}
		s.stop()
	}

	store, err := r.stores.NewStoreCart(sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to open checkout: %w", err)
	}

	log := logger.ForSession("checkout", sessionID)
	s := &Session{
		id:       sessionID,
		sync:     storeservice.NewSynchronizer(store, log),
		resolver: shipservice.NewResolver(store, r.debounce, log),
		seen:     r.now(),
	}
	r.sessions[sessionID] = s
	return s, nil
}

// Lookup returns the existing session of sessionID.
func (r *Registry) Lookup(sessionID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if ok {
		s.seen = r.now()
	}
	return s, ok
}

// Sweep evicts idle sessions and returns how many were removed.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.seen.Before(cutoff) {
			s.stop()
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Close stops every session's pending work.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.sessions {
		s.stop()
		delete(r.sessions, id)
	}
}
