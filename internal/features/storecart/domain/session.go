package domain

import (
	"sync"

	shipping "storefront-gateway/internal/features/shipping/domain"
)

// RemoteCartItem is one line of the store's server side cart.
type RemoteCartItem struct {
	// Key is the server assigned line key used to remove the line.
	Key       string `json:"key"`
	ProductID int    `json:"id"`
	Quantity  int    `json:"quantity"`
	Name      string `json:"name"`
}

// Totals are the server computed cart totals in minor units.
type Totals struct {
	Subtotal          int64  `json:"subtotal"`
	Tax               int64  `json:"tax"`
	ShippingTotal     int64  `json:"shipping_total"`
	Total             int64  `json:"total"`
	CurrencyCode      string `json:"currency_code"`
	CurrencyMinorUnit int    `json:"currency_minor_unit"`
}

// RemoteCartSession is the state of the store's cart for one shopper session.
type RemoteCartSession struct {
	CartToken        string             `json:"-"`
	Nonce            string             `json:"-"`
	Items            []RemoteCartItem   `json:"items"`
	Totals           Totals             `json:"totals"`
	ShippingPackages []shipping.Package `json:"shipping_packages"`
}

// Quantities indexes the session's items by product id.
func (s *RemoteCartSession) Quantities() map[int]int {
	out := make(map[int]int, len(s.Items))
	for _, item := range s.Items {
		out[item.ProductID] += item.Quantity
	}
	return out
}

// Credentials is the cart token and nonce pair pinning requests to one server
// side cart. It is shared by every request of a shopper session.
type Credentials struct {
	mu        sync.RWMutex
	cartToken string
	nonce     string
}

// Snapshot returns the latest known values.
func (c *Credentials) Snapshot() (cartToken, nonce string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cartToken, c.nonce
}

// Update stores any non-empty value as the latest known one.
func (c *Credentials) Update(cartToken, nonce string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cartToken != "" {
		c.cartToken = cartToken
	}
	if nonce != "" {
		c.nonce = nonce
	}
}

// HasNonce reports whether a nonce has been received.
func (c *Credentials) HasNonce() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nonce != ""
}

// DesiredItem is a local cart line the server cart must mirror.
type DesiredItem struct {
	ProductID int
	Quantity  int
}

// SyncResult is the outcome of replaying the local cart onto the server cart.
type SyncResult struct {
	Session *RemoteCartSession
	// RemovalFailures counts stale server lines that could not be removed.
	RemovalFailures int
	// AdditionFailures counts local lines the server refused.
	AdditionFailures int
}

// Converged reports whether every step of the replay succeeded.
func (r SyncResult) Converged() bool {
	return r.RemovalFailures == 0 && r.AdditionFailures == 0
}
