package domain

import "errors"

var (
	// ErrNotStarted is returned by checkout operations before Start ran for the session.
	ErrNotStarted = errors.New("checkout not started")
	// ErrSessionClosed is returned once the session placed its order.
	ErrSessionClosed = errors.New("checkout session closed")
	// ErrShippingPending is returned by PlaceOrder while the shipping quote for
	// the current address is scheduled, in flight or failed.
	ErrShippingPending = errors.New("shipping quote not resolved")
)
