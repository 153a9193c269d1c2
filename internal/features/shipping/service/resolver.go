package service

import (
	"context"
	"sync"
	"time"

	"storefront-gateway/internal/core/apperr"
	"storefront-gateway/internal/features/shipping/domain"
	"storefront-gateway/internal/features/shipping/ports"
	storecart "storefront-gateway/internal/features/storecart/domain"

	"go.uber.org/zap"
)

// NoRatesMessage is shown to the shopper when the store does not ship to the address.
const NoRatesMessage = "No hay métodos de envío disponibles para esta dirección. Revisá los datos o contactanos."

// Snapshot is the shipping state of a checkout session as shown to the shopper.
type Snapshot struct {
	State    domain.State     `json:"state"`
	Packages []domain.Package `json:"packages"`
	Totals   storecart.Totals `json:"totals"`
	Message  string           `json:"message,omitempty"`
	Sequence uint64           `json:"sequence"`
	Selected *domain.Rate     `json:"selected_rate,omitempty"`
}

// Resolver quotes shipping for the shopper's address. Address edits are
// debounced into one update-customer request; answers to superseded requests
// are dropped.
type Resolver struct {
	cart     ports.CustomerCart
	debounce time.Duration
	log      *zap.Logger

	// ctx is cancelled by Stop and bounds every request the resolver issues.
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	timer    *time.Timer
	seq      uint64
	ready    bool
	stopped  bool
	address  domain.Address
	state    domain.State
	packages []domain.Package
	totals   storecart.Totals
	message  string
}

// NewResolver creates a Resolver in the UNCALCULATED state. It issues no
// request until MarkSynced is called.
func NewResolver(cart ports.CustomerCart, debounce time.Duration, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Resolver{
		cart:     cart,
		debounce: debounce,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
		state:    domain.StateUncalculated,
	}
}

// MarkSynced opens the gate after a successful cart sync and seeds the
// totals. A calculable address recorded earlier is quoted right away.
func (r *Resolver) MarkSynced(session *storecart.RemoteCartSession) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ready = true
	if session != nil {
		r.totals = session.Totals
	}
	if r.address.Calculable() && !r.stopped {
		r.schedule()
	}
}

// UpdateAddress records address and schedules a quote when it is calculable.
func (r *Resolver) UpdateAddress(address domain.Address) domain.State {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.address = address.Normalize()
	if r.stopped {
		return r.state
	}

	if !r.address.Calculable() || !r.ready {
		r.stopTimer()
		// Bump the sequence so an in-flight answer for the previous address is dropped.
		r.seq++
		r.state = domain.StateUncalculated
		r.packages = nil
		r.message = ""
		return r.state
	}

	r.schedule()
	return r.state
}

// Address returns the last recorded address.
func (r *Resolver) Address() domain.Address {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.address
}

// schedule (re)arms the debounce timer and drops the packages quoted for the
// previous address. Callers hold mu.
func (r *Resolver) schedule() {
	r.seq++
	seq := r.seq
	r.state = domain.StateCalculating
	r.packages = nil
	r.message = ""

	r.stopTimer()
	r.timer = time.AfterFunc(r.debounce, func() { r.quote(seq) })
}

func (r *Resolver) stopTimer() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// quote issues the update-customer request scheduled as seq.
func (r *Resolver) quote(seq uint64) {
	r.mu.Lock()
	if seq != r.seq || r.stopped {
		r.mu.Unlock()
		return
	}
	address := r.address
	r.mu.Unlock()

	r.log.Debug("Requesting shipping rates", zap.Uint64("seq", seq), zap.String("postcode", address.PostalCode))
	session, err := r.cart.UpdateCustomer(r.ctx, address, address)

	r.mu.Lock()
	defer r.mu.Unlock()

	if seq != r.seq {
		r.log.Debug("Discarding stale shipping quote", zap.Uint64("seq", seq), zap.Uint64("latest", r.seq))
		return
	}

	if err != nil {
		r.log.Warn("Shipping quote failed", zap.Uint64("seq", seq), zap.Error(err))
		r.state = domain.StateError
		r.packages = nil
		r.message = errorMessage(err)
		return
	}

	r.apply(session)
}

// apply replaces packages and totals with the server's answer. Callers hold mu.
func (r *Resolver) apply(session *storecart.RemoteCartSession) {
	r.packages = domain.Clone(session.ShippingPackages)
	r.totals = session.Totals
	r.message = ""

	if domain.NoRatesAvailable(r.packages) {
		r.state = domain.StateNoRatesAvailable
		r.message = NoRatesMessage
		return
	}
	r.state = domain.StateRatesAvailable
}

// SelectRate marks rateID selected locally, then on the server. The server
// answer replaces packages and totals; a failure restores the previous packages.
func (r *Resolver) SelectRate(ctx context.Context, packageID int, rateID string) (Snapshot, error) {
	r.mu.Lock()
	selected, err := domain.WithSelection(r.packages, packageID, rateID)
	if err != nil {
		r.mu.Unlock()
		return Snapshot{}, err
	}
	previous := r.packages
	r.packages = selected
	seq := r.seq
	r.mu.Unlock()

	session, err := r.cart.SelectShippingRate(ctx, packageID, rateID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		if seq == r.seq {
			r.packages = previous
		}
		r.log.Warn("Shipping rate selection failed",
			zap.Int("package_id", packageID),
			zap.String("rate_id", rateID),
			zap.Error(err),
		)
		return r.snapshot(), err
	}

	if seq == r.seq {
		r.apply(session)
	}
	return r.snapshot(), nil
}

// Snapshot returns a copy of the current shipping state.
func (r *Resolver) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

func (r *Resolver) snapshot() Snapshot {
	s := Snapshot{
		State:    r.state,
		Packages: domain.Clone(r.packages),
		Totals:   r.totals,
		Message:  r.message,
		Sequence: r.seq,
	}
	if rate, ok := domain.SelectedRate(r.packages); ok {
		s.Selected = &rate
	}
	return s
}

// Stop cancels the pending quote and any request in flight. The resolver
// ignores further address updates.
func (r *Resolver) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopped = true
	r.stopTimer()
	r.cancel()
}

func errorMessage(err error) string {
	if msg, ok := apperr.Message(err); ok {
		return msg
	}
	return "No se pudieron calcular los costos de envío. Intentá nuevamente."
}
