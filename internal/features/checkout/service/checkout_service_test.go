package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"storefront-gateway/internal/core/apperr"
	auth "storefront-gateway/internal/features/auth/domain"
	cart "storefront-gateway/internal/features/cart/domain"
	"storefront-gateway/internal/features/checkout/domain"
	orders "storefront-gateway/internal/features/orders/domain"
	ordersvc "storefront-gateway/internal/features/orders/service"
	shipping "storefront-gateway/internal/features/shipping/domain"
	storecart "storefront-gateway/internal/features/storecart/domain"
	storeports "storefront-gateway/internal/features/storecart/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStoreCart is an in-memory server cart that quotes two rates for any address.
type fakeStoreCart struct {
	mu      sync.Mutex
	items   []storecart.RemoteCartItem
	nextKey int
	rates   []shipping.Rate
	// quoteErr fails every update-customer request.
	quoteErr error
	// hold, when set, blocks update-customer until it is closed.
	hold chan struct{}
}

func newFakeStoreCart(stale ...storecart.RemoteCartItem) *fakeStoreCart {
	return &fakeStoreCart{items: stale}
}

func (f *fakeStoreCart) session() *storecart.RemoteCartSession {
	s := &storecart.RemoteCartSession{
		Items:  append([]storecart.RemoteCartItem(nil), f.items...),
		Totals: storecart.Totals{CurrencyCode: "ARS", CurrencyMinorUnit: 2},
	}
	if f.rates != nil {
		s.ShippingPackages = []shipping.Package{{PackageID: 0, Rates: append([]shipping.Rate(nil), f.rates...)}}
	}
	return s
}

func (f *fakeStoreCart) GetCart(context.Context) (*storecart.RemoteCartSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session(), nil
}

func (f *fakeStoreCart) AddItem(_ context.Context, productID, quantity int) (*storecart.RemoteCartSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextKey++
	f.items = append(f.items, storecart.RemoteCartItem{Key: fmt.Sprintf("k%d", f.nextKey), ProductID: productID, Quantity: quantity})
	return f.session(), nil
}

func (f *fakeStoreCart) RemoveItem(_ context.Context, key string) (*storecart.RemoteCartSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, item := range f.items {
		if item.Key == key {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return f.session(), nil
}

func (f *fakeStoreCart) UpdateCustomer(ctx context.Context, _, _ shipping.Address) (*storecart.RemoteCartSession, error) {
	f.mu.Lock()
	hold := f.hold
	f.mu.Unlock()
	if hold != nil {
		select {
		case <-hold:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.quoteErr != nil {
		return nil, f.quoteErr
	}
	f.rates = []shipping.Rate{
		{RateID: "flat_rate:1", Name: "Estándar", MethodID: "flat_rate", PriceMinorUnits: 150000, CurrencyMinorUnit: 2, Selected: true},
		{RateID: "express", Name: "Express", MethodID: "flat_rate", PriceMinorUnits: 350000, CurrencyMinorUnit: 2},
	}
	return f.session(), nil
}

func (f *fakeStoreCart) SelectShippingRate(_ context.Context, _ int, rateID string) (*storecart.RemoteCartSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rates {
		f.rates[i].Selected = f.rates[i].RateID == rateID
	}
	return f.session(), nil
}

type fakeFactory struct {
	mu     sync.Mutex
	stores map[string]*fakeStoreCart
	opened int
}

func (f *fakeFactory) NewStoreCart(sessionID string) (storeports.StoreCart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opened++
	if f.stores == nil {
		f.stores = make(map[string]*fakeStoreCart)
	}
	store, ok := f.stores[sessionID]
	if !ok {
		store = newFakeStoreCart()
		f.stores[sessionID] = store
	}
	return store, nil
}

type memoryCarts struct {
	mu    sync.Mutex
	carts map[string]*cart.Cart
}

func (m *memoryCarts) Get(_ context.Context, sessionID string) (*cart.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[sessionID]
	if !ok {
		return &cart.Cart{}, nil
	}
	cp := &cart.Cart{Items: append([]cart.CartItem(nil), c.Items...)}
	return cp, nil
}

func (m *memoryCarts) RemoveOrdered(_ context.Context, sessionID string, ordered []cart.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[sessionID]
	if !ok {
		return nil
	}
	c.Deduct(ordered)
	if c.IsEmpty() {
		delete(m.carts, sessionID)
	}
	return nil
}

// recordingProvider is an orders provider that keeps submitted drafts.
type recordingProvider struct {
	mu     sync.Mutex
	drafts []*orders.Draft
	err    error
	// onCreate runs while the order is being created.
	onCreate func()
}

func (p *recordingProvider) GetOrder(context.Context, int) (*orders.Order, error) {
	return nil, orders.ErrOrderNotFound
}

func (p *recordingProvider) ListOrders(context.Context, orders.ListFilter) ([]orders.Order, error) {
	return nil, nil
}

func (p *recordingProvider) CreateOrder(_ context.Context, draft *orders.Draft) (*orders.Order, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.onCreate != nil {
		p.onCreate()
	}
	if p.err != nil {
		return nil, p.err
	}
	p.drafts = append(p.drafts, draft)
	return &orders.Order{ID: 1000 + len(p.drafts), Status: orders.OrderStatusAwaitingPayment}, nil
}

func (p *recordingProvider) HealthCheck(context.Context) error { return nil }

type staticUsers struct {
	user *auth.User
}

func (s staticUsers) CurrentUser(context.Context, string) (*auth.User, error) {
	if s.user == nil {
		return nil, auth.ErrNotAuthenticated
	}
	return s.user, nil
}

type fixture struct {
	svc      *CheckoutService
	registry *Registry
	factory  *fakeFactory
	carts    *memoryCarts
	provider *recordingProvider
}

func newFixture(t *testing.T, user *auth.User) *fixture {
	t.Helper()
	return newFixtureWithDebounce(t, user, time.Millisecond)
}

func newFixtureWithDebounce(t *testing.T, user *auth.User, debounce time.Duration) *fixture {
	t.Helper()
	f := &fixture{
		factory:  &fakeFactory{},
		carts:    &memoryCarts{carts: make(map[string]*cart.Cart)},
		provider: &recordingProvider{},
	}
	f.registry = NewRegistry(f.factory, debounce, time.Hour)
	t.Cleanup(f.registry.Close)
	f.svc = NewCheckoutService(f.registry, f.carts, ordersvc.NewOrderService(f.provider), staticUsers{user: user}, nil)
	return f
}

func (f *fixture) fillCart(sessionID string) {
	c := &cart.Cart{}
	_ = c.AddItem(cart.CartItem{ProductID: 1, Name: "Display NFC", UnitPrice: decimal.NewFromInt(15000), Quantity: 2})
	_ = c.AddItem(cart.CartItem{ProductID: 5, Name: "Sticker QR", UnitPrice: decimal.NewFromInt(3000), Quantity: 1})
	f.carts.mu.Lock()
	f.carts.carts[sessionID] = c
	f.carts.mu.Unlock()
}

var rosario = shipping.Address{
	FirstName: "Ana", LastName: "Gómez", Address1: "Córdoba 1200", City: "Rosario",
	StateCode: "S", PostalCode: "2000", Phone: "341555", Email: "ana@example.com",
}

func waitForRates(t *testing.T, svc *CheckoutService, sessionID string) {
	t.Helper()
	require.Eventually(t, func() bool {
		snap, err := svc.Shipping(sessionID)
		return err == nil && snap.State == shipping.StateRatesAvailable
	}, time.Second, 5*time.Millisecond)
}

func TestCheckoutService_StartRequiresItems(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.Start(context.Background(), "sid-1")
	assert.ErrorIs(t, err, orders.ErrEmptyCart)
}

func TestCheckoutService_StartConvergesServerCart(t *testing.T) {
	f := newFixture(t, nil)
	f.fillCart("sid-1")
	f.factory.stores = map[string]*fakeStoreCart{
		"sid-1": newFakeStoreCart(storecart.RemoteCartItem{Key: "stale", ProductID: 9, Quantity: 4}),
	}

	report, err := f.svc.Start(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.True(t, report.Converged)
	assert.Equal(t, shipping.StateUncalculated, report.Shipping.State)

	remote, err := f.factory.stores["sid-1"].GetCart(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 2, 5: 1}, remote.Quantities())
}

func TestCheckoutService_OperationsBeforeStart(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.Shipping("sid-1")
	assert.ErrorIs(t, err, domain.ErrNotStarted)

	_, err = f.svc.SelectRate(context.Background(), "sid-1", 0, "express")
	assert.ErrorIs(t, err, domain.ErrNotStarted)

	_, err = f.svc.PlaceOrder(context.Background(), "sid-1")
	assert.ErrorIs(t, err, domain.ErrNotStarted)
}

func TestCheckoutService_AddressBeforeStartIsQuotedAfterSync(t *testing.T) {
	f := newFixture(t, nil)
	f.fillCart("sid-1")

	snap, err := f.svc.UpdateAddress("sid-1", rosario)
	require.NoError(t, err)
	assert.Equal(t, shipping.StateUncalculated, snap.State)

	_, err = f.svc.Start(context.Background(), "sid-1")
	require.NoError(t, err)
	waitForRates(t, f.svc, "sid-1")
}

func TestCheckoutService_FullCheckout(t *testing.T) {
	f := newFixture(t, &auth.User{ID: 7, Email: "ana@example.com"})
	ctx := context.Background()
	f.fillCart("sid-1")

	_, err := f.svc.Start(ctx, "sid-1")
	require.NoError(t, err)

	_, err = f.svc.UpdateAddress("sid-1", rosario)
	require.NoError(t, err)
	waitForRates(t, f.svc, "sid-1")

	snap, err := f.svc.SelectRate(ctx, "sid-1", 0, "express")
	require.NoError(t, err)
	assert.Equal(t, 1, shipping.CountSelected(snap.Packages))
	selected, ok := shipping.SelectedRate(snap.Packages)
	require.True(t, ok)
	assert.Equal(t, "express", selected.RateID)

	order, err := f.svc.PlaceOrder(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, 1001, order.ID)

	require.Len(t, f.provider.drafts, 1)
	draft := f.provider.drafts[0]
	assert.Len(t, draft.Lines, 2)
	require.NotNil(t, draft.ShippingLine)
	assert.Equal(t, "Express", draft.ShippingLine.MethodTitle)
	assert.True(t, decimal.NewFromInt(3500).Equal(draft.ShippingLine.Total))
	assert.Equal(t, 7, draft.CustomerID)
	assert.Equal(t, "ana@example.com", draft.Billing.Email)

	c, err := f.carts.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	_, err = f.svc.UpdateAddress("sid-1", rosario)
	assert.ErrorIs(t, err, domain.ErrSessionClosed)
	_, err = f.svc.SelectRate(ctx, "sid-1", 0, "flat_rate:1")
	assert.ErrorIs(t, err, domain.ErrSessionClosed)
	_, err = f.svc.PlaceOrder(ctx, "sid-1")
	assert.ErrorIs(t, err, domain.ErrSessionClosed)
}

func TestCheckoutService_NewCheckoutAfterOrder(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.fillCart("sid-1")

	_, err := f.svc.Start(ctx, "sid-1")
	require.NoError(t, err)
	_, err = f.svc.UpdateAddress("sid-1", rosario)
	require.NoError(t, err)
	waitForRates(t, f.svc, "sid-1")
	_, err = f.svc.PlaceOrder(ctx, "sid-1")
	require.NoError(t, err)

	f.fillCart("sid-1")
	_, err = f.svc.Start(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, 2, f.factory.opened, "a closed session is replaced")

	snap, err := f.svc.Shipping("sid-1")
	require.NoError(t, err)
	assert.Equal(t, shipping.StateUncalculated, snap.State)
}

func TestCheckoutService_PlaceOrderFailureKeepsCart(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.fillCart("sid-1")
	f.provider.err = &apperr.APIError{Status: 400, Message: "Método de pago no válido."}

	_, err := f.svc.Start(ctx, "sid-1")
	require.NoError(t, err)
	_, err = f.svc.UpdateAddress("sid-1", rosario)
	require.NoError(t, err)
	waitForRates(t, f.svc, "sid-1")

	_, err = f.svc.PlaceOrder(ctx, "sid-1")
	msg, ok := apperr.Message(err)
	require.True(t, ok)
	assert.Equal(t, "Método de pago no válido.", msg)

	c, err := f.carts.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, c.IsEmpty())

	f.provider.err = nil
	_, err = f.svc.PlaceOrder(ctx, "sid-1")
	require.NoError(t, err, "the session stays open after a failed submission")
}

func TestCheckoutService_PlaceOrderValidation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.fillCart("sid-1")

	_, err := f.svc.Start(ctx, "sid-1")
	require.NoError(t, err)

	incomplete := rosario
	incomplete.Phone = ""
	_, err = f.svc.UpdateAddress("sid-1", incomplete)
	require.NoError(t, err)
	waitForRates(t, f.svc, "sid-1")

	_, err = f.svc.PlaceOrder(ctx, "sid-1")
	assert.True(t, errors.Is(err, orders.ErrIncompleteAddress))
	assert.Empty(t, f.provider.drafts)

	_, err = f.svc.UpdateAddress("sid-1", shipping.Address{FirstName: "Ana"})
	require.NoError(t, err)
	_, err = f.svc.PlaceOrder(ctx, "sid-1")
	assert.ErrorIs(t, err, orders.ErrIncompleteAddress)
	assert.Empty(t, f.provider.drafts)
}

func TestCheckoutService_PlaceOrderWhileQuoteScheduled(t *testing.T) {
	f := newFixtureWithDebounce(t, nil, time.Hour)
	ctx := context.Background()
	f.fillCart("sid-1")

	_, err := f.svc.Start(ctx, "sid-1")
	require.NoError(t, err)
	snap, err := f.svc.UpdateAddress("sid-1", rosario)
	require.NoError(t, err)
	require.Equal(t, shipping.StateCalculating, snap.State)

	_, err = f.svc.PlaceOrder(ctx, "sid-1")
	assert.ErrorIs(t, err, domain.ErrShippingPending)
	assert.Empty(t, f.provider.drafts)

	c, err := f.carts.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, c.IsEmpty())
}

func TestCheckoutService_PlaceOrderAfterFailedQuote(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.fillCart("sid-1")
	f.factory.stores = map[string]*fakeStoreCart{
		"sid-1": {quoteErr: &apperr.APIError{Status: 400, Message: "El código postal no es válido."}},
	}

	_, err := f.svc.Start(ctx, "sid-1")
	require.NoError(t, err)
	_, err = f.svc.UpdateAddress("sid-1", rosario)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		snap, err := f.svc.Shipping("sid-1")
		return err == nil && snap.State == shipping.StateError
	}, time.Second, 5*time.Millisecond)

	_, err = f.svc.PlaceOrder(ctx, "sid-1")
	assert.ErrorIs(t, err, domain.ErrShippingPending)
	assert.Empty(t, f.provider.drafts)
}

func TestCheckoutService_PlaceOrderAfterAddressChange(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.fillCart("sid-1")

	_, err := f.svc.Start(ctx, "sid-1")
	require.NoError(t, err)
	_, err = f.svc.UpdateAddress("sid-1", rosario)
	require.NoError(t, err)
	waitForRates(t, f.svc, "sid-1")
	_, err = f.svc.SelectRate(ctx, "sid-1", 0, "express")
	require.NoError(t, err)

	store := f.factory.stores["sid-1"]
	store.mu.Lock()
	store.hold = make(chan struct{})
	store.mu.Unlock()

	cordoba := rosario
	cordoba.City, cordoba.StateCode, cordoba.PostalCode = "Córdoba", "X", "5000"
	snap, err := f.svc.UpdateAddress("sid-1", cordoba)
	require.NoError(t, err)
	assert.Equal(t, shipping.StateCalculating, snap.State)
	assert.Nil(t, snap.Selected, "the rate chosen for the old address is gone")

	_, err = f.svc.PlaceOrder(ctx, "sid-1")
	assert.ErrorIs(t, err, domain.ErrShippingPending)
	assert.Empty(t, f.provider.drafts)

	close(store.hold)
	waitForRates(t, f.svc, "sid-1")
	_, err = f.svc.SelectRate(ctx, "sid-1", 0, "express")
	require.NoError(t, err)
	_, err = f.svc.PlaceOrder(ctx, "sid-1")
	require.NoError(t, err)
	require.Len(t, f.provider.drafts, 1)
	assert.Equal(t, "5000", f.provider.drafts[0].Billing.PostalCode)
}

func TestCheckoutService_PlaceOrderKeepsLinesAddedMeanwhile(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.fillCart("sid-1")

	_, err := f.svc.Start(ctx, "sid-1")
	require.NoError(t, err)
	_, err = f.svc.UpdateAddress("sid-1", rosario)
	require.NoError(t, err)
	waitForRates(t, f.svc, "sid-1")

	f.provider.onCreate = func() {
		f.carts.mu.Lock()
		defer f.carts.mu.Unlock()
		_ = f.carts.carts["sid-1"].AddItem(cart.CartItem{ProductID: 8, Name: "Llavero NFC", UnitPrice: decimal.NewFromInt(2000), Quantity: 1})
	}

	_, err = f.svc.PlaceOrder(ctx, "sid-1")
	require.NoError(t, err)

	c, err := f.carts.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 8, c.Items[0].ProductID)
}

func TestRegistry_Sweep(t *testing.T) {
	factory := &fakeFactory{}
	registry := NewRegistry(factory, time.Millisecond, time.Hour)
	t.Cleanup(registry.Close)

	_, err := registry.Open("sid-1", false)
	require.NoError(t, err)
	_, err = registry.Open("sid-2", false)
	require.NoError(t, err)

	registry.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, ok := registry.Lookup("sid-2")
	require.True(t, ok)

	assert.Equal(t, 1, registry.Sweep())
	assert.Equal(t, 1, registry.Len())
	_, ok = registry.Lookup("sid-1")
	assert.False(t, ok)
}
