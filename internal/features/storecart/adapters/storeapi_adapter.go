package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"storefront-gateway/internal/core/apperr"
	"storefront-gateway/internal/core/config"
	"storefront-gateway/internal/core/logger"
	shipping "storefront-gateway/internal/features/shipping/domain"
	"storefront-gateway/internal/features/storecart/domain"

	"go.uber.org/zap"
)

const storeAPIPath = "/wp-json/wc/store/v1"

// Header names used by the Store API. The legacy nonce header is still sent
// by older WooCommerce Blocks releases.
const (
	headerNonce       = "Nonce"
	headerLegacyNonce = "X-WC-Store-API-Nonce"
	headerCartToken   = "Cart-Token"
)

// StoreAPIAdapter implements ports.StoreCart against the WooCommerce Store API.
// One adapter serves one shopper session: its client carries the session's
// cookie jar and creds holds the session's cart token and nonce.
type StoreAPIAdapter struct {
	// client must carry a cookie jar; cookies are the secondary session channel.
	client *http.Client
	// baseURL is the Store API root.
	baseURL string
	// fallbackURL mints a nonce when response headers do not expose one.
	fallbackURL string
	// creds is updated from every response and sent on every request.
	creds *domain.Credentials
	log   *zap.Logger
}

// NewStoreAPIAdapter creates an adapter bound to one session's credentials.
func NewStoreAPIAdapter(cfg config.WooCommerceConfig, client *http.Client, creds *domain.Credentials) *StoreAPIAdapter {
	root := strings.TrimRight(cfg.URL, "/")
	fallback := ""
	if cfg.NonceFallbackPath != "" {
		fallback = root + "/" + strings.TrimLeft(cfg.NonceFallbackPath, "/")
	}

	return &StoreAPIAdapter{
		client:      client,
		baseURL:     root + storeAPIPath,
		fallbackURL: fallback,
		creds:       creds,
		log:         logger.Named("storecart"),
	}
}

// GetCart fetches the cart. When no nonce arrived in the headers the
// fallback endpoint is asked for one; a fallback failure only gets logged.
func (a *StoreAPIAdapter) GetCart(ctx context.Context) (*domain.RemoteCartSession, error) {
	session, err := a.do(ctx, http.MethodGet, "/cart", nil)
	if err != nil {
		return nil, err
	}

	if !a.creds.HasNonce() {
		if err := a.fetchFallbackNonce(ctx); err != nil {
			a.log.Warn("Nonce fallback failed", zap.Error(err))
		}
		session.CartToken, session.Nonce = a.creds.Snapshot()
	}

	return session, nil
}

// AddItem adds quantity units of productID.
func (a *StoreAPIAdapter) AddItem(ctx context.Context, productID, quantity int) (*domain.RemoteCartSession, error) {
	return a.do(ctx, http.MethodPost, "/cart/add-item", map[string]int{
		"id":       productID,
		"quantity": quantity,
	})
}

// RemoveItem removes the cart line identified by key.
func (a *StoreAPIAdapter) RemoveItem(ctx context.Context, key string) (*domain.RemoteCartSession, error) {
	return a.do(ctx, http.MethodPost, "/cart/remove-item", map[string]string{"key": key})
}

// UpdateCustomer sends both addresses; the answer carries recalculated shipping packages.
func (a *StoreAPIAdapter) UpdateCustomer(ctx context.Context, billing, shippingAddr shipping.Address) (*domain.RemoteCartSession, error) {
	return a.do(ctx, http.MethodPost, "/cart/update-customer", updateCustomerRequest{
		BillingAddress:  toStoreAddress(billing.Normalize(), true),
		ShippingAddress: toStoreAddress(shippingAddr.Normalize(), false),
	})
}

// SelectShippingRate selects rateID for packageID.
func (a *StoreAPIAdapter) SelectShippingRate(ctx context.Context, packageID int, rateID string) (*domain.RemoteCartSession, error) {
	return a.do(ctx, http.MethodPost, "/cart/select-shipping-rate", map[string]any{
		"package_id": packageID,
		"rate_id":    rateID,
	})
}

// do sends one Store API request with the latest credentials and captures
// fresher ones from the response, whatever its status.
func (a *StoreAPIAdapter) do(ctx context.Context, method, path string, body any) (*domain.RemoteCartSession, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	cartToken, nonce := a.creds.Snapshot()
	if nonce != "" {
		req.Header.Set(headerNonce, nonce)
	}
	if cartToken != "" {
		req.Header.Set(headerCartToken, cartToken)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store API %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	a.captureCredentials(resp.Header)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperr.FromResponse(resp, fmt.Sprintf("store API returned status: %d", resp.StatusCode))
	}

	var cart storeCart
	if err := json.NewDecoder(resp.Body).Decode(&cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}

	session := cart.toDomain()
	session.CartToken, session.Nonce = a.creds.Snapshot()
	return session, nil
}

func (a *StoreAPIAdapter) captureCredentials(h http.Header) {
	nonce := h.Get(headerNonce)
	if nonce == "" {
		nonce = h.Get(headerLegacyNonce)
	}
	a.creds.Update(h.Get(headerCartToken), nonce)
}

// fetchFallbackNonce asks the side channel endpoint for a nonce using the
// session's cookies. Accepts {"nonce": "..."} and the admin-ajax
// {"success": true, "data": {"nonce": "..."}} shapes.
func (a *StoreAPIAdapter) fetchFallbackNonce(ctx context.Context) error {
	if a.fallbackURL == "" {
		return fmt.Errorf("no nonce fallback configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.fallbackURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create nonce request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("nonce request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("nonce endpoint returned status: %d", resp.StatusCode)
	}

	var payload struct {
		Nonce string `json:"nonce"`
		Data  struct {
			Nonce string `json:"nonce"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode nonce: %w", err)
	}

	nonce := payload.Nonce
	if nonce == "" {
		nonce = payload.Data.Nonce
	}
	if nonce == "" {
		return fmt.Errorf("nonce endpoint returned no nonce")
	}

	a.creds.Update("", nonce)
	a.log.Debug("Nonce obtained from fallback endpoint")
	return nil
}

// internal structs for mapping

// storeCart is the cart resource returned by every Store API cart route.
type storeCart struct {
	Items         []storeItem    `json:"items"`
	Totals        storeTotals    `json:"totals"`
	ShippingRates []storePackage `json:"shipping_rates"`
}

type storeItem struct {
	Key      string `json:"key"`
	ID       int    `json:"id"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

// storeTotals holds amounts as minor unit strings, e.g. "1500" for 15.00.
type storeTotals struct {
	TotalItems        numeric `json:"total_items"`
	TotalTax          numeric `json:"total_tax"`
	TotalShipping     numeric `json:"total_shipping"`
	TotalPrice        numeric `json:"total_price"`
	CurrencyCode      string  `json:"currency_code"`
	CurrencyMinorUnit int     `json:"currency_minor_unit"`
}

type storePackage struct {
	PackageID     numeric      `json:"package_id"`
	Name          string       `json:"name"`
	Destination   storeAddress `json:"destination"`
	ShippingRates []storeRate  `json:"shipping_rates"`
}

type storeRate struct {
	RateID            string  `json:"rate_id"`
	Name              string  `json:"name"`
	MethodID          string  `json:"method_id"`
	Price             numeric `json:"price"`
	CurrencyMinorUnit int     `json:"currency_minor_unit"`
	Selected          bool    `json:"selected"`
}

type storeAddress struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

type updateCustomerRequest struct {
	BillingAddress  storeAddress `json:"billing_address"`
	ShippingAddress storeAddress `json:"shipping_address"`
}

func toStoreAddress(a shipping.Address, withEmail bool) storeAddress {
	out := storeAddress{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Address1:  a.Address1,
		City:      a.City,
		State:     a.StateCode,
		Postcode:  a.PostalCode,
		Country:   a.Country,
		Phone:     a.Phone,
	}
	if withEmail {
		out.Email = a.Email
	}
	return out
}

func (c storeCart) toDomain() *domain.RemoteCartSession {
	session := &domain.RemoteCartSession{
		Items: make([]domain.RemoteCartItem, 0, len(c.Items)),
		Totals: domain.Totals{
			Subtotal:          int64(c.Totals.TotalItems),
			Tax:               int64(c.Totals.TotalTax),
			ShippingTotal:     int64(c.Totals.TotalShipping),
			Total:             int64(c.Totals.TotalPrice),
			CurrencyCode:      c.Totals.CurrencyCode,
			CurrencyMinorUnit: c.Totals.CurrencyMinorUnit,
		},
		ShippingPackages: make([]shipping.Package, 0, len(c.ShippingRates)),
	}

	for _, item := range c.Items {
		session.Items = append(session.Items, domain.RemoteCartItem{
			Key:       item.Key,
			ProductID: item.ID,
			Quantity:  item.Quantity,
			Name:      item.Name,
		})
	}

	for _, pkg := range c.ShippingRates {
		out := shipping.Package{
			PackageID: int(pkg.PackageID),
			Name:      pkg.Name,
			Destination: shipping.Address{
				Address1:   pkg.Destination.Address1,
				City:       pkg.Destination.City,
				StateCode:  pkg.Destination.State,
				PostalCode: pkg.Destination.Postcode,
				Country:    pkg.Destination.Country,
			},
			Rates: make([]shipping.Rate, 0, len(pkg.ShippingRates)),
		}
		for _, rate := range pkg.ShippingRates {
			out.Rates = append(out.Rates, shipping.Rate{
				RateID:            rate.RateID,
				Name:              rate.Name,
				MethodID:          rate.MethodID,
				PriceMinorUnits:   int64(rate.Price),
				CurrencyMinorUnit: rate.CurrencyMinorUnit,
				Selected:          rate.Selected,
			})
		}
		session.ShippingPackages = append(session.ShippingPackages, out)
	}

	return session
}

// numeric accepts the Store API's mix of quoted, bare and null integers.
type numeric int64

// UnmarshalJSON parses "1500", 1500, "" and null.
func (n *numeric) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %q: %w", s, err)
	}
	*n = numeric(v)
	return nil
}
