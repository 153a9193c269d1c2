package adapter

import (
	"fmt"
	"net/http/cookiejar"

	"storefront-gateway/internal/core/config"
	"storefront-gateway/internal/core/httpclient"
	storeadapter "storefront-gateway/internal/features/storecart/adapters"
	storecart "storefront-gateway/internal/features/storecart/domain"
	storeports "storefront-gateway/internal/features/storecart/ports"

	"golang.org/x/net/publicsuffix"
)

// StoreCartFactory builds one Store API client per shopper session. Clients
// share the outbound transport but never credentials or cookies.
type StoreCartFactory struct {
	cfg     config.WooCommerceConfig
	clients *httpclient.Factory
}

// NewStoreCartFactory creates a new StoreCartFactory.
func NewStoreCartFactory(cfg config.WooCommerceConfig, clients *httpclient.Factory) *StoreCartFactory {
	return &StoreCartFactory{cfg: cfg, clients: clients}
}

// NewStoreCart returns a Store API client with a fresh cookie jar and credentials.
func (f *StoreCartFactory) NewStoreCart(sessionID string) (storeports.StoreCart, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar for %s: %w", sessionID, err)
	}
	return storeadapter.NewStoreAPIAdapter(f.cfg, f.clients.NewClient(jar), &storecart.Credentials{}), nil
}
