package service

import (
	"context"
	"fmt"

	"storefront-gateway/internal/features/account/domain"
	"storefront-gateway/internal/features/account/ports"
	auth "storefront-gateway/internal/features/auth/domain"
	orders "storefront-gateway/internal/features/orders/domain"

	"go.uber.org/zap"
)

// AccountService serves the order history and customer profile of logged in shoppers.
type AccountService struct {
	customers ports.CustomerProvider
	orders    ports.OrderHistory
	users     ports.UserRefresher
	log       *zap.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(customers ports.CustomerProvider, history ports.OrderHistory, users ports.UserRefresher, log *zap.Logger) *AccountService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AccountService{
		customers: customers,
		orders:    history,
		users:     users,
		log:       log,
	}
}

// Orders lists the user's orders by customer id, falling back to the account email.
func (s *AccountService) Orders(ctx context.Context, user *auth.User) ([]orders.Order, error) {
	list, err := s.orders.ListOrders(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}
	return list, nil
}

// Customer returns the WooCommerce customer record of user.
func (s *AccountService) Customer(ctx context.Context, user *auth.User) (*domain.Customer, error) {
	return s.customers.GetCustomer(ctx, user.ID)
}

// UpdateCustomer saves the profile and reloads the session's user so the new
// names show up right away. A failed reload is logged; the update stands.
func (s *AccountService) UpdateCustomer(ctx context.Context, sessionID string, user *auth.User, update domain.CustomerUpdate) (*domain.Customer, error) {
	customer, err := s.customers.UpdateCustomer(ctx, user.ID, update.Normalize())
	if err != nil {
		return nil, err
	}

	if _, err := s.users.RefreshUser(ctx, sessionID); err != nil {
		s.log.Warn("Failed to refresh user after profile update",
			zap.String("session_id", sessionID), zap.Int("user_id", user.ID), zap.Error(err))
	}
	return customer, nil
}
