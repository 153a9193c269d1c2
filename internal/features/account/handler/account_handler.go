package handler

import (
	"context"
	"errors"
	"net/http"

	"storefront-gateway/internal/core/apperr"
	"storefront-gateway/internal/core/logger"
	"storefront-gateway/internal/core/server"
	"storefront-gateway/internal/features/account/domain"
	auth "storefront-gateway/internal/features/auth/domain"
	authhandler "storefront-gateway/internal/features/auth/handler"
	orders "storefront-gateway/internal/features/orders/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AccountReader is the part of the account service the handlers need.
type AccountReader interface {
	Orders(ctx context.Context, user *auth.User) ([]orders.Order, error)
	Customer(ctx context.Context, user *auth.User) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, sessionID string, user *auth.User, update domain.CustomerUpdate) (*domain.Customer, error)
}

// AccountHandler serves the logged in shopper's account pages.
type AccountHandler struct {
	account AccountReader
	users   authhandler.UserResolver
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(account AccountReader, users authhandler.UserResolver) *AccountHandler {
	return &AccountHandler{account: account, users: users}
}

// Register mounts the account routes behind RequireUser.
func (h *AccountHandler) Register(r fiber.Router) {
	g := r.Group("/account", authhandler.RequireUser(h.users))
	g.Get("/orders", h.ListOrders)
	g.Get("/customer", h.GetCustomer)
	g.Put("/customer", h.UpdateCustomer)
}

// ListOrders handles GET /account/orders.
// @Summary Order history
// @Tags Account
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Success 200 {array} orders.Order
// @Failure 401 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /account/orders [get]
func (h *AccountHandler) ListOrders(c *fiber.Ctx) error {
	list, err := h.account.Orders(c.UserContext(), authhandler.UserFrom(c))
	if err != nil {
		return h.upstreamError(c, "Failed to list orders", err)
	}
	if list == nil {
		list = []orders.Order{}
	}
	return c.Status(http.StatusOK).JSON(list)
}

// GetCustomer handles GET /account/customer.
// @Summary Customer profile
// @Tags Account
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Success 200 {object} domain.Customer
// @Failure 401 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Router /account/customer [get]
func (h *AccountHandler) GetCustomer(c *fiber.Ctx) error {
	customer, err := h.account.Customer(c.UserContext(), authhandler.UserFrom(c))
	if err != nil {
		return h.upstreamError(c, "Failed to get customer", err)
	}
	return c.Status(http.StatusOK).JSON(customer)
}

// UpdateCustomer handles PUT /account/customer.
// @Summary Update the customer profile
// @Tags Account
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Param customer body domain.CustomerUpdate true "Names and addresses"
// @Success 200 {object} domain.Customer
// @Failure 400 {object} server.ErrorResponse
// @Failure 401 {object} server.ErrorResponse
// @Router /account/customer [put]
func (h *AccountHandler) UpdateCustomer(c *fiber.Ctx) error {
	var req domain.CustomerUpdate
	if err := c.BodyParser(&req); err != nil {
		return server.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}

	customer, err := h.account.UpdateCustomer(c.UserContext(), server.SessionID(c), authhandler.UserFrom(c), req)
	if err != nil {
		if msg, ok := apperr.Message(err); ok && apperr.StatusOf(err) == http.StatusBadRequest {
			return server.RespondError(c, http.StatusBadRequest, msg)
		}
		return h.upstreamError(c, "Failed to update customer", err)
	}
	return c.Status(http.StatusOK).JSON(customer)
}

func (h *AccountHandler) upstreamError(c *fiber.Ctx, msg string, err error) error {
	if errors.Is(err, domain.ErrCustomerNotFound) {
		return server.RespondError(c, http.StatusNotFound, "Cliente no encontrado")
	}
	logger.Get().Error(msg,
		zap.String("session_id", server.SessionID(c)),
		zap.String("ray_id", server.RayID(c)),
		zap.Error(err),
	)
	return server.RespondError(c, http.StatusBadGateway, "Servicio no disponible")
}
