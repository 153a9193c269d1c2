package handler

import (
	"context"
	"errors"
	"net/http"

	"storefront-gateway/internal/core/apperr"
	"storefront-gateway/internal/core/logger"
	"storefront-gateway/internal/core/server"
	"storefront-gateway/internal/features/checkout/domain"
	"storefront-gateway/internal/features/checkout/service"
	orders "storefront-gateway/internal/features/orders/domain"
	shipping "storefront-gateway/internal/features/shipping/domain"
	shipservice "storefront-gateway/internal/features/shipping/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Checkout is the part of the checkout service the handlers need.
type Checkout interface {
	Start(ctx context.Context, sessionID string) (*service.SyncReport, error)
	UpdateAddress(sessionID string, address shipping.Address) (shipservice.Snapshot, error)
	Shipping(sessionID string) (shipservice.Snapshot, error)
	SelectRate(ctx context.Context, sessionID string, packageID int, rateID string) (shipservice.Snapshot, error)
	PlaceOrder(ctx context.Context, sessionID string) (*orders.Order, error)
}

// CheckoutHandler exposes the checkout flow to the storefront.
type CheckoutHandler struct {
	checkout Checkout
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkout Checkout) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Register mounts the checkout routes.
func (h *CheckoutHandler) Register(r fiber.Router) {
	r.Post("/checkout/sync", h.Sync)
	r.Put("/checkout/address", h.UpdateAddress)
	r.Get("/checkout/shipping", h.Shipping)
	r.Post("/checkout/shipping/select", h.SelectRate)
	r.Post("/checkout/orders", h.PlaceOrder)
}

// SelectRateRequest picks one rate of one shipping package.
type SelectRateRequest struct {
	PackageID int    `json:"package_id"`
	RateID    string `json:"rate_id"`
}

// Sync handles POST /checkout/sync.
// @Summary Sync the cart with the store
// @Description Replays the local cart onto the store cart. Lines the store refuses are reported, not fatal.
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Success 200 {object} service.SyncReport
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /checkout/sync [post]
func (h *CheckoutHandler) Sync(c *fiber.Ctx) error {
	report, err := h.checkout.Start(c.UserContext(), server.SessionID(c))
	if err != nil {
		return h.respondError(c, "Cart sync failed", err)
	}
	return c.Status(http.StatusOK).JSON(report)
}

// UpdateAddress handles PUT /checkout/address.
// @Summary Set the shipping address
// @Description Records the address; shipping is quoted after a short quiet period once the address is calculable.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Param address body shipping.Address true "Billing and shipping address"
// @Success 200 {object} shipservice.Snapshot
// @Failure 400 {object} server.ErrorResponse
// @Failure 409 {object} server.ErrorResponse
// @Router /checkout/address [put]
func (h *CheckoutHandler) UpdateAddress(c *fiber.Ctx) error {
	var address shipping.Address
	if err := c.BodyParser(&address); err != nil {
		return server.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}

	snap, err := h.checkout.UpdateAddress(server.SessionID(c), address)
	if err != nil {
		return h.respondError(c, "Address update failed", err)
	}
	return c.Status(http.StatusOK).JSON(snap)
}

// Shipping handles GET /checkout/shipping.
// @Summary Current shipping state
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Success 200 {object} shipservice.Snapshot
// @Failure 409 {object} server.ErrorResponse
// @Router /checkout/shipping [get]
func (h *CheckoutHandler) Shipping(c *fiber.Ctx) error {
	snap, err := h.checkout.Shipping(server.SessionID(c))
	if err != nil {
		return h.respondError(c, "Shipping lookup failed", err)
	}
	return c.Status(http.StatusOK).JSON(snap)
}

// SelectRate handles POST /checkout/shipping/select.
// @Summary Select a shipping rate
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Param selection body SelectRateRequest true "Package and rate"
// @Success 200 {object} shipservice.Snapshot
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /checkout/shipping/select [post]
func (h *CheckoutHandler) SelectRate(c *fiber.Ctx) error {
	var req SelectRateRequest
	if err := c.BodyParser(&req); err != nil || req.RateID == "" {
		return server.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}

	snap, err := h.checkout.SelectRate(c.UserContext(), server.SessionID(c), req.PackageID, req.RateID)
	if err != nil {
		return h.respondError(c, "Rate selection failed", err)
	}
	return c.Status(http.StatusOK).JSON(snap)
}

// PlaceOrder handles POST /checkout/orders.
// @Summary Place the order
// @Description Submits the order with offline bank transfer. On success the cart is emptied and the checkout closed.
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Success 201 {object} orders.Order
// @Failure 400 {object} server.ErrorResponse
// @Failure 409 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /checkout/orders [post]
func (h *CheckoutHandler) PlaceOrder(c *fiber.Ctx) error {
	order, err := h.checkout.PlaceOrder(c.UserContext(), server.SessionID(c))
	if err != nil {
		return h.respondError(c, "Order placement failed", err)
	}
	return c.Status(http.StatusCreated).JSON(order)
}

func (h *CheckoutHandler) respondError(c *fiber.Ctx, logMsg string, err error) error {
	switch {
	case errors.Is(err, orders.ErrEmptyCart):
		return server.RespondError(c, http.StatusBadRequest, "Tu carrito está vacío")
	case errors.Is(err, orders.ErrIncompleteAddress):
		return server.RespondError(c, http.StatusBadRequest, "Completá los datos de facturación y envío")
	case errors.Is(err, orders.ErrShippingRateRequired):
		return server.RespondError(c, http.StatusBadRequest, "Seleccioná un método de envío")
	case errors.Is(err, shipping.ErrRateNotFound):
		return server.RespondError(c, http.StatusNotFound, "Método de envío no disponible")
	case errors.Is(err, domain.ErrNotStarted):
		return server.RespondError(c, http.StatusConflict, "El checkout no fue iniciado")
	case errors.Is(err, domain.ErrSessionClosed):
		return server.RespondError(c, http.StatusConflict, "El pedido ya fue realizado")
	case errors.Is(err, domain.ErrShippingPending):
		return server.RespondError(c, http.StatusConflict, "Todavía estamos calculando el envío para esta dirección")
	}

	logger.Get().Error(logMsg,
		zap.String("session_id", server.SessionID(c)),
		zap.String("ray_id", server.RayID(c)),
		zap.Error(err),
	)

	if msg, ok := apperr.Message(err); ok {
		status := apperr.StatusOf(err)
		if status < 400 || status >= 500 {
			status = http.StatusBadGateway
		}
		return server.RespondError(c, status, msg)
	}
	return server.RespondError(c, http.StatusBadGateway, "No pudimos comunicarnos con la tienda. Intentá de nuevo.")
}
