package handler

import (
	"context"
	"errors"
	"net/http"

	"storefront-gateway/internal/core/logger"
	"storefront-gateway/internal/core/server"
	"storefront-gateway/internal/features/orders/domain"
	"storefront-gateway/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderReader looks up an order for the confirmation view.
type OrderReader interface {
	GetOrder(ctx context.Context, orderID, email string) (*domain.Order, error)
}

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	// service is the OrderService instance.
	service OrderReader
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s OrderReader) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

// Register mounts the order routes.
func (h *OrderHandler) Register(r fiber.Router) {
	r.Get("/orders/:id", h.GetOrder)
}

// GetOrder handles the request to retrieve an order with context-aware error handling.
// @Summary Get Order by ID
// @Description Fetch order details using Order ID and the billing Email.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param email query string true "Customer Email"
// @Success 200 {object} domain.Order
// @Failure 400 {object} server.ErrorResponse
// @Failure 401 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	email := c.Query("email")

	if orderID == "" {
		return server.RespondError(c, http.StatusBadRequest, "Order ID is required")
	}

	if email == "" {
		return server.RespondError(c, http.StatusBadRequest, "Email is required")
	}

	order, err := h.service.GetOrder(c.UserContext(), orderID, email)
	if err != nil {
		logger.Get().Error("Failed to fetch order",
			zap.String("order_id", orderID),
			zap.String("ray_id", server.RayID(c)),
			zap.Error(err),
		)

		status := http.StatusInternalServerError
		msg := "Internal Server Error"

		switch {
		case errors.Is(err, service.ErrInvalidOrderID):
			status = http.StatusBadRequest
			msg = "Invalid order ID"
		case errors.Is(err, service.ErrOrderNotFound):
			status = http.StatusNotFound
			msg = "Order not found"
		case errors.Is(err, service.ErrEmailMismatch):
			status = http.StatusUnauthorized
			msg = "Email mismatch"
		}

		return server.RespondError(c, status, msg)
	}

	return c.Status(http.StatusOK).JSON(order)
}
