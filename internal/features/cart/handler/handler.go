package handler

import (
	"errors"
	"net/http"

	"storefront-gateway/internal/core/logger"
	"storefront-gateway/internal/core/server"
	"storefront-gateway/internal/features/cart/domain"
	"storefront-gateway/internal/features/cart/ports"
	catalog "storefront-gateway/internal/features/catalog/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartHandler handles HTTP requests for the shopper's cart.
type CartHandler struct {
	service ports.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// Register mounts the cart routes.
func (h *CartHandler) Register(r fiber.Router) {
	r.Get("/cart", h.GetCart)
	r.Delete("/cart", h.ClearCart)
	r.Post("/cart/items", h.AddItem)
	r.Patch("/cart/items/:productId", h.UpdateItem)
	r.Delete("/cart/items/:productId", h.RemoveItem)
}

// CartResponse is the cart with its derived totals.
type CartResponse struct {
	Items      []domain.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice decimal.Decimal   `json:"total_price"`
}

func newCartResponse(c *domain.Cart) CartResponse {
	items := c.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return CartResponse{
		Items:      items,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}

// AddItemRequest represents the request body for adding a product.
type AddItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// UpdateItemRequest represents the request body for changing a quantity.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles GET /cart.
// @Summary Get the cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Success 200 {object} CartResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	cart, err := h.service.Get(c.UserContext(), server.SessionID(c))
	if err != nil {
		return h.internalError(c, "Failed to get cart", err)
	}
	return c.Status(http.StatusOK).JSON(newCartResponse(cart))
}

// AddItem handles POST /cart/items.
// @Summary Add a product to the cart
// @Description Adds units of a product; an existing line has its quantity increased.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Param item body AddItemRequest true "Product and quantity"
// @Success 200 {object} CartResponse
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return server.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.service.AddProduct(c.UserContext(), server.SessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuantity):
			return server.RespondError(c, http.StatusBadRequest, "La cantidad debe ser al menos 1")
		case errors.Is(err, catalog.ErrProductNotFound):
			return server.RespondError(c, http.StatusNotFound, "Producto no encontrado")
		}
		return h.internalError(c, "Failed to add item", err)
	}

	return c.Status(http.StatusOK).JSON(newCartResponse(cart))
}

// UpdateItem handles PATCH /cart/items/:productId.
// @Summary Change a line quantity
// @Description A quantity of zero or less removes the line.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Param productId path int true "Product ID"
// @Param item body UpdateItemRequest true "New quantity"
// @Success 200 {object} CartResponse
// @Failure 400 {object} server.ErrorResponse
// @Router /cart/items/{productId} [patch]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return server.RespondError(c, http.StatusBadRequest, "Invalid product ID")
	}

	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return server.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}

	cart, err := h.service.UpdateQuantity(c.UserContext(), server.SessionID(c), productID, req.Quantity)
	if err != nil {
		return h.internalError(c, "Failed to update item", err)
	}
	return c.Status(http.StatusOK).JSON(newCartResponse(cart))
}

// RemoveItem handles DELETE /cart/items/:productId.
// @Summary Remove a product from the cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Param productId path int true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 400 {object} server.ErrorResponse
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return server.RespondError(c, http.StatusBadRequest, "Invalid product ID")
	}

	cart, err := h.service.RemoveItem(c.UserContext(), server.SessionID(c), productID)
	if err != nil {
		return h.internalError(c, "Failed to remove item", err)
	}
	return c.Status(http.StatusOK).JSON(newCartResponse(cart))
}

// ClearCart handles DELETE /cart.
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Success 200 {object} CartResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	if err := h.service.Clear(c.UserContext(), server.SessionID(c)); err != nil {
		return h.internalError(c, "Failed to clear cart", err)
	}
	return c.Status(http.StatusOK).JSON(newCartResponse(&domain.Cart{}))
}

func (h *CartHandler) internalError(c *fiber.Ctx, msg string, err error) error {
	logger.Get().Error(msg,
		zap.String("session_id", server.SessionID(c)),
		zap.String("ray_id", server.RayID(c)),
		zap.Error(err),
	)
	return server.RespondError(c, http.StatusInternalServerError, "Internal server error")
}
