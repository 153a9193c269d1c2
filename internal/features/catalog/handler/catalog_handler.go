package handler

import (
	"context"
	"errors"
	"net/http"

	"storefront-gateway/internal/core/logger"
	"storefront-gateway/internal/core/server"
	"storefront-gateway/internal/features/catalog/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProductReader is the catalog service as seen by the handler.
type ProductReader interface {
	ListProducts(ctx context.Context, category string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
}

// CatalogHandler handles HTTP requests for products.
type CatalogHandler struct {
	service ProductReader
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service ProductReader) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Register mounts the catalog routes.
func (h *CatalogHandler) Register(r fiber.Router) {
	r.Get("/products", h.ListProducts)
	r.Get("/products/:id", h.GetProduct)
}

// ListProducts handles GET /products.
// @Summary List products
// @Description Returns the published products, optionally filtered by category slug.
// @Tags Catalog
// @Produce json
// @Param category query string false "Category slug"
// @Success 200 {array} domain.Product
// @Failure 502 {object} server.ErrorResponse
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.UserContext(), c.Query("category"))
	if err != nil {
		logger.Get().Error("Failed to list products", zap.String("ray_id", server.RayID(c)), zap.Error(err))
		return server.RespondError(c, http.StatusBadGateway, "No se pudieron cargar los productos")
	}

	return c.Status(http.StatusOK).JSON(products)
}

// GetProduct handles GET /products/:id.
// @Summary Get a product
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return server.RespondError(c, http.StatusBadRequest, "Invalid product ID")
	}

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return server.RespondError(c, http.StatusNotFound, "Producto no encontrado")
		}
		logger.Get().Error("Failed to get product",
			zap.Int("product_id", id),
			zap.String("ray_id", server.RayID(c)),
			zap.Error(err),
		)
		return server.RespondError(c, http.StatusBadGateway, "No se pudo cargar el producto")
	}

	return c.Status(http.StatusOK).JSON(product)
}
