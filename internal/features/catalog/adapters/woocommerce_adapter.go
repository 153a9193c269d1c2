package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"storefront-gateway/internal/core/wcapi"
	"storefront-gateway/internal/features/catalog/domain"

	"github.com/shopspring/decimal"
)

// productsPerPage is the REST API maximum page size.
const productsPerPage = 100

// maxPages bounds the listing walk.
const maxPages = 20

// WooCommerceAdapter implements ports.ProductProvider using the WooCommerce REST API.
type WooCommerceAdapter struct {
	api *wcapi.Client
}

// NewWooCommerceAdapter creates a new instance of WooCommerceAdapter.
func NewWooCommerceAdapter(api *wcapi.Client) *WooCommerceAdapter {
	return &WooCommerceAdapter{api: api}
}

// ListProducts walks the published product pages.
func (a *WooCommerceAdapter) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product

	for page := 1; page <= maxPages; page++ {
		query := url.Values{}
		query.Set("status", "publish")
		query.Set("per_page", strconv.Itoa(productsPerPage))
		query.Set("page", strconv.Itoa(page))

		var batch []wcProduct
		if err := a.api.Get(ctx, "/products", query, &batch); err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}

		for _, p := range batch {
			products = append(products, p.toDomain())
		}
		if len(batch) < productsPerPage {
			break
		}
	}

	return products, nil
}

// GetProduct fetches a single product.
func (a *WooCommerceAdapter) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	var p wcProduct
	if err := a.api.Get(ctx, fmt.Sprintf("/products/%d", id), nil, &p); err != nil {
		if wcapi.IsNotFound(err) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}

	product := p.toDomain()
	return &product, nil
}

// internal structs for mapping

type wcProduct struct {
	ID               int          `json:"id"`
	Name             string       `json:"name"`
	Slug             string       `json:"slug"`
	Description      string       `json:"description"`
	ShortDescription string       `json:"short_description"`
	Price            string       `json:"price"`
	RegularPrice     string       `json:"regular_price"`
	SalePrice        string       `json:"sale_price"`
	SKU              string       `json:"sku"`
	StockStatus      string       `json:"stock_status"`
	Images           []wcImage    `json:"images"`
	Categories       []wcCategory `json:"categories"`
}

type wcImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type wcCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (p wcProduct) toDomain() domain.Product {
	out := domain.Product{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Price:            parsePrice(p.Price),
		RegularPrice:     parsePrice(p.RegularPrice),
		SalePrice:        parsePrice(p.SalePrice),
		SKU:              p.SKU,
		StockStatus:      p.StockStatus,
		Images:           make([]domain.Image, 0, len(p.Images)),
		Categories:       make([]domain.Category, 0, len(p.Categories)),
	}
	for _, img := range p.Images {
		out.Images = append(out.Images, domain.Image{Src: img.Src, Alt: img.Alt})
	}
	for _, c := range p.Categories {
		out.Categories = append(out.Categories, domain.Category{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	return out
}

// parsePrice reads the REST API's decimal strings. Empty or malformed values are zero.
func parsePrice(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

