package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when the store has no product with the requested id.
var ErrProductNotFound = errors.New("product not found")

// StockStatusInStock is WooCommerce's stock_status for purchasable stock.
const StockStatusInStock = "instock"

// Image is a product picture.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Category is a product category.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Product is a sellable item of the store catalog.
type Product struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Slug             string          `json:"slug"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"short_description"`
	Price            decimal.Decimal `json:"price"`
	RegularPrice     decimal.Decimal `json:"regular_price"`
	SalePrice        decimal.Decimal `json:"sale_price"`
	SKU              string          `json:"sku"`
	StockStatus      string          `json:"stock_status"`
	Images           []Image         `json:"images"`
	Categories       []Category      `json:"categories"`
}

// ImageURL returns the main picture, or "" when the product has none.
func (p Product) ImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].Src
}

// OnSale reports whether the product is discounted below its regular price.
func (p Product) OnSale() bool {
	return p.SalePrice.IsPositive() && p.SalePrice.LessThan(p.RegularPrice)
}

// InStock reports whether the product can be bought. An empty status counts as in stock.
func (p Product) InStock() bool {
	return p.StockStatus == "" || p.StockStatus == StockStatusInStock
}

// InCategory reports whether the product belongs to the category with slug.
func (p Product) InCategory(slug string) bool {
	for _, c := range p.Categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}
