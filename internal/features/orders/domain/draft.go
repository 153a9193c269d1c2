package domain

import (
	"errors"

	cart "storefront-gateway/internal/features/cart/domain"
	shipping "storefront-gateway/internal/features/shipping/domain"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyCart is returned when placing an order without items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrIncompleteAddress is returned when the billing address lacks required fields.
	ErrIncompleteAddress = errors.New("billing address is incomplete")
	// ErrShippingRateRequired is returned when rates were offered but none is selected.
	ErrShippingRateRequired = errors.New("a shipping rate must be selected")
)

// Line is one product line of an order to be placed.
type Line struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// ShippingLine is the shipping charge of an order to be placed.
type ShippingLine struct {
	MethodID    string          `json:"method_id"`
	MethodTitle string          `json:"method_title"`
	Total       decimal.Decimal `json:"total"`
	// Scale is the number of decimals the total is sent with.
	Scale int `json:"-"`
}

// Draft is an order ready to be submitted to the store.
type Draft struct {
	CustomerID   int
	Billing      shipping.Address
	Shipping     shipping.Address
	Lines        []Line
	ShippingLine *ShippingLine
}

// NewDraft validates the checkout state and builds the order to submit.
// The address is used for both billing and delivery. When the store offered
// rates exactly one must be selected; without rates no shipping line is sent.
func NewDraft(c *cart.Cart, address shipping.Address, packages []shipping.Package, customerID int) (*Draft, error) {
	if c == nil || c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	address = address.Normalize()
	if !address.Complete() {
		return nil, ErrIncompleteAddress
	}

	draft := &Draft{
		CustomerID: customerID,
		Billing:    address,
		Shipping:   address,
		Lines:      make([]Line, 0, len(c.Items)),
	}
	for _, item := range c.Items {
		draft.Lines = append(draft.Lines, Line{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	if shipping.HasRates(packages) {
		if shipping.CountSelected(packages) != 1 {
			return nil, ErrShippingRateRequired
		}
		rate, _ := shipping.SelectedRate(packages)
		draft.ShippingLine = &ShippingLine{
			MethodID:    rate.MethodID,
			MethodTitle: rate.Name,
			Total:       rate.Price(),
			Scale:       rate.CurrencyMinorUnit,
		}
	}

	return draft, nil
}
