package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidQuantity is returned when adding fewer than one unit.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// CartItem is one product line of the shopper's cart.
type CartItem struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"image_url"`
}

// LineTotal is the unit price times the quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the shopper's local cart. Items keep insertion order and hold at
// most one line per product.
type Cart struct {
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AddItem merges item into the cart, adding to the quantity of an existing line.
func (c *Cart) AddItem(item CartItem) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}

	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			c.touch()
			return nil
		}
	}

	c.Items = append(c.Items, item)
	c.touch()
	return nil
}

// RemoveItem drops the line for productID. Removing an absent product is a no-op.
func (c *Cart) RemoveItem(productID int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.touch()
			return
		}
	}
}

// UpdateQuantity sets the quantity of productID. A quantity of zero or less removes the line.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			c.touch()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
	c.touch()
}

// Deduct subtracts the quantities of lines from the matching cart lines,
// dropping lines that reach zero. Lines added after the snapshot was taken
// are kept.
func (c *Cart) Deduct(lines []CartItem) {
	for _, line := range lines {
		if current, ok := c.Item(line.ProductID); ok {
			c.UpdateQuantity(line.ProductID, current.Quantity-line.Quantity)
		}
	}
}

// Item returns the line for productID.
func (c *Cart) Item(productID int) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return CartItem{}, false
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalItems is the number of units across all lines.
func (c *Cart) TotalItems() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// TotalPrice is the sum of every line total.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now()
}
