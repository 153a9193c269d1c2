package domain

import (
	"errors"
	"time"

	shipping "storefront-gateway/internal/features/shipping/domain"

	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when the store has no order with the requested id.
var ErrOrderNotFound = errors.New("order not found")

// OrderStatus represents the current state of an order.
type OrderStatus string

const (
	// OrderStatusAwaitingPayment indicates the order waits for the bank transfer.
	OrderStatusAwaitingPayment OrderStatus = "AWAITING_PAYMENT"
	// OrderStatusCreated indicates the payment was received and the order is being prepared.
	OrderStatusCreated OrderStatus = "CREATED"
	// OrderStatusShipped indicates the order has been handed to the carrier.
	OrderStatusShipped OrderStatus = "SHIPPED"
	// OrderStatusCompleted indicates the order has been delivered and finalized.
	OrderStatusCompleted OrderStatus = "COMPLETED"
	// OrderStatusCancelled indicates the order was cancelled, refunded or failed.
	OrderStatusCancelled OrderStatus = "CANCELLED"
	// OrderStatusUnknown is used for statuses added by plugins.
	OrderStatusUnknown OrderStatus = "UNKNOWN"
)

// TrackingInfo represents shipment tracking details for an order.
type TrackingInfo struct {
	// TrackingProvider is the name of the shipping carrier (e.g., Andreani, Correo Argentino).
	TrackingProvider string `json:"tracking_provider"`
	// TrackingNumber is the unique tracking identifier provided by the carrier.
	TrackingNumber string `json:"tracking_number"`
}

// Order represents a customer order in the system.
type Order struct {
	// ID is the unique identifier for the order.
	ID int `json:"order_id"`
	// Number is the order number shown to the shopper.
	Number string `json:"number"`
	// Status represents the current state of the order.
	Status OrderStatus `json:"status"`
	// CustomerID is the WordPress user id, 0 for guest orders.
	CustomerID int `json:"customer_id"`
	// Billing is the billing address, including email and phone.
	Billing shipping.Address `json:"billing"`
	// Shipping is the delivery address.
	Shipping shipping.Address `json:"shipping"`
	// PaymentMethod is the display name of the payment method.
	PaymentMethod string `json:"payment_method"`
	// ShippingMethod is the display name of the selected shipping rate.
	ShippingMethod string `json:"shipping_method,omitempty"`
	// ShippingTotal is the shipping cost.
	ShippingTotal decimal.Decimal `json:"shipping_total"`
	// Total is the grand total.
	Total decimal.Decimal `json:"total"`
	// Currency is the ISO currency code.
	Currency string `json:"currency"`
	// Tracking contains shipment tracking information.
	Tracking []TrackingInfo `json:"tracking"`
	// CreatedAt is the timestamp when the order was created.
	CreatedAt time.Time `json:"create_date"`
	// Items contains the list of products included in the order.
	Items []OrderItem `json:"items"`
}

// Email is the billing email the order was placed with.
func (o *Order) Email() string {
	return o.Billing.Email
}

// OrderItem represents an individual item within an order.
type OrderItem struct {
	// ProductID is the ordered product.
	ProductID int `json:"product_id"`
	// Quantity is the number of units purchased.
	Quantity int `json:"quantity"`
	// SKU is the Stock Keeping Unit identifier for the product.
	SKU string `json:"sku"`
	// Name is the descriptive name of the product.
	Name string `json:"name"`
	// Picture is the URL to an image of the product.
	Picture string `json:"picture"`
	// Total is the line total.
	Total decimal.Decimal `json:"total"`
}

// ListFilter selects a shopper's orders. CustomerID wins over Email when set.
type ListFilter struct {
	CustomerID int
	Email      string
}
