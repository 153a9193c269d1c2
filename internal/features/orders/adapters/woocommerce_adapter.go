package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront-gateway/internal/core/config"
	"storefront-gateway/internal/core/logger"
	"storefront-gateway/internal/core/wcapi"
	"storefront-gateway/internal/features/orders/domain"
	shipping "storefront-gateway/internal/features/shipping/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// historyPageSize is how many orders the account history shows.
const historyPageSize = 20

// WooCommerceAdapter implements the OrderProvider interface using the WooCommerce REST API.
type WooCommerceAdapter struct {
	// api is the authenticated REST client.
	api *wcapi.Client
	// config holds the payment method sent with every order.
	config config.WooCommerceConfig
}

// NewWooCommerceAdapter creates a new instance of WooCommerceAdapter.
func NewWooCommerceAdapter(cfg config.WooCommerceConfig, api *wcapi.Client) *WooCommerceAdapter {
	return &WooCommerceAdapter{
		api:    api,
		config: cfg,
	}
}

// GetOrder fetches an order from WooCommerce and maps it to the domain entity.
func (a *WooCommerceAdapter) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	var wcOrder woocommerceOrder
	if err := a.api.Get(ctx, fmt.Sprintf("/orders/%d", orderID), nil, &wcOrder); err != nil {
		if wcapi.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %d", domain.ErrOrderNotFound, orderID)
		}
		return nil, err
	}

	return mapToDomain(wcOrder), nil
}

// ListOrders fetches the latest orders of a customer id, or of a billing email for guests.
func (a *WooCommerceAdapter) ListOrders(ctx context.Context, filter domain.ListFilter) ([]domain.Order, error) {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(historyPageSize))
	query.Set("orderby", "date")
	query.Set("order", "desc")

	switch {
	case filter.CustomerID > 0:
		query.Set("customer", strconv.Itoa(filter.CustomerID))
	case filter.Email != "":
		query.Set("search", filter.Email)
	default:
		return nil, fmt.Errorf("list orders: customer id or email is required")
	}

	var wcOrders []woocommerceOrder
	if err := a.api.Get(ctx, "/orders", query, &wcOrders); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(wcOrders))
	for _, o := range wcOrders {
		// search matches any field; keep only the shopper's own orders.
		if filter.CustomerID == 0 && !strings.EqualFold(o.Billing.Email, filter.Email) {
			continue
		}
		orders = append(orders, *mapToDomain(o))
	}
	return orders, nil
}

// CreateOrder posts the order with the configured offline payment method, unpaid.
func (a *WooCommerceAdapter) CreateOrder(ctx context.Context, draft *domain.Draft) (*domain.Order, error) {
	payload := createOrderRequest{
		PaymentMethod:      a.config.PaymentMethod,
		PaymentMethodTitle: a.config.PaymentMethodTitle,
		SetPaid:            false,
		CustomerID:         draft.CustomerID,
		Billing:            toAddress(draft.Billing, true),
		Shipping:           toAddress(draft.Shipping, false),
		LineItems:          make([]wcLineItemRequest, 0, len(draft.Lines)),
	}
	for _, line := range draft.Lines {
		payload.LineItems = append(payload.LineItems, wcLineItemRequest{ProductID: line.ProductID, Quantity: line.Quantity})
	}
	if sl := draft.ShippingLine; sl != nil {
		payload.ShippingLines = []wcShippingLineRequest{{
			MethodID:    sl.MethodID,
			MethodTitle: sl.MethodTitle,
			Total:       sl.Total.StringFixed(int32(sl.Scale)),
		}}
	}

	var created woocommerceOrder
	if err := a.api.Post(ctx, "/orders", payload, &created); err != nil {
		return nil, err
	}

	logger.Get().Info("Order created",
		zap.Int("order_id", created.ID),
		zap.Int("lines", len(payload.LineItems)),
		zap.Bool("shipping_line", len(payload.ShippingLines) > 0),
	)

	return mapToDomain(created), nil
}

// HealthCheck verifies that the WooCommerce API is reachable and credentials are valid.
func (a *WooCommerceAdapter) HealthCheck(ctx context.Context) error {
	// Check orders endpoint with per_page=1 to verify auth and reachability
	query := url.Values{}
	query.Set("per_page", "1")

	if err := a.api.Get(ctx, "/orders", query, nil); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// mapToDomain converts a raw WooCommerce order response into a domain Order entity.
func mapToDomain(wcOrder woocommerceOrder) *domain.Order {
	tracking := extractTrackingInfo(wcOrder)

	order := &domain.Order{
		ID:            wcOrder.ID,
		Number:        wcOrder.Number,
		Status:        mapStatus(wcOrder.Status, tracking),
		CustomerID:    wcOrder.CustomerID,
		Billing:       wcOrder.Billing.toDomain(),
		Shipping:      wcOrder.Shipping.toDomain(),
		PaymentMethod: wcOrder.PaymentMethodTitle,
		ShippingTotal: parseAmount(wcOrder.ShippingTotal),
		Total:         parseAmount(wcOrder.Total),
		Currency:      wcOrder.Currency,
		Tracking:      tracking,
		CreatedAt:     time.Time(wcOrder.DateCreated),
		Items:         mapItems(wcOrder.LineItems),
	}
	if len(wcOrder.ShippingLines) > 0 {
		order.ShippingMethod = wcOrder.ShippingLines[0].MethodTitle
	}
	if order.Number == "" {
		order.Number = strconv.Itoa(wcOrder.ID)
	}
	return order
}

// mapStatus determines the domain OrderStatus based on WooCommerce status and tracking info.
func mapStatus(status string, tracking []domain.TrackingInfo) domain.OrderStatus {
	lowerStatus := strings.ToLower(status)

	switch lowerStatus {
	case "completed":
		return domain.OrderStatusCompleted
	case "cancelled", "refunded", "failed":
		return domain.OrderStatusCancelled
	}

	if len(tracking) > 0 {
		return domain.OrderStatusShipped
	}

	switch lowerStatus {
	case "pending", "on-hold":
		return domain.OrderStatusAwaitingPayment
	case "processing":
		return domain.OrderStatusCreated
	default:
		return domain.OrderStatusUnknown
	}
}

// extractTrackingInfo looks for tracking data in shipping line metadata, then
// in the Shipment Tracking plugin's order metadata.
func extractTrackingInfo(order woocommerceOrder) []domain.TrackingInfo {
	var tracking []domain.TrackingInfo

	for _, shippingLine := range order.ShippingLines {
		var trackingNum, trackingProvider string

		for _, meta := range shippingLine.MetaData {
			switch meta.Key {
			case "Tracking Number", "tracking_number", "_tracking_number":
				if val, ok := meta.Value.(string); ok && val != "" {
					trackingNum = val
				}
			case "Tracking Company", "tracking_company", "_tracking_company", "tracking_provider":
				if val, ok := meta.Value.(string); ok && val != "" {
					trackingProvider = val
				}
			}
		}

		if trackingNum != "" {
			tracking = append(tracking, domain.TrackingInfo{
				TrackingNumber:   trackingNum,
				TrackingProvider: trackingProvider,
			})
		}
	}

	if len(tracking) > 0 {
		return tracking
	}

	for _, meta := range order.MetaData {
		if meta.Key == "_wc_shipment_tracking_items" {
			if items, err := parseTrackingItems(meta.Value); err == nil && len(items) > 0 {
				return items
			}
		}
	}

	return nil
}

// parseTrackingItems parses the Shipment Tracking plugin's item list.
func parseTrackingItems(value any) ([]domain.TrackingInfo, error) {
	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	var wcItems []wcTrackingItem
	if err := json.Unmarshal(jsonBytes, &wcItems); err != nil {
		return nil, err
	}

	tracking := make([]domain.TrackingInfo, 0, len(wcItems))
	for _, item := range wcItems {
		tracking = append(tracking, domain.TrackingInfo{
			TrackingProvider: item.TrackingProvider,
			TrackingNumber:   item.TrackingNumber,
		})
	}
	return tracking, nil
}

// mapItems converts WooCommerce line items to domain OrderItems.
func mapItems(wcItems []wcLineItem) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(wcItems))
	for _, item := range wcItems {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			SKU:       item.Sku,
			Name:      item.Name,
			Picture:   item.Image.Src,
			Total:     parseAmount(item.Total),
		})
	}
	return items
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func toAddress(a shipping.Address, withContact bool) wcAddress {
	out := wcAddress{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Address1:  a.Address1,
		City:      a.City,
		State:     a.StateCode,
		Postcode:  a.PostalCode,
		Country:   a.Country,
	}
	if withContact {
		out.Email = a.Email
		out.Phone = a.Phone
	}
	return out
}

// internal structs for mapping

// woocommerceOrder represents the JSON structure of an order from WooCommerce API.
type woocommerceOrder struct {
	ID                 int              `json:"id"`
	Number             string           `json:"number"`
	Status             string           `json:"status"`
	Currency           string           `json:"currency"`
	Total              string           `json:"total"`
	ShippingTotal      string           `json:"shipping_total"`
	CustomerID         int              `json:"customer_id"`
	DateCreated        wcTime           `json:"date_created"`
	PaymentMethodTitle string           `json:"payment_method_title"`
	Billing            wcAddress        `json:"billing"`
	Shipping           wcAddress        `json:"shipping"`
	LineItems          []wcLineItem     `json:"line_items"`
	ShippingLines      []wcShippingLine `json:"shipping_lines"`
	MetaData           []wcMetaData     `json:"meta_data"`
}

// wcAddress is the billing/shipping block. Shipping omits email and phone.
type wcAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

func (a wcAddress) toDomain() shipping.Address {
	return shipping.Address{
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Address1:   a.Address1,
		City:       a.City,
		StateCode:  a.State,
		PostalCode: a.Postcode,
		Country:    a.Country,
		Email:      a.Email,
		Phone:      a.Phone,
	}
}

// wcMetaData represents a key-value pair in WooCommerce metadata.
type wcMetaData struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// wcTrackingItem represents a single tracking entry from WooCommerce Shipment Tracking plugin.
type wcTrackingItem struct {
	TrackingProvider string `json:"tracking_provider"`
	TrackingNumber   string `json:"tracking_number"`
}

// wcLineItem represents a product in the WooCommerce order.
type wcLineItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Sku       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	Total     string  `json:"total"`
	Image     wcImage `json:"image"`
}

// wcShippingLine represents a shipping method with tracking metadata.
type wcShippingLine struct {
	MethodID    string       `json:"method_id"`
	MethodTitle string       `json:"method_title"`
	Total       string       `json:"total"`
	MetaData    []wcMetaData `json:"meta_data"`
}

// wcImage holds the product image URL.
type wcImage struct {
	Src string `json:"src"`
}

type createOrderRequest struct {
	PaymentMethod      string                  `json:"payment_method"`
	PaymentMethodTitle string                  `json:"payment_method_title"`
	SetPaid            bool                    `json:"set_paid"`
	CustomerID         int                     `json:"customer_id,omitempty"`
	Billing            wcAddress               `json:"billing"`
	Shipping           wcAddress               `json:"shipping"`
	LineItems          []wcLineItemRequest     `json:"line_items"`
	ShippingLines      []wcShippingLineRequest `json:"shipping_lines,omitempty"`
}

type wcLineItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type wcShippingLineRequest struct {
	MethodID    string `json:"method_id"`
	MethodTitle string `json:"method_title"`
	Total       string `json:"total"`
}

// wcTime is a custom helper struct to handle WooCommerce's date format.
type wcTime time.Time

// UnmarshalJSON parses the custom date format used by WooCommerce.
func (t *wcTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	// WooCommerce usually returns ISO8601 "2018-12-19T14:48:25"
	if s == "null" || s == "" {
		*t = wcTime(time.Time{})
		return nil
	}
	parsed, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
	}
	if err != nil {
		logger.Get().Warn("Failed to parse date", zap.String("date", s), zap.Error(err))
		return nil
	}
	*t = wcTime(parsed)
	return nil
}
