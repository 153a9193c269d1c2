package domain

import (
	"encoding/json"
	"testing"
	"time"

	cart "storefront-gateway/internal/features/cart/domain"
	shipping "storefront-gateway/internal/features/shipping/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_MarshalJSON(t *testing.T) {
	order := Order{
		ID:        123,
		Status:    OrderStatusAwaitingPayment,
		Billing:   shipping.Address{FirstName: "Ana", Email: "ana@example.com"},
		Total:     decimal.RequireFromString("15500"),
		CreatedAt: time.Now(),
		Items:     []OrderItem{{ProductID: 1, Quantity: 1, Name: "Display"}},
	}

	data, err := json.Marshal(order)
	require.NoError(t, err)

	jsonString := string(data)
	assert.Contains(t, jsonString, `"order_id":123`)
	assert.Contains(t, jsonString, `"status":"AWAITING_PAYMENT"`)
	assert.Contains(t, jsonString, `"total":"15500"`)
	assert.Contains(t, jsonString, `"items":[{`)
	assert.Equal(t, "ana@example.com", order.Email())
}

func completeAddress() shipping.Address {
	return shipping.Address{
		FirstName: "Ana", LastName: "Paz", Email: "ana@example.com", Phone: "2214567890",
		Address1: "Calle 7 123", City: "La Plata", StateCode: "B", PostalCode: "1900",
	}
}

func twoItemCart(t *testing.T) *cart.Cart {
	c := &cart.Cart{}
	require.NoError(t, c.AddItem(cart.CartItem{ProductID: 1, UnitPrice: decimal.NewFromInt(100), Quantity: 2}))
	require.NoError(t, c.AddItem(cart.CartItem{ProductID: 5, UnitPrice: decimal.NewFromInt(50), Quantity: 1}))
	return c
}

func expressSelected() []shipping.Package {
	return []shipping.Package{{Rates: []shipping.Rate{
		{RateID: "flat", MethodID: "flat_rate", Name: "Estándar", PriceMinorUnits: 500, CurrencyMinorUnit: 2},
		{RateID: "express", MethodID: "flat_rate", Name: "Express", PriceMinorUnits: 1250, CurrencyMinorUnit: 2, Selected: true},
	}}}
}

func TestNewDraft(t *testing.T) {
	draft, err := NewDraft(twoItemCart(t), completeAddress(), expressSelected(), 7)
	require.NoError(t, err)

	assert.Equal(t, []Line{{ProductID: 1, Quantity: 2}, {ProductID: 5, Quantity: 1}}, draft.Lines)
	require.NotNil(t, draft.ShippingLine)
	assert.Equal(t, "Express", draft.ShippingLine.MethodTitle)
	assert.Equal(t, "12.50", draft.ShippingLine.Total.StringFixed(int32(draft.ShippingLine.Scale)))
	assert.Equal(t, "AR", draft.Billing.Country)
	assert.Equal(t, draft.Billing, draft.Shipping)
	assert.Equal(t, 7, draft.CustomerID)
}

func TestNewDraft_NoRatesOffered(t *testing.T) {
	draft, err := NewDraft(twoItemCart(t), completeAddress(), []shipping.Package{{PackageID: 0}}, 0)
	require.NoError(t, err)
	assert.Nil(t, draft.ShippingLine)
}

func TestNewDraft_Preconditions(t *testing.T) {
	_, err := NewDraft(&cart.Cart{}, completeAddress(), nil, 0)
	assert.ErrorIs(t, err, ErrEmptyCart)

	missingPhone := completeAddress()
	missingPhone.Phone = " "
	_, err = NewDraft(twoItemCart(t), missingPhone, nil, 0)
	assert.ErrorIs(t, err, ErrIncompleteAddress)

	noneSelected := expressSelected()
	noneSelected[0].Rates[1].Selected = false
	_, err = NewDraft(twoItemCart(t), completeAddress(), noneSelected, 0)
	assert.ErrorIs(t, err, ErrShippingRateRequired)
}
