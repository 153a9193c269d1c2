package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-gateway/internal/core/apperr"
	"storefront-gateway/internal/core/server"
	"storefront-gateway/internal/features/checkout/domain"
	"storefront-gateway/internal/features/checkout/service"
	orders "storefront-gateway/internal/features/orders/domain"
	shipping "storefront-gateway/internal/features/shipping/domain"
	shipservice "storefront-gateway/internal/features/shipping/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sid = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"

// MockCheckout is a mock implementation of Checkout
type MockCheckout struct {
	mock.Mock
}

func (m *MockCheckout) Start(ctx context.Context, sessionID string) (*service.SyncReport, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SyncReport), args.Error(1)
}

func (m *MockCheckout) UpdateAddress(sessionID string, address shipping.Address) (shipservice.Snapshot, error) {
	args := m.Called(sessionID, address)
	return args.Get(0).(shipservice.Snapshot), args.Error(1)
}

func (m *MockCheckout) Shipping(sessionID string) (shipservice.Snapshot, error) {
	args := m.Called(sessionID)
	return args.Get(0).(shipservice.Snapshot), args.Error(1)
}

func (m *MockCheckout) SelectRate(ctx context.Context, sessionID string, packageID int, rateID string) (shipservice.Snapshot, error) {
	args := m.Called(ctx, sessionID, packageID, rateID)
	return args.Get(0).(shipservice.Snapshot), args.Error(1)
}

func (m *MockCheckout) PlaceOrder(ctx context.Context, sessionID string) (*orders.Order, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func setupApp(checkout *MockCheckout) *fiber.App {
	app := fiber.New()
	app.Use(server.Session())
	NewCheckoutHandler(checkout).Register(app)
	return app
}

func newRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(server.SessionHeader, sid)
	return req
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body server.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Message
}

func TestCheckoutHandler_Sync(t *testing.T) {
	checkout := new(MockCheckout)
	checkout.On("Start", mock.Anything, sid).Return(&service.SyncReport{Converged: false, AdditionFailures: 1}, nil).Once()

	resp, err := setupApp(checkout).Test(newRequest("POST", "/checkout/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var report service.SyncReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 1, report.AdditionFailures)
}

func TestCheckoutHandler_SyncUpstreamFailure(t *testing.T) {
	checkout := new(MockCheckout)
	checkout.On("Start", mock.Anything, sid).
		Return(nil, &apperr.APIError{Status: 503, Message: "Tienda en mantenimiento"}).Once()

	resp, err := setupApp(checkout).Test(newRequest("POST", "/checkout/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "Tienda en mantenimiento", errorMessage(t, resp))
}

func TestCheckoutHandler_UpdateAddress(t *testing.T) {
	checkout := new(MockCheckout)
	address := shipping.Address{Address1: "Córdoba 1200", City: "Rosario", StateCode: "S", PostalCode: "2000"}
	checkout.On("UpdateAddress", sid, address).
		Return(shipservice.Snapshot{State: shipping.StateCalculating, Sequence: 3}, nil).Once()

	resp, err := setupApp(checkout).Test(newRequest("PUT", "/checkout/address", address))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var snap shipservice.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, shipping.StateCalculating, snap.State)
	assert.Equal(t, uint64(3), snap.Sequence)
}

func TestCheckoutHandler_ShippingNotStarted(t *testing.T) {
	checkout := new(MockCheckout)
	checkout.On("Shipping", sid).Return(shipservice.Snapshot{}, domain.ErrNotStarted).Once()

	resp, err := setupApp(checkout).Test(newRequest("GET", "/checkout/shipping", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCheckoutHandler_SelectRate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		checkout := new(MockCheckout)
		checkout.On("SelectRate", mock.Anything, sid, 0, "express").
			Return(shipservice.Snapshot{State: shipping.StateRatesAvailable}, nil).Once()

		resp, err := setupApp(checkout).Test(newRequest("POST", "/checkout/shipping/select", SelectRateRequest{RateID: "express"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		checkout.AssertExpectations(t)
	})

	t.Run("UnknownRate", func(t *testing.T) {
		checkout := new(MockCheckout)
		checkout.On("SelectRate", mock.Anything, sid, 0, "pickup").
			Return(shipservice.Snapshot{}, shipping.ErrRateNotFound).Once()

		resp, err := setupApp(checkout).Test(newRequest("POST", "/checkout/shipping/select", SelectRateRequest{RateID: "pickup"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("MissingRate", func(t *testing.T) {
		checkout := new(MockCheckout)

		resp, err := setupApp(checkout).Test(newRequest("POST", "/checkout/shipping/select", SelectRateRequest{}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCheckoutHandler_PlaceOrder(t *testing.T) {
	tests := []struct {
		name       string
		order      *orders.Order
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "Created", order: &orders.Order{ID: 1001}, wantStatus: http.StatusCreated},
		{name: "RateRequired", err: orders.ErrShippingRateRequired, wantStatus: http.StatusBadRequest, wantMsg: "Seleccioná un método de envío"},
		{name: "Closed", err: domain.ErrSessionClosed, wantStatus: http.StatusConflict, wantMsg: "El pedido ya fue realizado"},
		{name: "ShippingPending", err: domain.ErrShippingPending, wantStatus: http.StatusConflict, wantMsg: "Todavía estamos calculando el envío para esta dirección"},
		{
			name:       "UpstreamMessageVerbatim",
			err:        &apperr.APIError{Status: 400, Code: "woocommerce_rest_invalid_product_id", Message: "ID de producto no válido."},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "ID de producto no válido.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkout := new(MockCheckout)
			if tt.order != nil {
				checkout.On("PlaceOrder", mock.Anything, sid).Return(tt.order, nil).Once()
			} else {
				checkout.On("PlaceOrder", mock.Anything, sid).Return(nil, tt.err).Once()
			}

			resp, err := setupApp(checkout).Test(newRequest("POST", "/checkout/orders", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, errorMessage(t, resp))
			}
		})
	}
}
