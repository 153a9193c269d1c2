package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-gateway/internal/core/server"
	"storefront-gateway/internal/features/orders/domain"
	"storefront-gateway/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) GetOrder(ctx context.Context, orderID, email string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func setupApp(reader *MockOrderReader) *fiber.App {
	app := fiber.New()
	NewOrderHandler(reader).Register(app)
	return app
}

func TestOrderHandler_GetOrder(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"Success", "/orders/123?email=ana@example.com", nil, http.StatusOK},
		{"MissingEmail", "/orders/123", nil, http.StatusBadRequest},
		{"NotFound", "/orders/123?email=ana@example.com", service.ErrOrderNotFound, http.StatusNotFound},
		{"Mismatch", "/orders/123?email=ana@example.com", service.ErrEmailMismatch, http.StatusUnauthorized},
		{"InvalidID", "/orders/123?email=ana@example.com", service.ErrInvalidOrderID, http.StatusBadRequest},
		{"Upstream", "/orders/123?email=ana@example.com", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := new(MockOrderReader)
			if tt.err != nil {
				reader.On("GetOrder", mock.Anything, "123", "ana@example.com").Return(nil, tt.err).Once()
			} else {
				reader.On("GetOrder", mock.Anything, "123", "ana@example.com").Return(&domain.Order{ID: 123}, nil).Maybe()
			}

			resp, err := setupApp(reader).Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			if tt.status != http.StatusOK {
				var body server.ErrorResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.NotEmpty(t, body.Message)
				assert.NotEmpty(t, body.RayID)
			}
		})
	}
}
