package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-gateway/internal/core/apperr"
	"storefront-gateway/internal/core/config"
	"storefront-gateway/internal/features/auth/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *WordPressAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWordPressAdapter(config.WordPressConfig{URL: srv.URL + "/"}, srv.Client())
}

func TestWordPressAdapter_IssueToken(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, tokenPath, r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana", body["username"])
		assert.Equal(t, "secret123", body["password"])

		w.Write([]byte(`{"token":"jwt-token","user_email":"ana@example.com","user_nicename":"ana","user_display_name":"Ana"}`))
	})

	token, err := adapter.IssueToken(context.Background(), "ana", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestWordPressAdapter_IssueTokenErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "ServerMessageWithoutMarkup",
			status:  http.StatusForbidden,
			body:    `{"code":"[jwt_auth] incorrect_password","message":"<strong>Error:</strong> La contrase&ntilde;a no es correcta.","data":{"status":403}}`,
			wantMsg: "Error: La contraseña no es correcta.",
		},
		{
			name:    "Fallback",
			status:  http.StatusNotFound,
			body:    `<html>not found</html>`,
			wantMsg: domain.LoginFallbackMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := adapter.IssueToken(context.Background(), "ana", "bad")
			require.Error(t, err)
			msg, ok := apperr.Message(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestWordPressAdapter_Me(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/users/me", r.URL.Path)
		assert.Equal(t, "edit", r.URL.Query().Get("context"))
		if r.Header.Get("Authorization") != "Bearer jwt-token" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"code":"rest_not_logged_in","message":"No has iniciado sesión."}`))
			return
		}
		w.Write([]byte(`{"id":7,"slug":"ana","email":"ana@example.com","first_name":"Ana","last_name":"Gómez","name":"Ana G"}`))
	})

	user, err := adapter.Me(context.Background(), "jwt-token")
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: 7, Username: "ana", Email: "ana@example.com", FirstName: "Ana", LastName: "Gómez", DisplayName: "Ana G"}, *user)

	_, err = adapter.Me(context.Background(), "other")
	require.Error(t, err)
	assert.True(t, apperr.IsUnauthorized(err))
}

func TestWordPressAdapter_Register(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, registerPath, r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body["email"])
		assert.Equal(t, "Ana", body["first_name"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"message":"¡Cuenta creada con éxito!","user_id":12,"username":"ana","email":"ana@example.com"}`))
	})

	res, err := adapter.Register(context.Background(), domain.Registration{
		Username: "ana", Email: "ana@example.com", Password: "12345678", FirstName: "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, 12, res.UserID)
	assert.Equal(t, "¡Cuenta creada con éxito!", res.Message)
}

func TestWordPressAdapter_RegisterFallback(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := adapter.Register(context.Background(), domain.Registration{Username: "ana", Email: "a@b.co", Password: "12345678"})
	msg, ok := apperr.Message(err)
	require.True(t, ok)
	assert.Equal(t, domain.RegisterFallbackMessage, msg)
}

func TestWordPressAdapter_ResetPassword(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ana@example.com", body["user_login"])
			w.Write([]byte(`{"success":true,"message":"Revisa tu correo."}`))
		})

		msg, err := adapter.ResetPassword(context.Background(), "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Revisa tu correo.", msg)
	})

	t.Run("CodeOnly", func(t *testing.T) {
		adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"code":"invalid_username"}`))
		})

		_, err := adapter.ResetPassword(context.Background(), "nobody")
		msg, _ := apperr.Message(err)
		assert.Equal(t, "invalid_username", msg)
	})

	t.Run("Fallback", func(t *testing.T) {
		adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := adapter.ResetPassword(context.Background(), "nobody")
		msg, _ := apperr.Message(err)
		assert.Equal(t, domain.ResetFallbackMessage, msg)
	})
}
