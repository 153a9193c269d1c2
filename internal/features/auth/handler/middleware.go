package handler

import (
	"context"
	"errors"
	"net/http"

	"storefront-gateway/internal/core/logger"
	"storefront-gateway/internal/core/server"
	"storefront-gateway/internal/features/auth/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const userLocal = "auth_user"

// UserResolver resolves the logged in user of a shopper session.
type UserResolver interface {
	CurrentUser(ctx context.Context, sessionID string) (*domain.User, error)
}

// RequireUser rejects anonymous sessions with 401 and exposes the user to
// downstream handlers through UserFrom.
func RequireUser(users UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := users.CurrentUser(c.UserContext(), server.SessionID(c))
		if err != nil {
			if !errors.Is(err, domain.ErrNotAuthenticated) {
				logger.Get().Warn("Failed to resolve user", zap.String("ray_id", server.RayID(c)), zap.Error(err))
			}
			return server.RespondError(c, http.StatusUnauthorized, "No has iniciado sesión")
		}
		c.Locals(userLocal, user)
		return c.Next()
	}
}

// UserFrom returns the user set by RequireUser, or nil.
func UserFrom(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(userLocal).(*domain.User)
	return user
}
