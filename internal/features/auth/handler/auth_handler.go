package handler

import (
	"context"
	"errors"
	"net/http"

	"storefront-gateway/internal/core/apperr"
	"storefront-gateway/internal/core/logger"
	"storefront-gateway/internal/core/server"
	"storefront-gateway/internal/features/auth/domain"
	"storefront-gateway/internal/features/auth/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// validationMessages are the shopper-facing texts of the local form checks.
var validationMessages = map[error]string{
	domain.ErrMissingFields: "Por favor completa todos los campos requeridos.",
	domain.ErrInvalidEmail:  "El email proporcionado no es válido.",
	domain.ErrWeakPassword:  "La contraseña debe tener al menos 8 caracteres.",
	domain.ErrMissingLogin:  "Por favor ingresa tu usuario o email.",
}

func validationMessage(err error) string {
	for sentinel, msg := range validationMessages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return err.Error()
}

// Authenticator is the part of the auth service the handlers need.
type Authenticator interface {
	Login(ctx context.Context, sessionID, username, password string) (*domain.User, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, sessionID string) (*domain.User, error)
	RefreshUser(ctx context.Context, sessionID string) (*domain.User, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.RegistrationResult, error)
	ResetPassword(ctx context.Context, userLogin string) (string, error)
}

// AuthHandler handles login, registration and password reset.
type AuthHandler struct {
	auth Authenticator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register mounts the auth routes.
func (h *AuthHandler) Register(r fiber.Router) {
	r.Post("/auth/login", h.Login)
	r.Post("/auth/logout", h.Logout)
	r.Get("/auth/me", h.Me)
	r.Post("/auth/refresh", h.Refresh)
	r.Post("/auth/register", h.RegisterAccount)
	r.Post("/auth/reset-password", h.ResetPassword)
}

// LoginRequest holds the shopper's WordPress credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ResetPasswordRequest names the account to reset, by username or email.
type ResetPasswordRequest struct {
	UserLogin string `json:"user_login"`
}

// MessageResponse carries a confirmation message for the shopper.
type MessageResponse struct {
	Message string `json:"message"`
}

// Login handles POST /auth/login.
// @Summary Log in
// @Description Exchanges WordPress credentials for a session bound token and returns the profile.
// @Tags Auth
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} domain.User
// @Failure 400 {object} server.ErrorResponse
// @Failure 401 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return server.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return server.RespondError(c, http.StatusBadRequest, validationMessages[domain.ErrMissingFields])
	}

	user, err := h.auth.Login(c.UserContext(), server.SessionID(c), req.Username, req.Password)
	if err != nil {
		if msg, ok := apperr.Message(err); ok {
			return server.RespondError(c, http.StatusUnauthorized, msg)
		}
		return h.upstreamError(c, "Login failed", domain.LoginFallbackMessage, err)
	}
	return c.Status(http.StatusOK).JSON(user)
}

// Logout handles POST /auth/logout.
// @Summary Log out
// @Tags Auth
// @Param X-Session-ID header string false "Shopper session id"
// @Success 204
// @Failure 500 {object} server.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.UserContext(), server.SessionID(c)); err != nil {
		logger.Get().Error("Logout failed", zap.String("ray_id", server.RayID(c)), zap.Error(err))
		return server.RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.SendStatus(http.StatusNoContent)
}

// Me handles GET /auth/me.
// @Summary Current user
// @Tags Auth
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Success 200 {object} domain.User
// @Failure 401 {object} server.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.auth.CurrentUser(c.UserContext(), server.SessionID(c))
	if err != nil {
		return h.userError(c, err)
	}
	return c.Status(http.StatusOK).JSON(user)
}

// Refresh handles POST /auth/refresh.
// @Summary Reload the profile
// @Tags Auth
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Success 200 {object} domain.User
// @Failure 401 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	user, err := h.auth.RefreshUser(c.UserContext(), server.SessionID(c))
	if err != nil {
		return h.userError(c, err)
	}
	return c.Status(http.StatusOK).JSON(user)
}

// RegisterAccount handles POST /auth/register.
// @Summary Create an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body domain.Registration true "New account"
// @Success 201 {object} domain.RegistrationResult
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) RegisterAccount(c *fiber.Ctx) error {
	var req domain.Registration
	if err := c.BodyParser(&req); err != nil {
		return server.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}

	res, err := h.auth.Register(c.UserContext(), req)
	if err != nil {
		if service.IsValidationError(err) {
			return server.RespondError(c, http.StatusBadRequest, validationMessage(err))
		}
		if msg, ok := apperr.Message(err); ok {
			return server.RespondError(c, http.StatusBadRequest, msg)
		}
		return h.upstreamError(c, "Registration failed", domain.RegisterFallbackMessage, err)
	}
	return c.Status(http.StatusCreated).JSON(res)
}

// ResetPassword handles POST /auth/reset-password.
// @Summary Request a password reset email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Username or email"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return server.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}

	msg, err := h.auth.ResetPassword(c.UserContext(), req.UserLogin)
	if err != nil {
		if service.IsValidationError(err) {
			return server.RespondError(c, http.StatusBadRequest, validationMessage(err))
		}
		if upstream, ok := apperr.Message(err); ok {
			return server.RespondError(c, http.StatusBadRequest, upstream)
		}
		return h.upstreamError(c, "Password reset failed", domain.ResetFallbackMessage, err)
	}
	return c.Status(http.StatusOK).JSON(MessageResponse{Message: msg})
}

func (h *AuthHandler) userError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotAuthenticated) {
		return server.RespondError(c, http.StatusUnauthorized, "No has iniciado sesión")
	}
	if msg, ok := apperr.Message(err); ok {
		return server.RespondError(c, http.StatusBadGateway, msg)
	}
	return h.upstreamError(c, "Failed to load user", "Servicio no disponible", err)
}

func (h *AuthHandler) upstreamError(c *fiber.Ctx, logMsg, shopperMsg string, err error) error {
	logger.Get().Error(logMsg,
		zap.String("session_id", server.SessionID(c)),
		zap.String("ray_id", server.RayID(c)),
		zap.Error(err),
	)
	return server.RespondError(c, http.StatusBadGateway, shopperMsg)
}
