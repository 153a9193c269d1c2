package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"storefront-gateway/internal/core/apperr"
	"storefront-gateway/internal/core/config"
	"storefront-gateway/internal/features/auth/domain"
)

const (
	tokenPath    = "/wp-json/jwt-auth/v1/token"
	mePath       = "/wp-json/wp/v2/users/me?context=edit"
	registerPath = "/wp-json/custom/v1/register"
	resetPath    = "/wp-json/custom/v1/reset-password"
)

// jwt-auth wraps some of its messages in markup like <strong>Error:</strong>.
var tagPattern = regexp.MustCompile(`<[^>]+>`)

// WordPressAdapter implements ports.IdentityProvider against the JWT auth
// plugin and the custom registration endpoints.
type WordPressAdapter struct {
	client  *http.Client
	baseURL string
}

// NewWordPressAdapter creates a new WordPressAdapter.
func NewWordPressAdapter(cfg config.WordPressConfig, client *http.Client) *WordPressAdapter {
	return &WordPressAdapter{
		client:  client,
		baseURL: strings.TrimRight(cfg.URL, "/"),
	}
}

type tokenResponse struct {
	Token string `json:"token"`
	Data  struct {
		Token string `json:"token"`
	} `json:"data"`
}

// IssueToken exchanges username and password for a bearer token.
func (a *WordPressAdapter) IssueToken(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}

	var out tokenResponse
	if err := a.do(ctx, http.MethodPost, tokenPath, "", body, &out, domain.LoginFallbackMessage); err != nil {
		return "", err
	}

	token := out.Token
	if token == "" {
		token = out.Data.Token
	}
	if token == "" {
		return "", &apperr.APIError{Status: http.StatusBadGateway, Message: domain.LoginFallbackMessage}
	}
	return token, nil
}

type wpUser struct {
	ID        int    `json:"id"`
	Slug      string `json:"slug"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Name      string `json:"name"`
}

// Me fetches the profile of the token owner.
func (a *WordPressAdapter) Me(ctx context.Context, token string) (*domain.User, error) {
	var out wpUser
	if err := a.do(ctx, http.MethodGet, mePath, token, nil, &out, ""); err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &domain.User{
		ID:          out.ID,
		Username:    out.Slug,
		Email:       out.Email,
		FirstName:   out.FirstName,
		LastName:    out.LastName,
		DisplayName: out.Name,
	}, nil
}

type registerResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Register creates a customer account.
func (a *WordPressAdapter) Register(ctx context.Context, reg domain.Registration) (*domain.RegistrationResult, error) {
	var out registerResponse
	if err := a.do(ctx, http.MethodPost, registerPath, "", reg, &out, domain.RegisterFallbackMessage); err != nil {
		return nil, err
	}
	return &domain.RegistrationResult{
		UserID:   out.UserID,
		Username: out.Username,
		Email:    out.Email,
		Message:  out.Message,
	}, nil
}

// ResetPassword asks WordPress to email a reset link.
func (a *WordPressAdapter) ResetPassword(ctx context.Context, userLogin string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	body := map[string]string{"user_login": userLogin}
	if err := a.do(ctx, http.MethodPost, resetPath, "", body, &out, ""); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (a *WordPressAdapter) do(ctx context.Context, method, path, token string, body, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return upstreamError(resp, path, fallback)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func upstreamError(resp *http.Response, path, fallback string) *apperr.APIError {
	apiErr := apperr.FromResponse(resp, fallback)
	apiErr.Message = strings.TrimSpace(tagPattern.ReplaceAllString(apiErr.Message, ""))

	// The reset endpoint prefers the error code over a generic message.
	if path == resetPath && apiErr.Message == http.StatusText(resp.StatusCode) {
		apiErr.Message = domain.ResetFallbackMessage
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
