package ports

import (
	"context"
	"time"

	"storefront-gateway/internal/features/auth/domain"
)

// IdentityProvider is the WordPress site that owns shopper accounts.
type IdentityProvider interface {
	// IssueToken exchanges credentials for a bearer token.
	IssueToken(ctx context.Context, username, password string) (string, error)
	// Me returns the profile of the token's owner.
	Me(ctx context.Context, token string) (*domain.User, error)
	// Register creates a customer account.
	Register(ctx context.Context, reg domain.Registration) (*domain.RegistrationResult, error)
	// ResetPassword sends a reset email and returns the server's confirmation message.
	ResetPassword(ctx context.Context, userLogin string) (string, error)
}

// TokenStore persists bearer tokens per shopper session.
type TokenStore interface {
	// Load returns "" when the session has no token.
	Load(ctx context.Context, sessionID string) (string, error)
	Save(ctx context.Context, sessionID, token string, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}
