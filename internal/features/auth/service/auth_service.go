package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"storefront-gateway/internal/core/apperr"
	"storefront-gateway/internal/features/auth/domain"
	"storefront-gateway/internal/features/auth/ports"

	"go.uber.org/zap"
)

// defaultTokenTTL applies when the token does not expose an exp claim.
// jwt-auth issues week long tokens by default.
const defaultTokenTTL = 7 * 24 * time.Hour

// entry is the in-memory view of one shopper session. A nil user means the
// persisted token was already checked and the shopper is anonymous.
type entry struct {
	user *domain.User
	seen time.Time
}

// AuthService keeps WordPress logins per shopper session. Tokens live in the
// TokenStore; profiles are kept in memory and restored from the token on the
// first request of a session.
type AuthService struct {
	idp    ports.IdentityProvider
	tokens ports.TokenStore
	log    *zap.Logger
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

// NewAuthService creates a new AuthService.
func NewAuthService(idp ports.IdentityProvider, tokens ports.TokenStore, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{
		idp:      idp,
		tokens:   tokens,
		log:      log,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

// Login exchanges credentials for a token, persists it and loads the profile.
// A profile failure removes the token again so the session never ends up
// authenticated without a user.
func (s *AuthService) Login(ctx context.Context, sessionID, username, password string) (*domain.User, error) {
	token, err := s.idp.IssueToken(ctx, strings.TrimSpace(username), password)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Save(ctx, sessionID, token, s.tokenTTL(token)); err != nil {
		return nil, fmt.Errorf("service: failed to persist token: %w", err)
	}

	user, err := s.idp.Me(ctx, token)
	if err != nil {
		s.log.Warn("Profile fetch after login failed, discarding token",
			zap.String("session_id", sessionID), zap.Error(err))
		if delErr := s.tokens.Delete(ctx, sessionID); delErr != nil {
			s.log.Error("Failed to discard token", zap.String("session_id", sessionID), zap.Error(delErr))
		}
		s.store(sessionID, nil)
		return nil, err
	}

	s.store(sessionID, user)
	s.log.Info("Shopper logged in", zap.String("session_id", sessionID), zap.Int("user_id", user.ID))
	return copyUser(user), nil
}

// Logout forgets the user and deletes the token. Logging out twice is fine.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	s.store(sessionID, nil)
	if err := s.tokens.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("service: failed to logout: %w", err)
	}
	return nil
}

// CurrentUser returns the logged in user of the session, restoring it from
// the persisted token on first contact.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*domain.User, error) {
	s.mu.Lock()
	e, ok := s.sessions[sessionID]
	if ok {
		e.seen = s.now()
	}
	s.mu.Unlock()

	if !ok {
		return s.Restore(ctx, sessionID)
	}
	if e.user == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return copyUser(e.user), nil
}

// Restore loads the persisted token and fetches its profile. Expired tokens
// and any profile failure log the session out.
func (s *AuthService) Restore(ctx context.Context, sessionID string) (*domain.User, error) {
	token, err := s.tokens.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to restore session: %w", err)
	}
	if token == "" {
		s.store(sessionID, nil)
		return nil, domain.ErrNotAuthenticated
	}

	if domain.TokenExpired(token, s.now()) {
		s.log.Info("Persisted token expired", zap.String("session_id", sessionID))
		s.forceLogout(ctx, sessionID)
		return nil, domain.ErrNotAuthenticated
	}

	user, err := s.idp.Me(ctx, token)
	if err != nil {
		s.log.Warn("Failed to restore session, logging out",
			zap.String("session_id", sessionID), zap.Error(err))
		s.forceLogout(ctx, sessionID)
		return nil, domain.ErrNotAuthenticated
	}

	s.store(sessionID, user)
	return copyUser(user), nil
}

// RefreshUser re-fetches the profile. Only a 401 or 403 logs the session out;
// other failures leave the current user in place.
func (s *AuthService) RefreshUser(ctx context.Context, sessionID string) (*domain.User, error) {
	token, err := s.tokens.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to refresh user: %w", err)
	}
	if token == "" {
		s.store(sessionID, nil)
		return nil, domain.ErrNotAuthenticated
	}

	user, err := s.idp.Me(ctx, token)
	if err != nil {
		if apperr.IsUnauthorized(err) {
			s.forceLogout(ctx, sessionID)
			return nil, domain.ErrNotAuthenticated
		}
		return nil, err
	}

	s.store(sessionID, user)
	return copyUser(user), nil
}

// Register validates and creates a customer account. The shopper is not
// logged in afterwards.
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (*domain.RegistrationResult, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	res, err := s.idp.Register(ctx, reg.Normalize())
	if err != nil {
		return nil, err
	}
	s.log.Info("Account registered", zap.Int("user_id", res.UserID))
	return res, nil
}

// ResetPassword asks WordPress to email a reset link for userLogin.
func (s *AuthService) ResetPassword(ctx context.Context, userLogin string) (string, error) {
	userLogin = strings.TrimSpace(userLogin)
	if userLogin == "" {
		return "", domain.ErrMissingLogin
	}
	return s.idp.ResetPassword(ctx, userLogin)
}

// Sweep drops in-memory users idle for longer than maxIdle. Their tokens stay
// persisted and are restored on the next request.
func (s *AuthService) Sweep(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		if e.seen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *AuthService) forceLogout(ctx context.Context, sessionID string) {
	if err := s.Logout(ctx, sessionID); err != nil {
		s.log.Error("Failed to logout session", zap.String("session_id", sessionID), zap.Error(err))
	}
}

func (s *AuthService) store(sessionID string, user *domain.User) {
	s.mu.Lock()
	s.sessions[sessionID] = &entry{user: copyUser(user), seen: s.now()}
	s.mu.Unlock()
}

func (s *AuthService) tokenTTL(token string) time.Duration {
	if exp, ok := domain.TokenExpiry(token); ok {
		if ttl := exp.Sub(s.now()); ttl > 0 {
			return ttl
		}
	}
	return defaultTokenTTL
}

func copyUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// IsValidationError reports whether err is a local validation failure whose
// message can be shown as is.
func IsValidationError(err error) bool {
	return errors.Is(err, domain.ErrMissingFields) ||
		errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrWeakPassword) ||
		errors.Is(err, domain.ErrMissingLogin)
}
