package domain

import (
	"errors"
	"net/mail"
	"strings"
)

// MinPasswordLength is the shortest password the store accepts.
const MinPasswordLength = 8

// Messages shown when the server does not explain a failure.
const (
	LoginFallbackMessage    = "Credenciales inválidas o servidor no configurado"
	RegisterFallbackMessage = "Error al registrarse. Asegúrate de que el registro esté habilitado."
	ResetFallbackMessage    = "Error al enviar el correo"
)

var (
	// ErrNotAuthenticated is returned when the session has no logged in user.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrMissingFields is returned when a registration lacks username, email or password.
	ErrMissingFields = errors.New("missing required registration fields")
	// ErrInvalidEmail is returned for a malformed registration email.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrWeakPassword is returned for passwords shorter than MinPasswordLength.
	ErrWeakPassword = errors.New("password too short")
)

// User is the WordPress account of a logged in shopper.
type User struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
}

// Registration is a new account request.
type Registration struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Normalize trims every field but the password.
func (r Registration) Normalize() Registration {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	return r
}

// Validate applies the same checks the registration endpoint does, so obvious
// mistakes never leave the gateway.
func (r Registration) Validate() error {
	r = r.Normalize()
	if r.Username == "" || r.Email == "" || r.Password == "" {
		return ErrMissingFields
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return ErrInvalidEmail
	}
	if len(r.Password) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// RegistrationResult is the account created by a registration.
type RegistrationResult struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

// ErrMissingLogin is returned when a password reset names no account.
var ErrMissingLogin = errors.New("missing username or email")
