package domain

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents an account that can sign in to the dashboard.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// LoginCredentials is the transient email/password pair of a login attempt.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Normalize trims surrounding whitespace from the email.
func (c LoginCredentials) Normalize() LoginCredentials {
	c.Email = strings.TrimSpace(c.Email)
	return c
}

// Validate checks the email format and that a password was given.
func (c LoginCredentials) Validate() error {
	var errs []FieldError

	if !isEmail(c.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid email address"})
	}
	if c.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password is required"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// isEmail accepts a bare addr-spec only; display names such as
// "Bob <bob@example.com>" are rejected.
func isEmail(s string) bool {
	if s == "" || len(s) > 254 {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}
