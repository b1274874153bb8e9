package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// decoyHash is compared against when the email is unknown, so a miss costs
// about as much as a wrong password.
var decoyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("decoy-password"), bcrypt.DefaultCost)
	return h
})

// LoginWithPassword exchanges operator credentials for an access token.
// Unknown emails, accounts without a password and wrong passwords all
// return domain.ErrUnauthorized.
func (s *Service) LoginWithPassword(ctx context.Context, creds domain.LoginCredentials) (*AuthResult, error) {
	creds = creds.Normalize()
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, normalizeEmail(creds.Email))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		_ = bcrypt.CompareHashAndPassword(decoyHash(), []byte(creds.Password))
		s.log.InfoContext(ctx, "login rejected", slog.String("reason", "unknown email"))
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.LoginWithPassword: %w", err)
	}

	if user.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		s.log.InfoContext(ctx, "login rejected",
			slog.String("user_id", user.ID.String()),
			slog.String("reason", "bad password"))
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword: %w", err)
	}

	s.log.InfoContext(ctx, "operator logged in", slog.String("user_id", user.ID.String()))
	return result, nil
}
