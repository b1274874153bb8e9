package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/batch-dashboard/internal/config"
	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// Register creates a new password user.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, creds domain.LoginCredentials) (*domain.User, error) {
	creds = creds.Normalize()

	if err := creds.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Email uniqueness is enforced by the repository.
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        normalizeEmail(creds.Email),
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()))

	return user, nil
}

// EnsureDemoUsers registers every configured demo account that does not exist yet.
func (s *Service) EnsureDemoUsers(ctx context.Context, accounts []config.DemoAccount) error {
	for _, acc := range accounts {
		_, err := s.Register(ctx, domain.LoginCredentials{Email: acc.Email, Password: acc.Password})
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrAlreadyExists):
			s.log.DebugContext(ctx, "demo user already present", slog.String("email", acc.Email))
		default:
			return fmt.Errorf("auth.EnsureDemoUsers %s: %w", acc.Email, err)
		}
	}
	return nil
}
