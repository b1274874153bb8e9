package auth

import (
	"context"
	"fmt"

	"github.com/heartmarshall/batch-dashboard/internal/auth"
	"github.com/heartmarshall/batch-dashboard/internal/domain"
	"github.com/heartmarshall/batch-dashboard/pkg/ctxutil"
)

// Me returns the authenticated user.
// Returns ErrUnauthorized without a user in context and ErrNotFound if the
// user no longer exists.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}

// ValidateToken validates an access token and returns the identity it carries.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (auth.Identity, error) {
	identity, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return auth.Identity{}, domain.ErrUnauthorized
	}
	return identity, nil
}
