package batch

import (
	"context"
	"fmt"
	"net/url"

	"github.com/heartmarshall/batch-dashboard/internal/domain"
	"github.com/heartmarshall/batch-dashboard/pkg/ctxutil"
)

// AuthURL builds the calendar authorization URL for the authenticated user.
// The user ID travels in the state parameter.
// Returns ErrNotConfigured when the calendar client is not set up.
func (s *Service) AuthURL(ctx context.Context) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	if !s.calendar.Configured() {
		return "", fmt.Errorf("batch.AuthURL: calendar: %w", domain.ErrNotConfigured)
	}

	u, err := url.Parse(s.calendar.AuthEndpoint)
	if err != nil {
		return "", fmt.Errorf("batch.AuthURL parse endpoint: %w", err)
	}

	q := u.Query()
	q.Set("client_id", s.calendar.ClientID)
	q.Set("redirect_uri", s.calendar.RedirectURI)
	q.Set("response_type", "code")
	q.Set("access_type", "offline")
	q.Set("prompt", "consent")
	if s.calendar.Scope != "" {
		q.Set("scope", s.calendar.Scope)
	}
	q.Set("state", userID.String())
	u.RawQuery = q.Encode()

	return u.String(), nil
}
