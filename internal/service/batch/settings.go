package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/batch-dashboard/internal/domain"
	"github.com/heartmarshall/batch-dashboard/pkg/ctxutil"
)

// GetSettings returns the authenticated user's last submitted settings, or
// the configured defaults if there are none.
func (s *Service) GetSettings(ctx context.Context) (domain.BatchSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.BatchSettings{}, domain.ErrUnauthorized
	}

	stored, err := s.settings.GetSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return s.defaults, nil
		}
		return domain.BatchSettings{}, fmt.Errorf("batch.GetSettings: %w", err)
	}

	return stored.Settings, nil
}
