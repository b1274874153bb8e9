package batch

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/batch-dashboard/internal/config"
	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// settingsRepo defines the settings repository interface needed by batch service.
type settingsRepo interface {
	GetSettings(ctx context.Context, userID uuid.UUID) (*domain.StoredBatchSettings, error)
	UpsertSettings(ctx context.Context, userID uuid.UUID, s domain.BatchSettings) (*domain.StoredBatchSettings, error)
}

// runRepo defines the batch run repository interface needed by batch service.
type runRepo interface {
	GetActive(ctx context.Context, userID uuid.UUID) (*domain.BatchRun, error)
	Create(ctx context.Context, run *domain.BatchRun) (*domain.BatchRun, error)
	Finish(ctx context.Context, taskID uuid.UUID, status domain.RunStatus, at time.Time) (*domain.BatchRun, error)
}

// txManager defines the transaction manager interface needed by batch service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// dispatcher hands batch commands to the workers.
type dispatcher interface {
	Dispatch(ctx context.Context, cmd domain.BatchCommand) error
}

// Service implements batch settings and run operations.
type Service struct {
	log        *slog.Logger
	settings   settingsRepo
	runs       runRepo
	tx         txManager
	dispatcher dispatcher
	defaults   domain.BatchSettings
	calendar   config.CalendarConfig
	now        func() time.Time
}

// NewService creates a new batch service instance.
func NewService(
	logger *slog.Logger,
	settings settingsRepo,
	runs runRepo,
	tx txManager,
	dispatcher dispatcher,
	batchCfg config.BatchConfig,
	calendarCfg config.CalendarConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "batch"),
		settings:   settings,
		runs:       runs,
		tx:         tx,
		dispatcher: dispatcher,
		defaults:   batchCfg.Defaults(),
		calendar:   calendarCfg,
		now:        time.Now,
	}
}
