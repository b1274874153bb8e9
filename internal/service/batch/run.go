package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/batch-dashboard/internal/domain"
	"github.com/heartmarshall/batch-dashboard/pkg/ctxutil"
)

// Start validates and saves the settings, records a pending run and
// dispatches the start command.
// Returns ErrBatchAlreadyRunning if the user already has an active run.
func (s *Service) Start(ctx context.Context, settings domain.BatchSettings) (*domain.BatchRun, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var run *domain.BatchRun

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		active, err := s.runs.GetActive(txCtx, userID)
		switch {
		case err == nil:
			return fmt.Errorf("task %s: %w", active.TaskID, domain.ErrBatchAlreadyRunning)
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("get active run: %w", err)
		}

		if _, err := s.settings.UpsertSettings(txCtx, userID, settings); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}

		created, err := s.runs.Create(txCtx, &domain.BatchRun{
			TaskID:    uuid.New(),
			UserID:    userID,
			Settings:  settings,
			Status:    domain.RunStatusPending,
			StartedAt: s.now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create run: %w", err)
		}
		run = created
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch.Start: %w", err)
	}

	cmd := domain.BatchCommand{
		Type:     domain.CommandStart,
		TaskID:   run.TaskID,
		UserID:   userID,
		Settings: &settings,
		IssuedAt: s.now().UTC(),
	}
	if err := s.dispatcher.Dispatch(ctx, cmd); err != nil {
		// The run must not block later starts.
		if _, ferr := s.runs.Finish(ctx, run.TaskID, domain.RunStatusFailed, s.now().UTC()); ferr != nil {
			s.log.ErrorContext(ctx, "mark run failed",
				slog.String("task_id", run.TaskID.String()),
				slog.String("error", ferr.Error()))
		}
		return nil, fmt.Errorf("batch.Start dispatch: %w", err)
	}

	s.log.InfoContext(ctx, "batch started",
		slog.String("user_id", userID.String()),
		slog.String("task_id", run.TaskID.String()))

	return run, nil
}

// Stop ends the authenticated user's active run.
// Returns ErrNotFound if nothing is running.
func (s *Service) Stop(ctx context.Context) (*domain.BatchRun, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	active, err := s.runs.GetActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("batch.Stop: %w", err)
	}

	cmd := domain.BatchCommand{
		Type:     domain.CommandStop,
		TaskID:   active.TaskID,
		UserID:   userID,
		IssuedAt: s.now().UTC(),
	}
	if err := s.dispatcher.Dispatch(ctx, cmd); err != nil {
		return nil, fmt.Errorf("batch.Stop dispatch: %w", err)
	}

	stopped, err := s.runs.Finish(ctx, active.TaskID, domain.RunStatusStopped, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("batch.Stop: %w", err)
	}

	s.log.InfoContext(ctx, "batch stopped",
		slog.String("user_id", userID.String()),
		slog.String("task_id", stopped.TaskID.String()))

	return stopped, nil
}
