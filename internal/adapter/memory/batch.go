package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// SettingsRepo stores one BatchSettings value per user.
type SettingsRepo struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID]domain.StoredBatchSettings
	now    func() time.Time
}

// GetSettings returns the stored settings of a user, or ErrNotFound.
func (r *SettingsRepo) GetSettings(_ context.Context, userID uuid.UUID) (*domain.StoredBatchSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byUser[userID]
	if !ok {
		return nil, fmt.Errorf("batch_settings %s: %w", userID, domain.ErrNotFound)
	}
	return &s, nil
}

// UpsertSettings inserts or replaces the settings of a user.
func (r *SettingsRepo) UpsertSettings(_ context.Context, userID uuid.UUID, s domain.BatchSettings) (*domain.StoredBatchSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock()
	stored, ok := r.byUser[userID]
	if !ok {
		stored = domain.StoredBatchSettings{UserID: userID, CreatedAt: now}
	}
	stored.Settings = s
	stored.UpdatedAt = now
	r.byUser[userID] = stored

	return &stored, nil
}

func (r *SettingsRepo) clock() time.Time {
	if r.now != nil {
		return r.now().UTC()
	}
	return time.Now().UTC()
}

// RunRepo stores batch runs keyed by task ID.
type RunRepo struct {
	mu     sync.RWMutex
	byTask map[uuid.UUID]domain.BatchRun
}

// GetActive returns the user's pending run, or ErrNotFound.
func (r *RunRepo) GetActive(_ context.Context, userID uuid.UUID) (*domain.BatchRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if run, ok := r.activeLocked(userID); ok {
		return &run, nil
	}
	return nil, fmt.Errorf("active batch_run for user %s: %w", userID, domain.ErrNotFound)
}

// Create stores a run. A second pending run for the same user yields
// ErrBatchAlreadyRunning.
func (r *RunRepo) Create(_ context.Context, run *domain.BatchRun) (*domain.BatchRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if run.Status.IsActive() {
		if _, ok := r.activeLocked(run.UserID); ok {
			return nil, fmt.Errorf("batch_run %s: %w", run.TaskID, domain.ErrBatchAlreadyRunning)
		}
	}
	if _, ok := r.byTask[run.TaskID]; ok {
		return nil, fmt.Errorf("batch_run %s: %w", run.TaskID, domain.ErrAlreadyExists)
	}

	stored := *run
	r.byTask[run.TaskID] = stored
	return &stored, nil
}

// Finish moves a pending run to a terminal status.
// Returns ErrNotFound if the run does not exist or is no longer pending.
func (r *RunRepo) Finish(_ context.Context, taskID uuid.UUID, status domain.RunStatus, at time.Time) (*domain.BatchRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	run, ok := r.byTask[taskID]
	if !ok || !run.Status.IsActive() {
		return nil, fmt.Errorf("batch_run %s: %w", taskID, domain.ErrNotFound)
	}

	run.Status = status
	run.FinishedAt = &at
	r.byTask[taskID] = run
	return &run, nil
}

func (r *RunRepo) activeLocked(userID uuid.UUID) (domain.BatchRun, bool) {
	for _, run := range r.byTask {
		if run.UserID == userID && run.Status.IsActive() {
			return run, true
		}
	}
	return domain.BatchRun{}, false
}
