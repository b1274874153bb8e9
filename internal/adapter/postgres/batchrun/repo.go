// Package batchrun records batch runs and enforces one active run per user.
package batchrun

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/batch-dashboard/internal/adapter/postgres"
	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

const (
	table            = "batch_runs"
	activeConstraint = "batch_runs_one_active_idx"
)

var columns = []string{
	"task_id", "user_id", "target_percentage", "import_setup_id", "hourly_batch_count",
	"status", "started_at", "finished_at",
}

// Repo provides batch run persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new batch run repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetActive returns the user's pending run, or ErrNotFound.
func (r *Repo) GetActive(ctx context.Context, userID uuid.UUID) (*domain.BatchRun, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "status": string(domain.RunStatusPending)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select batch_run: %w", err)
	}

	run, err := scanRun(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "active batch_run for user", userID)
	}
	return run, nil
}

// Create inserts a run. A second pending run for the same user yields
// ErrBatchAlreadyRunning.
func (r *Repo) Create(ctx context.Context, run *domain.BatchRun) (*domain.BatchRun, error) {
	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(
			run.TaskID, run.UserID,
			run.Settings.TargetPercentage, run.Settings.ImportSetupID, run.Settings.HourlyBatchCount,
			string(run.Status), run.StartedAt, run.FinishedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert batch_run: %w", err)
	}

	created, err := scanRun(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		if postgres.IsUniqueViolation(err, activeConstraint) {
			return nil, fmt.Errorf("batch_run %s: %w", run.TaskID, domain.ErrBatchAlreadyRunning)
		}
		return nil, postgres.MapError(err, "batch_run", run.TaskID)
	}
	return created, nil
}

// Finish moves a pending run to a terminal status.
// Returns ErrNotFound if the run does not exist or is no longer pending.
func (r *Repo) Finish(ctx context.Context, taskID uuid.UUID, status domain.RunStatus, at time.Time) (*domain.BatchRun, error) {
	sql, args, err := postgres.Builder.
		Update(table).
		Set("status", string(status)).
		Set("finished_at", at).
		Where(squirrel.Eq{"task_id": taskID, "status": string(domain.RunStatusPending)}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update batch_run: %w", err)
	}

	run, err := scanRun(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "batch_run", taskID)
	}
	return run, nil
}

// FailStale marks runs still pending since before cutoff as failed and
// returns how many were changed.
func (r *Repo) FailStale(ctx context.Context, cutoff, at time.Time) (int64, error) {
	sql, args, err := postgres.Builder.
		Update(table).
		Set("status", string(domain.RunStatusFailed)).
		Set("finished_at", at).
		Where(squirrel.Eq{"status": string(domain.RunStatusPending)}).
		Where(squirrel.Lt{"started_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build fail stale batch_runs: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("fail stale batch_runs: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanRun(row pgx.Row) (*domain.BatchRun, error) {
	var (
		run    domain.BatchRun
		status string
	)
	err := row.Scan(
		&run.TaskID,
		&run.UserID,
		&run.Settings.TargetPercentage,
		&run.Settings.ImportSetupID,
		&run.Settings.HourlyBatchCount,
		&status,
		&run.StartedAt,
		&run.FinishedAt,
	)
	if err != nil {
		return nil, err
	}
	run.Status = domain.RunStatus(status)
	return &run, nil
}
