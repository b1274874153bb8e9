// Package batchsettings stores each user's last submitted batch settings.
package batchsettings

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

const table = "batch_settings"

var columns = []string{
	"user_id", "target_percentage", "import_setup_id", "hourly_batch_count", "created_at", "updated_at",
}

// Repo provides batch settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// New creates a new batch settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, now: time.Now}
}

// GetSettings returns the stored settings of a user, or ErrNotFound.
func (r *Repo) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.StoredBatchSettings, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select batch_settings: %w", err)
	}

	s, err := scanSettings(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "batch_settings", userID)
	}
	return s, nil
}

// UpsertSettings inserts or replaces the settings of a user.
func (r *Repo) UpsertSettings(ctx context.Context, userID uuid.UUID, s domain.BatchSettings) (*domain.StoredBatchSettings, error) {
	now := r.now().UTC()

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(userID, s.TargetPercentage, s.ImportSetupID, s.HourlyBatchCount, now, now).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			target_percentage = EXCLUDED.target_percentage,
			import_setup_id = EXCLUDED.import_setup_id,
			hourly_batch_count = EXCLUDED.hourly_batch_count,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert batch_settings: %w", err)
	}

	stored, err := scanSettings(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "batch_settings", userID)
	}
	return stored, nil
}

func scanSettings(row pgx.Row) (*domain.StoredBatchSettings, error) {
	var s domain.StoredBatchSettings
	err := row.Scan(
		&s.UserID,
		&s.Settings.TargetPercentage,
		&s.Settings.ImportSetupID,
		&s.Settings.HourlyBatchCount,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
