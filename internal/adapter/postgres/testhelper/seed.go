package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// SeedUser inserts an operator with a random email and an empty password
// hash, so it can own settings and runs but never log in.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	u := domain.User{
		ID:        uuid.New(),
		Email:     "operator-" + uuid.NewString()[:8] + "@example.com",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	if _, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		u.ID, u.Email, u.PasswordHash, u.CreatedAt,
	); err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}

	return u
}

// SeedPendingRun records an active run for userID with started_at set to
// startedAt, bypassing the batch service.
func SeedPendingRun(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, startedAt time.Time) uuid.UUID {
	t.Helper()

	s := domain.DefaultBatchSettings()
	taskID := uuid.New()
	if _, err := pool.Exec(context.Background(),
		`INSERT INTO batch_runs (task_id, user_id, target_percentage, import_setup_id, hourly_batch_count, status, started_at)
		 VALUES ($1, $2, $3, $4, $5, 'pending', $6)`,
		taskID, userID, s.TargetPercentage, s.ImportSetupID, s.HourlyBatchCount, startedAt,
	); err != nil {
		t.Fatalf("testhelper: seed pending run: %v", err)
	}

	return taskID
}
