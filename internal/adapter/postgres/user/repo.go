// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/batch-dashboard/internal/adapter/postgres"
	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "password_hash", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	u, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"email": email})

	u, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// A taken email yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.PasswordHash, u.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return created, nil
}

func (r *Repo) getOne(ctx context.Context, query squirrel.SelectBuilder) (*domain.User, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}
	return scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
