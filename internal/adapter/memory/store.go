// Package memory keeps users, batch settings and batch runs in process memory.
// It backs the server when no database is configured and in handler tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// Store groups the in-memory repositories and serializes transactions.
type Store struct {
	Users    *UserRepo
	Settings *SettingsRepo
	Runs     *RunRepo

	txMu sync.Mutex
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		Users:    &UserRepo{byID: make(map[uuid.UUID]domain.User)},
		Settings: &SettingsRepo{byUser: make(map[uuid.UUID]domain.StoredBatchSettings)},
		Runs:     &RunRepo{byTask: make(map[uuid.UUID]domain.BatchRun)},
	}
}

// RunInTx runs fn with other transactions excluded. Writes are not rolled
// back when fn fails.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(ctx)
}

// Ping always succeeds unless ctx is done.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}
