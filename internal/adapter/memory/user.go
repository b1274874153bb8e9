package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// UserRepo stores users keyed by ID with a unique email.
type UserRepo struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]domain.User
}

// GetByID returns a user by ID, or ErrNotFound.
func (r *UserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return &u, nil
}

// GetByEmail returns a user by exact email, or ErrNotFound.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
}

// Create stores a copy of u. A taken email or ID yields ErrAlreadyExists.
func (r *UserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[u.ID]; ok {
		return nil, fmt.Errorf("user %s: %w", u.ID, domain.ErrAlreadyExists)
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, fmt.Errorf("user %s: %w", u.Email, domain.ErrAlreadyExists)
		}
	}

	stored := *u
	r.byID[u.ID] = stored
	return &stored, nil
}
