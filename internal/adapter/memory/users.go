// Package memory implements the repositories on plain in-process state.
// It is the default backend: everything lives for the lifetime of the
// process and is cleared on restart.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// UserRepo is the in-memory user registry.
type UserRepo struct {
	mu    sync.RWMutex
	users []domain.RegisteredUser
}

// NewUserRepo creates an empty registry.
func NewUserRepo() *UserRepo {
	return &UserRepo{}
}

// Create appends a new registry entry. Usernames are unique, compared
// case-sensitively; IDs are unique too, so usernames differing only in
// case still collide on the derived ID, same as the primary key in the
// postgres backend.
func (r *UserRepo) Create(_ context.Context, user *domain.RegisteredUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username || u.ID == user.ID {
			return fmt.Errorf("user %s: %w", user.Username, domain.ErrAlreadyExists)
		}
	}
	r.users = append(r.users, *user)
	return nil
}

// GetByUsername returns the registry entry for an exact username match.
func (r *UserRepo) GetByUsername(_ context.Context, username string) (*domain.RegisteredUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
}

// GetByID returns the registry entry for a user ID.
func (r *UserRepo) GetByID(_ context.Context, id string) (*domain.RegisteredUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}
