package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// SessionRepo holds live sessions. Sessions are always in-memory, even when
// users and items are persisted: restart logs everyone out.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewSessionRepo creates an empty session store.
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: make(map[string]domain.Session)}
}

// Create stores a new session keyed by its token.
func (r *SessionRepo) Create(_ context.Context, sess *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sess.Token]; ok {
		return fmt.Errorf("session: %w", domain.ErrAlreadyExists)
	}
	r.sessions[sess.Token] = cloneSession(*sess)
	return nil
}

// Get returns a copy of the session for a token.
func (r *SessionRepo) Get(_ context.Context, token string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[token]
	if !ok {
		return nil, fmt.Errorf("session: %w", domain.ErrNotFound)
	}
	out := cloneSession(sess)
	return &out, nil
}

// Update replaces the stored session.
func (r *SessionRepo) Update(_ context.Context, sess *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sess.Token]; !ok {
		return fmt.Errorf("session: %w", domain.ErrNotFound)
	}
	r.sessions[sess.Token] = cloneSession(*sess)
	return nil
}

// Delete removes the session. Deleting an unknown token is not an error.
func (r *SessionRepo) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}

// ClearOpenItem clears the open detail view of every session that has the
// given item open. Used when the item is deleted.
func (r *SessionRepo) ClearOpenItem(_ context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for token, sess := range r.sessions {
		if sess.OpenItemID == itemID {
			sess.OpenItemID = ""
			r.sessions[token] = sess
		}
	}
	return nil
}

func cloneSession(s domain.Session) domain.Session {
	if s.Remix != nil {
		remix := *s.Remix
		s.Remix = &remix
	}
	return s
}
