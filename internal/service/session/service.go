// Package session implements account registration, login and logout, and
// the per-client session state that every authenticated operation hangs off.
package session

import (
	"context"
	"log/slog"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the session service.
type userRepo interface {
	Create(ctx context.Context, user *domain.RegisteredUser) error
	GetByUsername(ctx context.Context, username string) (*domain.RegisteredUser, error)
	GetByID(ctx context.Context, id string) (*domain.RegisteredUser, error)
}

// sessionRepo defines the session repository interface needed by the session service.
type sessionRepo interface {
	Create(ctx context.Context, sess *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

// Service implements account and session operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionRepo
}

// NewService creates a new session service instance.
func NewService(logger *slog.Logger, users userRepo, sessions sessionRepo) *Service {
	return &Service{
		log:      logger.With("service", "session"),
		users:    users,
		sessions: sessions,
	}
}
