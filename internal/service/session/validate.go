package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// ValidateToken resolves a bearer token to the user it belongs to.
// Returns ErrUnauthorized for unknown tokens.
func (s *Service) ValidateToken(ctx context.Context, token string) (string, error) {
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("session.ValidateToken: %w", domain.ErrUnauthorized)
		}
		return "", fmt.Errorf("session.ValidateToken: %w", err)
	}
	return sess.UserID, nil
}

// CurrentUser returns the public profile for an authenticated user ID.
func (s *Service) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("session.CurrentUser: %w", err)
	}
	out := user.User
	return &out, nil
}
