package session

import (
	"context"
	"fmt"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// LogoutResult is returned by Logout.
type LogoutResult struct {
	Notification domain.Notification
}

// Logout drops the session. All per-session state (open detail view,
// remix seed, personal API key) disappears with it. Logging out an
// already-expired token is not an error.
func (s *Service) Logout(ctx context.Context, token string) (*LogoutResult, error) {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return nil, fmt.Errorf("session.Logout: %w", err)
	}
	return &LogoutResult{
		Notification: domain.InfoNotification("Logged out successfully"),
	}, nil
}
