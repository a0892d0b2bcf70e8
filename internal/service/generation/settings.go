package generation

import (
	"context"
	"fmt"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// SetCredential stores a personal API key on the session. High-resolution
// tiers are unavailable until one is set. An empty key clears it.
func (s *Service) SetCredential(ctx context.Context, sessionID, apiKey string) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("generation.SetCredential: %w", err)
	}
	sess.APIKey = apiKey
	if err := s.sessions.Update(ctx, sess); err != nil {
		return fmt.Errorf("generation.SetCredential: %w", err)
	}
	return nil
}

// ResetResult is returned by Reset.
type ResetResult struct {
	Notification domain.Notification
}

// Reset clears the generator state for the session, including a pending
// remix seed. Generation defaults are the client's concern; the server
// only holds the seed.
func (s *Service) Reset(ctx context.Context, sessionID string) (*ResetResult, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("generation.Reset: %w", err)
	}
	if sess.Remix != nil {
		sess.Remix = nil
		if err := s.sessions.Update(ctx, sess); err != nil {
			return nil, fmt.Errorf("generation.Reset: %w", err)
		}
	}
	return &ResetResult{
		Notification: domain.SuccessNotification("Settings reset"),
	}, nil
}
