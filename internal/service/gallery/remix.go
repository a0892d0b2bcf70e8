package gallery

import (
	"context"
	"fmt"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// RemixResult is returned by Remix.
type RemixResult struct {
	Seed         domain.RemixSeed
	Notification domain.Notification
}

// Remix seeds the session's generator with an item's prompt and first
// image, closing any open detail view. The seed is consumed by the next
// ConsumeSeed call. Any logged-in user may remix any item.
func (s *Service) Remix(ctx context.Context, sessionID, itemID string) (*RemixResult, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("gallery.Remix: %w", err)
	}

	seed := domain.RemixSeed{Prompt: item.Prompt}
	if len(item.ImageURLs) > 0 {
		seed.SourceImage = item.ImageURLs[0]
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("gallery.Remix: %w", err)
	}
	sess.Remix = &seed
	sess.OpenItemID = ""
	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("gallery.Remix: %w", err)
	}

	return &RemixResult{
		Seed:         seed,
		Notification: domain.InfoNotification("Ready to remix! Settings loaded."),
	}, nil
}

// ConsumeSeed returns the session's pending remix seed and clears it, so
// it pre-fills the generator exactly once. Returns nil when no seed is
// pending.
func (s *Service) ConsumeSeed(ctx context.Context, sessionID string) (*domain.RemixSeed, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("gallery.ConsumeSeed: %w", err)
	}
	if sess.Remix == nil {
		return nil, nil
	}

	seed := *sess.Remix
	sess.Remix = nil
	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("gallery.ConsumeSeed: %w", err)
	}
	return &seed, nil
}
