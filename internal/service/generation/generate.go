package generation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/artfox/nanogallery-backend/internal/domain"
	"github.com/artfox/nanogallery-backend/internal/service/gallery"
)

// GenerateResult is returned by Generate.
type GenerateResult struct {
	ImageURL     string
	Item         domain.GalleryItem
	Notification domain.Notification
}

// Generate runs the full flow: validate the prompt and settings, gate the
// high-resolution tiers on a personal API key, call the provider, and
// auto-save the result to the author's history (or the public gallery).
// A session runs one generation at a time; a second request while one is
// pending gets ErrBusy.
func (s *Service) Generate(ctx context.Context, sessionID, userID string, input GenerateInput) (*GenerateResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("generation.Generate: %w", domain.ErrUnauthorized)
	}

	input.normalize()
	if err := input.Validate(s.cfg.MaxPromptUnits, s.cfg.MaxSourceImageBytes); err != nil {
		return nil, err
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("generation.Generate: %w", err)
	}
	if input.Resolution.IsHighRes() && sess.APIKey == "" {
		return nil, fmt.Errorf("generation.Generate: high resolution: %w", domain.ErrCredentialRequired)
	}

	key := "generate:" + sessionID
	if !s.flights.acquire(key) {
		return nil, fmt.Errorf("generation.Generate: %w", domain.ErrBusy)
	}
	defer s.flights.release(key)

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("generation.Generate: %w", err)
	}

	imageURL, err := s.provider.Generate(ctx, domain.GenerationRequest{
		Prompt:      input.Prompt,
		SourceImage: input.SourceImage,
		AspectRatio: input.AspectRatio,
		Resolution:  input.Resolution,
		Format:      input.Format,
		APIKey:      sess.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("generation.Generate: %w", err)
	}

	saved, err := s.gallery.SaveCreation(ctx, gallery.SaveInput{
		Prompt:     input.Prompt,
		ImageURL:   imageURL,
		AuthorID:   user.ID,
		AuthorName: user.Username,
		Publish:    input.Publish,
	})
	if err != nil {
		return nil, fmt.Errorf("generation.Generate: %w", err)
	}

	s.log.InfoContext(ctx, "image generated",
		slog.String("user_id", userID),
		slog.String("item_id", saved.Item.ID),
		slog.String("resolution", input.Resolution.String()))

	return &GenerateResult{
		ImageURL:     imageURL,
		Item:         saved.Item,
		Notification: saved.Notification,
	}, nil
}
