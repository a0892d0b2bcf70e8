package gallery

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// SaveInput holds parameters for SaveCreation.
type SaveInput struct {
	Prompt     string
	ImageURL   string
	AuthorID   string
	AuthorName string
	Publish    bool
}

// SaveCreation stores a freshly generated image as a new gallery item.
// Each author keeps at most cfg.MaxItemsPerAuthor items; when the cap is
// reached, that author's oldest creations are evicted to make room. Other
// authors' items are never touched.
func (s *Service) SaveCreation(ctx context.Context, input SaveInput) (*ItemResult, error) {
	now := time.Now()
	item := domain.NewGalleryItem(
		s.nextID(now), now,
		input.Prompt, input.ImageURL,
		input.AuthorID, input.AuthorName,
		input.Publish,
	)

	var evicted []string

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		count, err := s.items.CountByAuthor(txCtx, input.AuthorID)
		if err != nil {
			return fmt.Errorf("count author items: %w", err)
		}

		if count >= s.cfg.MaxItemsPerAuthor {
			// Oldest first, insertion order.
			existing, err := s.items.ListByAuthor(txCtx, input.AuthorID)
			if err != nil {
				return fmt.Errorf("list author items: %w", err)
			}
			drop := count - s.cfg.MaxItemsPerAuthor + 1
			for _, old := range existing[:drop] {
				if err := s.items.Delete(txCtx, old.ID); err != nil {
					return fmt.Errorf("evict item %s: %w", old.ID, err)
				}
				evicted = append(evicted, old.ID)
			}
		}

		if err := s.items.Insert(txCtx, &item); err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("gallery.SaveCreation: %w", err)
	}

	// Evicted items may still be open in someone's detail view.
	for _, id := range evicted {
		if err := s.sessions.ClearOpenItem(ctx, id); err != nil {
			s.log.WarnContext(ctx, "failed to clear open item",
				slog.String("item_id", id), slog.Any("error", err))
		}
	}

	s.log.InfoContext(ctx, "creation saved",
		slog.String("item_id", item.ID),
		slog.String("author_id", item.AuthorID),
		slog.Bool("public", item.IsPublic),
		slog.Int("evicted", len(evicted)))

	message := "Image saved to History"
	if item.IsPublic {
		message = "Image published to Gallery!"
	}
	return &ItemResult{
		Item:         item,
		Notification: domain.SuccessNotification(message),
	}, nil
}

// nextID returns a millisecond-timestamp item ID, bumped past the previous
// one when two creations land in the same millisecond.
func (s *Service) nextID(now time.Time) string {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}
