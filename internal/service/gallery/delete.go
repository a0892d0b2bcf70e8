package gallery

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// DeleteResult is returned by Delete.
type DeleteResult struct {
	Notification domain.Notification
}

// Delete removes an item permanently. Only the author may delete; any
// session that had the item open in its detail view has that view closed.
func (s *Service) Delete(ctx context.Context, userID, itemID string) (*DeleteResult, error) {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.items.GetByID(txCtx, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if item.AuthorID != userID {
			return fmt.Errorf("item %s: %w", itemID, domain.ErrForbidden)
		}
		if err := s.items.Delete(txCtx, itemID); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("gallery.Delete: %w", err)
	}

	if err := s.sessions.ClearOpenItem(ctx, itemID); err != nil {
		s.log.WarnContext(ctx, "failed to clear open item",
			slog.String("item_id", itemID), slog.Any("error", err))
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("item_id", itemID),
		slog.String("author_id", userID))

	return &DeleteResult{
		Notification: domain.InfoNotification("Creation deleted"),
	}, nil
}
