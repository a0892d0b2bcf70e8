package gallery

import (
	"context"
	"fmt"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// ToggleLike flips the user's like on an item. Liking requires a logged-in
// user; the notification depends on whose work it was and on the direction
// of the toggle.
func (s *Service) ToggleLike(ctx context.Context, userID, itemID string) (*ItemResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("gallery.ToggleLike: %w", domain.ErrUnauthorized)
	}

	var result ItemResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.items.GetByID(txCtx, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		liked := item.ToggleLike(userID)
		if err := s.items.Update(txCtx, item); err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		switch {
		case liked && item.AuthorID != userID:
			result.Notification = domain.SuccessNotification(
				fmt.Sprintf("You liked %s's work!", item.AuthorName))
		case liked:
			result.Notification = domain.SuccessNotification("Added to liked works")
		default:
			result.Notification = domain.SuccessNotification("Removed like")
		}
		result.Item = *item
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("gallery.ToggleLike: %w", err)
	}

	return &result, nil
}
