package gallery

import (
	"context"
	"fmt"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// TogglePublish flips an item between the public gallery and the author's
// private history. Only the author may toggle; anyone else gets ErrForbidden.
func (s *Service) TogglePublish(ctx context.Context, userID, itemID string) (*ItemResult, error) {
	var result ItemResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.items.GetByID(txCtx, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if item.AuthorID != userID {
			return fmt.Errorf("item %s: %w", itemID, domain.ErrForbidden)
		}

		item.IsPublic = !item.IsPublic
		if err := s.items.Update(txCtx, item); err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		message := "Removed from Gallery"
		if item.IsPublic {
			message = "Published to Gallery"
		}
		result.Item = *item
		result.Notification = domain.SuccessNotification(message)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("gallery.TogglePublish: %w", err)
	}

	return &result, nil
}
