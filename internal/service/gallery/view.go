package gallery

import (
	"context"
	"errors"
	"fmt"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// RecordView opens an item in the session's detail view and counts the
// view. Opening the same item again counts again.
func (s *Service) RecordView(ctx context.Context, sessionID, itemID string) (*domain.GalleryItem, error) {
	var updated *domain.GalleryItem

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.items.GetByID(txCtx, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		item.Views++
		if err := s.items.Update(txCtx, item); err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("gallery.RecordView: %w", err)
	}

	if sessionID != "" {
		sess, err := s.sessions.Get(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("gallery.RecordView: %w", err)
		}
		sess.OpenItemID = itemID
		if err := s.sessions.Update(ctx, sess); err != nil {
			return nil, fmt.Errorf("gallery.RecordView: %w", err)
		}
	}

	return updated, nil
}

// OpenItem returns the item currently open in the session's detail view,
// re-read from the store so likes and views are current. Returns
// ErrNotFound when nothing is open or the item has since been deleted.
func (s *Service) OpenItem(ctx context.Context, sessionID string) (*domain.GalleryItem, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("gallery.OpenItem: %w", err)
	}
	if sess.OpenItemID == "" {
		return nil, fmt.Errorf("gallery.OpenItem: no open item: %w", domain.ErrNotFound)
	}

	item, err := s.items.GetByID(ctx, sess.OpenItemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Item vanished under the open view; close it.
			sess.OpenItemID = ""
			_ = s.sessions.Update(ctx, sess)
		}
		return nil, fmt.Errorf("gallery.OpenItem: %w", err)
	}
	return item, nil
}

// CloseItem clears the session's detail view.
func (s *Service) CloseItem(ctx context.Context, sessionID string) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("gallery.CloseItem: %w", err)
	}
	if sess.OpenItemID == "" {
		return nil
	}
	sess.OpenItemID = ""
	if err := s.sessions.Update(ctx, sess); err != nil {
		return fmt.Errorf("gallery.CloseItem: %w", err)
	}
	return nil
}
