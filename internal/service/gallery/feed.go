package gallery

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// Feed returns all public items ordered for display. The ordering is
// derived at read time from the requested sort; ties keep the newest
// item first.
func (s *Service) Feed(ctx context.Context, sort domain.FeedSort) ([]domain.GalleryItem, error) {
	if !sort.IsValid() {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "sort", Message: "must be one of: time, likes, views"},
		}}
	}

	items, err := s.items.ListPublic(ctx)
	if err != nil {
		return nil, fmt.Errorf("gallery.Feed: %w", err)
	}

	switch sort {
	case domain.FeedSortLikes:
		slices.SortStableFunc(items, func(a, b domain.GalleryItem) int {
			if c := cmp.Compare(len(b.LikedBy), len(a.LikedBy)); c != 0 {
				return c
			}
			return cmp.Compare(b.Timestamp, a.Timestamp)
		})
	case domain.FeedSortViews:
		slices.SortStableFunc(items, func(a, b domain.GalleryItem) int {
			if c := cmp.Compare(b.Views, a.Views); c != 0 {
				return c
			}
			return cmp.Compare(b.Timestamp, a.Timestamp)
		})
	default:
		slices.SortStableFunc(items, func(a, b domain.GalleryItem) int {
			return cmp.Compare(b.Timestamp, a.Timestamp)
		})
	}

	return items, nil
}

// UserItems returns every item owned by the user, public and private,
// newest first.
func (s *Service) UserItems(ctx context.Context, userID string) ([]domain.GalleryItem, error) {
	items, err := s.items.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("gallery.UserItems: %w", err)
	}

	slices.SortStableFunc(items, func(a, b domain.GalleryItem) int {
		return cmp.Compare(b.Timestamp, a.Timestamp)
	})
	return items, nil
}
