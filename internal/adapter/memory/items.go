package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// ItemRepo is the in-memory gallery item store. Items are kept in insertion
// order; all feed ordering is derived at read time by the service layer.
type ItemRepo struct {
	mu    sync.RWMutex
	items []domain.GalleryItem
}

// NewItemRepo creates an empty item store.
func NewItemRepo() *ItemRepo {
	return &ItemRepo{}
}

// Insert appends a new item.
func (r *ItemRepo) Insert(_ context.Context, item *domain.GalleryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if it.ID == item.ID {
			return fmt.Errorf("item %s: %w", item.ID, domain.ErrAlreadyExists)
		}
	}
	r.items = append(r.items, cloneItem(*item))
	return nil
}

// GetByID returns a copy of the item.
func (r *ItemRepo) GetByID(_ context.Context, id string) (*domain.GalleryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.ID == id {
			out := cloneItem(it)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
}

// Update replaces the stored item, keeping its insertion position.
func (r *ItemRepo) Update(_ context.Context, item *domain.GalleryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == item.ID {
			r.items[i] = cloneItem(*item)
			return nil
		}
	}
	return fmt.Errorf("item %s: %w", item.ID, domain.ErrNotFound)
}

// Delete removes the item.
func (r *ItemRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == id {
			r.items = slices.Delete(r.items, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
}

// ListPublic returns copies of all public items in insertion order.
func (r *ItemRepo) ListPublic(_ context.Context) ([]domain.GalleryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.GalleryItem
	for _, it := range r.items {
		if it.IsPublic {
			out = append(out, cloneItem(it))
		}
	}
	return out, nil
}

// ListByAuthor returns copies of the author's items, least recently
// inserted first.
func (r *ItemRepo) ListByAuthor(_ context.Context, authorID string) ([]domain.GalleryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.GalleryItem
	for _, it := range r.items {
		if it.AuthorID == authorID {
			out = append(out, cloneItem(it))
		}
	}
	return out, nil
}

// CountByAuthor returns how many items the author currently holds.
func (r *ItemRepo) CountByAuthor(_ context.Context, authorID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, it := range r.items {
		if it.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

// cloneItem deep-copies the slices so callers never share backing arrays
// with the store.
func cloneItem(it domain.GalleryItem) domain.GalleryItem {
	it.ImageURLs = slices.Clone(it.ImageURLs)
	it.LikedBy = slices.Clone(it.LikedBy)
	return it
}
