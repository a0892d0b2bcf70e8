package gallery

import "github.com/artfox/nanogallery-backend/internal/domain"

// ItemResult is returned by gallery mutations that target a single item.
type ItemResult struct {
	Item         domain.GalleryItem
	Notification domain.Notification
}
