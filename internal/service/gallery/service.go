// Package gallery implements the shared creation store: the public feed,
// per-user histories, likes, views, publish toggles and remix seeding.
package gallery

import (
	"context"
	"log/slog"
	"sync"

	"github.com/artfox/nanogallery-backend/internal/config"
	"github.com/artfox/nanogallery-backend/internal/domain"
)

// itemRepo defines the item repository interface needed by the gallery service.
type itemRepo interface {
	Insert(ctx context.Context, item *domain.GalleryItem) error
	GetByID(ctx context.Context, id string) (*domain.GalleryItem, error)
	Update(ctx context.Context, item *domain.GalleryItem) error
	Delete(ctx context.Context, id string) error
	ListPublic(ctx context.Context) ([]domain.GalleryItem, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.GalleryItem, error)
	CountByAuthor(ctx context.Context, authorID string) (int, error)
}

// sessionRepo defines the session repository interface needed by the gallery service.
type sessionRepo interface {
	Get(ctx context.Context, token string) (*domain.Session, error)
	Update(ctx context.Context, sess *domain.Session) error
	ClearOpenItem(ctx context.Context, itemID string) error
}

// txManager defines the transaction manager interface needed by the gallery service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements gallery operations.
type Service struct {
	log      *slog.Logger
	items    itemRepo
	sessions sessionRepo
	tx       txManager
	cfg      config.GalleryConfig

	// Item IDs are millisecond creation timestamps; two creations landing
	// in the same millisecond must not collide.
	idMu   sync.Mutex
	lastID int64
}

// NewService creates a new gallery service instance.
func NewService(logger *slog.Logger, items itemRepo, sessions sessionRepo, tx txManager, cfg config.GalleryConfig) *Service {
	return &Service{
		log:      logger.With("service", "gallery"),
		items:    items,
		sessions: sessions,
		tx:       tx,
		cfg:      cfg,
	}
}
