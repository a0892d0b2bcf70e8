// Package generation implements the image generation flow: prompt
// validation, model-tier gating, the provider call, and auto-saving the
// result, plus the prompt helper flows (optimize, translate).
package generation

import (
	"context"
	"log/slog"

	"github.com/artfox/nanogallery-backend/internal/config"
	"github.com/artfox/nanogallery-backend/internal/domain"
	"github.com/artfox/nanogallery-backend/internal/service/gallery"
)

// imageProvider defines the external model provider interface needed by
// the generation service.
type imageProvider interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (string, error)
	Optimize(ctx context.Context, prompt string) (string, error)
	Translate(ctx context.Context, prompt string) (string, error)
}

// gallerySaver stores a finished generation as a gallery item.
type gallerySaver interface {
	SaveCreation(ctx context.Context, input gallery.SaveInput) (*gallery.ItemResult, error)
}

// userRepo defines the user repository interface needed by the generation service.
type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.RegisteredUser, error)
}

// sessionRepo defines the session repository interface needed by the generation service.
type sessionRepo interface {
	Get(ctx context.Context, token string) (*domain.Session, error)
	Update(ctx context.Context, sess *domain.Session) error
}

// Service implements generation operations.
type Service struct {
	log      *slog.Logger
	provider imageProvider
	gallery  gallerySaver
	users    userRepo
	sessions sessionRepo
	cfg      config.GalleryConfig

	flights flightTable
}

// NewService creates a new generation service instance.
func NewService(
	logger *slog.Logger,
	provider imageProvider,
	gallerySvc gallerySaver,
	users userRepo,
	sessions sessionRepo,
	cfg config.GalleryConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "generation"),
		provider: provider,
		gallery:  gallerySvc,
		users:    users,
		sessions: sessions,
		cfg:      cfg,
	}
}
