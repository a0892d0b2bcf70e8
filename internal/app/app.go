// Package app wires configuration, storage, services and the HTTP server
// together and owns the process lifecycle.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/artfox/nanogallery-backend/internal/adapter/memory"
	"github.com/artfox/nanogallery-backend/internal/adapter/postgres"
	itemrepo "github.com/artfox/nanogallery-backend/internal/adapter/postgres/item"
	userrepo "github.com/artfox/nanogallery-backend/internal/adapter/postgres/user"
	"github.com/artfox/nanogallery-backend/internal/adapter/provider/gemini"
	"github.com/artfox/nanogallery-backend/internal/config"
	"github.com/artfox/nanogallery-backend/internal/domain"
	"github.com/artfox/nanogallery-backend/internal/service/gallery"
	"github.com/artfox/nanogallery-backend/internal/service/generation"
	"github.com/artfox/nanogallery-backend/internal/service/session"
	"github.com/artfox/nanogallery-backend/internal/transport/middleware"
	"github.com/artfox/nanogallery-backend/internal/transport/rest"
	"github.com/artfox/nanogallery-backend/migrations"
)

// userStore is the user repository surface shared by both backends.
type userStore interface {
	Create(ctx context.Context, user *domain.RegisteredUser) error
	GetByUsername(ctx context.Context, username string) (*domain.RegisteredUser, error)
	GetByID(ctx context.Context, id string) (*domain.RegisteredUser, error)
}

// itemStore is the item repository surface shared by both backends.
type itemStore interface {
	Insert(ctx context.Context, item *domain.GalleryItem) error
	GetByID(ctx context.Context, id string) (*domain.GalleryItem, error)
	Update(ctx context.Context, item *domain.GalleryItem) error
	Delete(ctx context.Context, id string) error
	ListPublic(ctx context.Context) ([]domain.GalleryItem, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.GalleryItem, error)
	CountByAuthor(ctx context.Context, authorID string) (int, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, picks the
// storage backend, builds the services and serves HTTP until the context
// is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("storage_backend", cfg.Storage.Backend),
		slog.String("log_level", cfg.Log.Level),
	)

	var (
		users userStore
		items itemStore
		tx    txRunner
		ping  pinger
	)

	if cfg.Storage.Backend == "postgres" {
		if err := migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()

		users = userrepo.New(pool)
		items = itemrepo.New(pool)
		tx = postgres.NewTxManager(pool)
		ping = pool
	} else {
		users = memory.NewUserRepo()
		items = memory.NewItemRepo()
		tx = memory.NewTxManager()
		ping = memory.Pinger{}
	}

	// Sessions are in-memory regardless of backend: restart logs everyone out.
	sessions := memory.NewSessionRepo()

	provider := gemini.New(cfg.Gemini, logger)

	sessionSvc := session.NewService(logger, users, sessions)
	gallerySvc := gallery.NewService(logger, items, sessions, tx, cfg.Gallery)
	generationSvc := generation.NewService(logger, provider, gallerySvc, users, sessions, cfg.Gallery)

	router := rest.NewRouter(rest.Handlers{
		Auth:       rest.NewAuthHandler(sessionSvc, logger),
		Gallery:    rest.NewGalleryHandler(gallerySvc, logger),
		Generation: rest.NewGenerationHandler(generationSvc, gallerySvc, logger),
		Health:     rest.NewHealthHandler(ping, BuildVersion()),
	})

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.RateLimit.PerMinute))
	}
	mws = append(mws,
		middleware.Logger(logger),
		middleware.Auth(sessionSvc),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      middleware.Chain(mws...)(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// migrate applies pending schema migrations through the database/sql pgx
// driver; the pgxpool connection is opened afterwards.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	if _, err := provider.Up(ctx); err != nil {
		return err
	}
	return nil
}
