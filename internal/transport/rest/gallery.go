package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/artfox/nanogallery-backend/internal/domain"
	"github.com/artfox/nanogallery-backend/internal/service/gallery"
	"github.com/artfox/nanogallery-backend/pkg/ctxutil"
)

// galleryService defines the minimal interface needed by GalleryHandler.
type galleryService interface {
	Feed(ctx context.Context, sort domain.FeedSort) ([]domain.GalleryItem, error)
	UserItems(ctx context.Context, userID string) ([]domain.GalleryItem, error)
	ToggleLike(ctx context.Context, userID, itemID string) (*gallery.ItemResult, error)
	TogglePublish(ctx context.Context, userID, itemID string) (*gallery.ItemResult, error)
	Delete(ctx context.Context, userID, itemID string) (*gallery.DeleteResult, error)
	RecordView(ctx context.Context, sessionID, itemID string) (*domain.GalleryItem, error)
	OpenItem(ctx context.Context, sessionID string) (*domain.GalleryItem, error)
	CloseItem(ctx context.Context, sessionID string) error
	Remix(ctx context.Context, sessionID, itemID string) (*gallery.RemixResult, error)
}

// GalleryHandler serves the feed, profile and per-item REST endpoints.
type GalleryHandler struct {
	svc galleryService
	log *slog.Logger
}

// NewGalleryHandler creates a GalleryHandler.
func NewGalleryHandler(svc galleryService, logger *slog.Logger) *GalleryHandler {
	return &GalleryHandler{svc: svc, log: logger.With("handler", "gallery")}
}

type itemMutationResponse struct {
	Item         itemResponse         `json:"item"`
	Notification notificationResponse `json:"notification"`
}

// Feed handles GET /api/gallery?sort=time|likes|views.
func (h *GalleryHandler) Feed(w http.ResponseWriter, r *http.Request) {
	sort := domain.FeedSort(r.URL.Query().Get("sort"))
	if sort == "" {
		sort = domain.FeedSortTime
	}

	items, err := h.svc.Feed(r.Context(), sort)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": toItemResponses(items)})
}

// UserItems handles GET /api/profile/items.
func (h *GalleryHandler) UserItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	items, err := h.svc.UserItems(r.Context(), userID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": toItemResponses(items)})
}

// Like handles POST /api/items/{id}/like.
func (h *GalleryHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	result, err := h.svc.ToggleLike(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, itemMutationResponse{
		Item:         toItemResponse(result.Item),
		Notification: toNotificationResponse(result.Notification),
	})
}

// Publish handles POST /api/items/{id}/publish.
func (h *GalleryHandler) Publish(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.svc.TogglePublish(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, itemMutationResponse{
		Item:         toItemResponse(result.Item),
		Notification: toNotificationResponse(result.Notification),
	})
}

// Delete handles DELETE /api/items/{id}.
func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.svc.Delete(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"notification": toNotificationResponse(result.Notification),
	})
}

// View handles POST /api/items/{id}/view. It counts the view and opens
// the item in the session's detail view.
func (h *GalleryHandler) View(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := ctxutil.SessionIDFromCtx(r.Context())

	item, err := h.svc.RecordView(r.Context(), sessionID, r.PathValue("id"))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"item": toItemResponse(*item)})
}

// Detail handles GET /api/items/detail: the item currently open in the
// session's detail view, with fresh like and view counts.
func (h *GalleryHandler) Detail(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	item, err := h.svc.OpenItem(r.Context(), sessionID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"item": toItemResponse(*item)})
}

// CloseDetail handles DELETE /api/items/detail.
func (h *GalleryHandler) CloseDetail(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.svc.CloseItem(r.Context(), sessionID); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Remix handles POST /api/items/{id}/remix.
func (h *GalleryHandler) Remix(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.svc.Remix(r.Context(), sessionID, r.PathValue("id"))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"seed": map[string]string{
			"prompt":      result.Seed.Prompt,
			"sourceImage": result.Seed.SourceImage,
		},
		"notification": toNotificationResponse(result.Notification),
		"view":         "generator",
	})
}
