package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/artfox/nanogallery-backend/internal/domain"
	"github.com/artfox/nanogallery-backend/internal/service/generation"
	"github.com/artfox/nanogallery-backend/pkg/ctxutil"
)

// generationService defines the minimal interface needed by GenerationHandler.
type generationService interface {
	Generate(ctx context.Context, sessionID, userID string, input generation.GenerateInput) (*generation.GenerateResult, error)
	Optimize(ctx context.Context, sessionID string, input generation.PromptInput) (string, error)
	Translate(ctx context.Context, sessionID string, input generation.PromptInput) (string, error)
	SetCredential(ctx context.Context, sessionID, apiKey string) error
	Reset(ctx context.Context, sessionID string) (*generation.ResetResult, error)
}

// seedConsumer hands out a pending remix seed exactly once.
type seedConsumer interface {
	ConsumeSeed(ctx context.Context, sessionID string) (*domain.RemixSeed, error)
}

// GenerationHandler serves the generator REST endpoints.
type GenerationHandler struct {
	svc   generationService
	seeds seedConsumer
	log   *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(svc generationService, seeds seedConsumer, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{
		svc:   svc,
		seeds: seeds,
		log:   logger.With("handler", "generation"),
	}
}

type generateRequest struct {
	Prompt      string `json:"prompt"`
	SourceImage string `json:"sourceImage"`
	AspectRatio string `json:"aspectRatio"`
	Resolution  string `json:"resolution"`
	Format      string `json:"format"`
	Publish     bool   `json:"publish"`
}

type promptRequest struct {
	Prompt string `json:"prompt"`
}

type credentialRequest struct {
	APIKey string `json:"apiKey"`
}

// Generate handles POST /api/generation.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	sessionID, _ := ctxutil.SessionIDFromCtx(r.Context())

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Generate(r.Context(), sessionID, userID, generation.GenerateInput{
		Prompt:      req.Prompt,
		SourceImage: req.SourceImage,
		AspectRatio: domain.AspectRatio(req.AspectRatio),
		Resolution:  domain.Resolution(req.Resolution),
		Format:      domain.OutputFormat(req.Format),
		Publish:     req.Publish,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"imageUrl":     result.ImageURL,
		"item":         toItemResponse(result.Item),
		"notification": toNotificationResponse(result.Notification),
	})
}

// Optimize handles POST /api/generation/optimize.
func (h *GenerationHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	h.transform(w, r, h.svc.Optimize)
}

// Translate handles POST /api/generation/translate.
func (h *GenerationHandler) Translate(w http.ResponseWriter, r *http.Request) {
	h.transform(w, r, h.svc.Translate)
}

func (h *GenerationHandler) transform(
	w http.ResponseWriter,
	r *http.Request,
	call func(ctx context.Context, sessionID string, input generation.PromptInput) (string, error),
) {
	sessionID, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req promptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	prompt, err := call(r.Context(), sessionID, generation.PromptInput{Prompt: req.Prompt})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"prompt": prompt})
}

// Credential handles PUT /api/generation/credential. An empty key clears
// the stored one.
func (h *GenerationHandler) Credential(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req credentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.SetCredential(r.Context(), sessionID, req.APIKey); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Reset handles POST /api/generation/reset.
func (h *GenerationHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.svc.Reset(r.Context(), sessionID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"notification": toNotificationResponse(result.Notification),
	})
}

// Seed handles GET /api/generation/seed. Returns the pending remix seed
// and clears it; 204 when none is pending.
func (h *GenerationHandler) Seed(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	seed, err := h.seeds.ConsumeSeed(r.Context(), sessionID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	if seed == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"prompt":      seed.Prompt,
		"sourceImage": seed.SourceImage,
	})
}
