package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/artfox/nanogallery-backend/internal/domain"
	"github.com/artfox/nanogallery-backend/internal/service/session"
	"github.com/artfox/nanogallery-backend/pkg/ctxutil"
)

// sessionService defines the minimal interface needed by AuthHandler.
type sessionService interface {
	Register(ctx context.Context, input session.CredentialsInput) (*session.AuthResult, error)
	Login(ctx context.Context, input session.CredentialsInput) (*session.AuthResult, error)
	Logout(ctx context.Context, token string) (*session.LogoutResult, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

// AuthHandler serves account and session REST endpoints.
type AuthHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc sessionService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token        string               `json:"token"`
	User         userResponse         `json:"user"`
	Notification notificationResponse `json:"notification"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Register(r.Context(), session.CredentialsInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Login(r.Context(), session.CredentialsInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := extractBearer(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	result, err := h.svc.Logout(r.Context(), token)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"notification": toNotificationResponse(result.Notification),
		"view":         "gallery",
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.svc.CurrentUser(r.Context(), userID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*user))
}

func toAuthResponse(result *session.AuthResult) authResponse {
	return authResponse{
		Token:        result.Token,
		User:         toUserResponse(result.User),
		Notification: toNotificationResponse(result.Notification),
	}
}

func extractBearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
