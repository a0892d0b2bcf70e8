// Package rest implements the JSON HTTP API consumed by the gallery SPA.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

type errorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code,omitempty"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type notificationResponse struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type itemResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	ImageURLs  []string `json:"imageUrls"`
	LikedBy    []string `json:"likedBy"`
	Views      int      `json:"views"`
	Date       string   `json:"date"`
	Timestamp  int64    `json:"timestamp"`
	Prompt     string   `json:"prompt"`
	AuthorID   string   `json:"authorId"`
	AuthorName string   `json:"authorName"`
	IsPublic   bool     `json:"isPublic"`
}

func toNotificationResponse(n domain.Notification) notificationResponse {
	return notificationResponse{Message: n.Message, Type: string(n.Type)}
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
}

func toItemResponse(item domain.GalleryItem) itemResponse {
	return itemResponse{
		ID:         item.ID,
		Title:      item.Title,
		ImageURLs:  item.ImageURLs,
		LikedBy:    item.LikedBy,
		Views:      item.Views,
		Date:       item.Date,
		Timestamp:  item.Timestamp,
		Prompt:     item.Prompt,
		AuthorID:   item.AuthorID,
		AuthorName: item.AuthorName,
		IsPublic:   item.IsPublic,
	}
}

func toItemResponses(items []domain.GalleryItem) []itemResponse {
	out := make([]itemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps service errors onto HTTP statuses shared by every
// handler in the package.
func handleError(ctx context.Context, log *slog.Logger, w http.ResponseWriter, err error) {
	var (
		verr *domain.ValidationError
		perr *domain.ProviderError
	)

	switch {
	case errors.As(err, &verr):
		fields := make([]fieldError, len(verr.Errors))
		for i, fe := range verr.Errors {
			fields[i] = fieldError{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation failed",
			Code:   "validation",
			Fields: fields,
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation failed")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrCredentialRequired):
		writeJSON(w, http.StatusForbidden, errorResponse{
			Error: "High resolution requires a personal API Key. Please select one.",
			Code:  "api_key_required",
		})
	case errors.Is(err, domain.ErrPermissionDenied):
		writeJSON(w, http.StatusForbidden, errorResponse{
			Error: "Permission denied. Please select a valid API Key.",
			Code:  "permission_denied",
		})
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.As(err, &perr):
		// The provider's own message goes to the client unchanged.
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error: perr.Message,
			Code:  "provider",
		})
	case errors.Is(err, domain.ErrBusy):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error: "a request is already in flight",
			Code:  "busy",
		})
	default:
		log.ErrorContext(ctx, "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
