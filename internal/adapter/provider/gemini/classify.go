package gemini

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// classify maps provider failures to domain errors. A 403, a 404, or the
// "Requested entity was not found" message all mean the caller's key lacks
// access to the requested model; every other failure becomes a
// ProviderError so the client sees the provider's message unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusForbidden || apiErr.Code == http.StatusNotFound {
			return fmt.Errorf("%s: %w", apiErr.Message, domain.ErrPermissionDenied)
		}
		return &domain.ProviderError{Message: apiErr.Message}
	}

	if strings.Contains(err.Error(), "Requested entity was not found") {
		return fmt.Errorf("%s: %w", err.Error(), domain.ErrPermissionDenied)
	}

	return &domain.ProviderError{Message: err.Error()}
}
