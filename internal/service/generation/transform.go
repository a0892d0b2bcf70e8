package generation

import (
	"context"
	"fmt"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// Optimize rewrites a prompt into richer image-generation phrasing.
// One optimize request per session at a time.
func (s *Service) Optimize(ctx context.Context, sessionID string, input PromptInput) (string, error) {
	return s.transform(ctx, "optimize", sessionID, input, s.provider.Optimize)
}

// Translate translates a prompt to English, preserving its meaning.
// One translate request per session at a time.
func (s *Service) Translate(ctx context.Context, sessionID string, input PromptInput) (string, error) {
	return s.transform(ctx, "translate", sessionID, input, s.provider.Translate)
}

func (s *Service) transform(
	ctx context.Context,
	flow, sessionID string,
	input PromptInput,
	call func(ctx context.Context, prompt string) (string, error),
) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	key := flow + ":" + sessionID
	if !s.flights.acquire(key) {
		return "", fmt.Errorf("generation.%s: %w", flow, domain.ErrBusy)
	}
	defer s.flights.release(key)

	out, err := call(ctx, input.Prompt)
	if err != nil {
		return "", fmt.Errorf("generation.%s: %w", flow, err)
	}
	return out, nil
}
