// Package gemini implements the image provider against the Gemini API.
package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/artfox/nanogallery-backend/internal/config"
	"github.com/artfox/nanogallery-backend/internal/domain"
)

const (
	optimizeInstruction = `You are an expert AI image generation prompt engineer. Optimize the following prompt to be more descriptive, artistic, and suitable for high-quality image generation. Enhance lighting, texture, and composition details. Maintain the original language (English or Chinese). Output ONLY the optimized prompt text. Original prompt: %q`

	translateInstruction = `Translate the following text. If the input is primarily Chinese, translate it to English. If the input is primarily English, translate it to Chinese. Output ONLY the translated text without any explanation or quotes. Text: %q`
)

// Client calls the Gemini API for image generation and the two prompt
// transforms. A fresh genai client is built per call so that a session's
// personal API key can override the server key.
type Client struct {
	cfg config.GeminiConfig
	log *slog.Logger
}

// New creates a Client.
func New(cfg config.GeminiConfig, logger *slog.Logger) *Client {
	return &Client{cfg: cfg, log: logger.With("provider", "gemini")}
}

// Generate produces (or edits, when a source image is present) one image
// and returns it as a PNG data URI. The resolution tier selects the model:
// 1K routes to the flash image model, 2K/4K to the pro model.
func (c *Client) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	client, err := c.newClient(ctx, req.APIKey)
	if err != nil {
		return "", err
	}

	model := c.cfg.ImageModel
	if req.Resolution.IsHighRes() {
		model = c.cfg.ProImageModel
	}

	var parts []*genai.Part
	if req.SourceImage != "" {
		data, err := decodeImage(req.SourceImage)
		if err != nil {
			return "", fmt.Errorf("decode source image: %w", err)
		}
		parts = append(parts, genai.NewPartFromBytes(data, "image/png"))
	}
	parts = append(parts, genai.NewPartFromText(req.Prompt))

	cfg := &genai.GenerateContentConfig{ImageConfig: &genai.ImageConfig{}}
	if req.AspectRatio != domain.AspectRatioAuto {
		cfg.ImageConfig.AspectRatio = req.AspectRatio.String()
	}
	// Image size is a pro-model-only knob.
	if req.Resolution.IsHighRes() {
		cfg.ImageConfig.ImageSize = req.Resolution.String()
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", classify(err)
	}

	// The response may interleave text and image parts; take the first image.
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				encoded := base64.StdEncoding.EncodeToString(part.InlineData.Data)
				return "data:image/png;base64," + encoded, nil
			}
		}
	}

	return "", &domain.ProviderError{Message: "no image generated in the response"}
}

// Optimize rewrites a prompt to be more descriptive.
func (c *Client) Optimize(ctx context.Context, prompt string) (string, error) {
	return c.transform(ctx, optimizeInstruction, prompt)
}

// Translate translates a prompt between Chinese and English, whichever
// direction applies.
func (c *Client) Translate(ctx context.Context, prompt string) (string, error) {
	return c.transform(ctx, translateInstruction, prompt)
}

func (c *Client) transform(ctx context.Context, instruction, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	client, err := c.newClient(ctx, "")
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, c.cfg.TextModel,
		genai.Text(fmt.Sprintf(instruction, prompt)), nil)
	if err != nil {
		return "", classify(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return prompt, nil
	}
	return text, nil
}

func (c *Client) newClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	key := apiKey
	if key == "" {
		key = c.cfg.APIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return client, nil
}

// decodeImage accepts either a full data URI or bare base64.
func decodeImage(s string) ([]byte, error) {
	if _, rest, ok := strings.Cut(s, ","); ok {
		s = rest
	}
	return base64.StdEncoding.DecodeString(s)
}
