package generation

import (
	"encoding/base64"
	"strings"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

// GenerateInput holds parameters for Generate.
type GenerateInput struct {
	Prompt      string
	SourceImage string
	AspectRatio domain.AspectRatio
	Resolution  domain.Resolution
	Format      domain.OutputFormat
	Publish     bool
}

// normalize fills unset settings with their defaults.
func (i *GenerateInput) normalize() {
	if i.AspectRatio == "" {
		i.AspectRatio = domain.AspectRatioAuto
	}
	if i.Resolution == "" {
		i.Resolution = domain.Resolution1K
	}
	if i.Format == "" {
		i.Format = domain.OutputFormatJPEG
	}
}

// Validate validates the generate input against the configured limits.
func (i GenerateInput) Validate(maxPromptUnits int, maxSourceImageBytes int64) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Prompt) == "" {
		errs = append(errs, domain.FieldError{Field: "prompt", Message: "required"})
	} else if domain.PromptUnits(i.Prompt) > maxPromptUnits {
		errs = append(errs, domain.FieldError{Field: "prompt", Message: "too long"})
	}

	if i.SourceImage != "" {
		if int64(decodedImageSize(i.SourceImage)) > maxSourceImageBytes {
			errs = append(errs, domain.FieldError{Field: "source_image", Message: "too large"})
		}
	}

	if !i.AspectRatio.IsValid() {
		errs = append(errs, domain.FieldError{Field: "aspect_ratio", Message: "invalid value"})
	}
	if !i.Resolution.IsValid() {
		errs = append(errs, domain.FieldError{Field: "resolution", Message: "invalid value"})
	}
	if !i.Format.IsValid() {
		errs = append(errs, domain.FieldError{Field: "format", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// decodedImageSize returns the decoded byte count of a base64 image,
// with or without a data-URI prefix.
func decodedImageSize(s string) int {
	if _, payload, ok := strings.Cut(s, ";base64,"); ok {
		s = payload
	}
	return base64.StdEncoding.DecodedLen(len(s))
}

// PromptInput holds parameters for Optimize and Translate.
type PromptInput struct {
	Prompt string
}

// Validate validates the prompt input.
func (i PromptInput) Validate() error {
	if strings.TrimSpace(i.Prompt) == "" {
		return &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "prompt", Message: "required"},
		}}
	}
	return nil
}
