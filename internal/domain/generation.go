package domain

// GenerationRequest is the contract with the external image provider.
// SourceImage, when present, is a base64 data URI (or bare base64) of a
// reference image to edit. APIKey overrides the server key; it is required
// for high-resolution tiers.
type GenerationRequest struct {
	Prompt      string
	SourceImage string
	AspectRatio AspectRatio
	Resolution  Resolution
	Format      OutputFormat
	APIKey      string
}
