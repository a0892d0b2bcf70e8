package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "memory":
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required when storage.backend is postgres")
		}
	default:
		return fmt.Errorf("storage.backend must be memory or postgres (got %q)", c.Storage.Backend)
	}

	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required")
	}

	if c.Gallery.MaxItemsPerAuthor <= 0 {
		return fmt.Errorf("gallery.max_items_per_author must be > 0 (got %d)", c.Gallery.MaxItemsPerAuthor)
	}
	if c.Gallery.MaxPromptUnits <= 0 {
		return fmt.Errorf("gallery.max_prompt_units must be > 0 (got %d)", c.Gallery.MaxPromptUnits)
	}
	if c.Gallery.MaxSourceImageBytes <= 0 {
		return fmt.Errorf("gallery.max_source_image_bytes must be > 0 (got %d)", c.Gallery.MaxSourceImageBytes)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 when enabled (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}
