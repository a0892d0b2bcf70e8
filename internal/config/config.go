package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Gallery   GalleryConfig   `yaml:"gallery"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// StorageConfig selects the storage backend. The default in-memory backend
// holds everything for the process lifetime only; "postgres" persists users
// and items across restarts.
type StorageConfig struct {
	Backend string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"memory"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only used when
// storage.backend is "postgres".
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// GeminiConfig holds the image provider settings. The server key covers the
// standard tier; high-resolution tiers require a personal key supplied per
// session.
type GeminiConfig struct {
	APIKey        string        `yaml:"api_key"         env:"GEMINI_API_KEY"`
	ImageModel    string        `yaml:"image_model"     env:"GEMINI_IMAGE_MODEL"     env-default:"gemini-2.5-flash-image"`
	ProImageModel string        `yaml:"pro_image_model" env:"GEMINI_PRO_IMAGE_MODEL" env-default:"gemini-3-pro-image-preview"`
	TextModel     string        `yaml:"text_model"      env:"GEMINI_TEXT_MODEL"      env-default:"gemini-2.5-flash"`
	Timeout       time.Duration `yaml:"timeout"         env:"GEMINI_TIMEOUT"         env-default:"90s"`
}

// GalleryConfig holds gallery and generation limits.
type GalleryConfig struct {
	MaxItemsPerAuthor   int   `yaml:"max_items_per_author"   env:"GALLERY_MAX_ITEMS_PER_AUTHOR"   env-default:"100"`
	MaxPromptUnits      int   `yaml:"max_prompt_units"       env:"GALLERY_MAX_PROMPT_UNITS"       env-default:"1000"`
	MaxSourceImageBytes int64 `yaml:"max_source_image_bytes" env:"GALLERY_MAX_SOURCE_IMAGE_BYTES" env-default:"10485760"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-IP rate limit settings.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}
