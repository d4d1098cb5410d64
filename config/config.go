package config

import (
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Sync      SyncConfig      `json:"sync"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	CORS      CORSConfig      `json:"cors"`

	// SourcesFile points at the YAML file describing which upstream
	// publications to poll. Loaded separately via LoadSources.
	SourcesFile string `json:"sources_file" env:"PAI_SOURCES_FILE" default:"sources.yaml"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
}

type DatabaseConfig struct {
	// Backend selects the storage implementation: "sqlite" for the embedded
	// file store, "postgres" for a managed relational store.
	Backend  string `json:"backend" env:"DATABASE_BACKEND" default:"sqlite"`
	Path     string `json:"path" env:"DATABASE_PATH" default:"pai.db"`
	URL      string `json:"url" env:"DATABASE_URL"`
	MaxConns int    `json:"max_conns" env:"DATABASE_MAX_CONNS" default:"10"`
}

type SyncConfig struct {
	SourceTimeout time.Duration `json:"source_timeout" env:"SYNC_SOURCE_TIMEOUT" default:"30s"`
	MaxParallel   int           `json:"max_parallel" env:"SYNC_MAX_PARALLEL" default:"4"`
	JobEnabled    bool          `json:"job_enabled" env:"SYNC_JOB_ENABLED" default:"false"`
	JobInterval   time.Duration `json:"job_interval" env:"SYNC_JOB_INTERVAL" default:"1h"`
}

type RateLimitConfig struct {
	HostInterval time.Duration `json:"host_interval" env:"RATE_LIMIT_HOST_INTERVAL" default:"500ms"`
}

type CORSConfig struct {
	// AllowedOrigins accepts exact origins plus any origin sharing the same
	// root domain (see IsOriginAllowed). Comma-separated in the environment.
	AllowedOrigins []string `json:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
	// DevKey, when set, lets local tooling bypass origin checks by sending
	// the X-Local-Dev-Key header.
	DevKey string `json:"dev_key" env:"CORS_DEV_KEY"`
}

// Load builds the configuration from environment variables, applying struct
// tag defaults, then validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := loadFromEnvironment(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
