// Package config loads the service configuration from the environment into
// an explicit struct, so handlers and tests receive their settings at
// construction time instead of reading process globals.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/studioform/backend/internal/notify"
)

// Config is the full environment-driven configuration of the backend.
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	Environment string `env:"APP_ENV" envDefault:"development"`

	// FrontendURL holds the allowed CORS origin(s), comma-separated.
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:8080"`

	// DatabaseURL enables the PostgreSQL persistence variant.
	DatabaseURL string `env:"DATABASE_URL"`
	// ForwardWebhookURL enables the workflow-forward persistence variant,
	// used when DatabaseURL is unset.
	ForwardWebhookURL string `env:"FORWARD_WEBHOOK_URL"`

	// NotifyBlocking delivers the notification before responding instead of
	// in the background. Delivery failure never fails the response either way.
	NotifyBlocking bool `env:"NOTIFY_BLOCKING" envDefault:"false"`

	Notify notify.Config

	RateLimitMax           int `env:"RATE_LIMIT_MAX" envDefault:"5"`
	RateLimitWindowSeconds int `env:"RATE_LIMIT_WINDOW_SECONDS" envDefault:"60"`
}

// ErrNoPersistence is returned when neither persistence variant is configured.
var ErrNoPersistence = errors.New("config: set DATABASE_URL or FORWARD_WEBHOOK_URL")

// Load reads .env (if present) and the process environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	if cfg.DatabaseURL == "" && cfg.ForwardWebhookURL == "" {
		return nil, ErrNoPersistence
	}
	return &cfg, nil
}

// AllowedOrigins splits FrontendURL into the list of allowed CORS origins.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, part := range strings.Split(c.FrontendURL, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
