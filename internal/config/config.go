package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all application configuration
type Config struct {
	// Firebase / Firestore
	ProjectID          string `env:"FIREBASE_PROJECT_ID"`
	GoogleCloudProject string `env:"GOOGLE_CLOUD_PROJECT"`

	// HTTP server
	Port           string   `env:"PORT,default=8080"`
	AllowedOrigins []string `env:"CORS_ORIGINS,default=http://localhost:3000"`

	// Stripe (optional - checkout features disabled when empty)
	StripeSecretKey string `env:"STRIPE_SECRET_KEY"`

	// Chat AI relay
	AIRequestsPerMinute int `env:"AI_REQUESTS_PER_MINUTE,default=30"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment config: %w", err)
	}
	if cfg.ProjectID == "" {
		cfg.ProjectID = cfg.GoogleCloudProject
	}
	return cfg, nil
}
