package config

import (
	"context"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port == "" {
		t.Error("port must have a default")
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Error("expected a default CORS origin")
	}
	if cfg.AIRequestsPerMinute <= 0 {
		t.Errorf("ai rate = %d", cfg.AIRequestsPerMinute)
	}
}

func TestLoadProjectIDFallback(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "afroboost-prod")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ProjectID != "afroboost-prod" {
		t.Errorf("ProjectID fallback = %q", cfg.ProjectID)
	}
}

func TestLoadExplicitValues(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "afroboost-dev")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://afroboost.com,https://app.afroboost.com")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ProjectID != "afroboost-dev" {
		t.Errorf("ProjectID = %q", cfg.ProjectID)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}
