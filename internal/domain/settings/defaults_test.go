package settings

import (
	"testing"
)

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()

	if cfg.ID != DocAppConfig {
		t.Errorf("app config id = %q", cfg.ID)
	}
	if cfg.AppTitle != "Afroboost" || cfg.AppSubtitle != "Réservation de casque" {
		t.Errorf("unexpected titles %q / %q", cfg.AppTitle, cfg.AppSubtitle)
	}
	if cfg.PrimaryColor != "#d91cd2" || cfg.BackgroundColor != "#020617" {
		t.Errorf("unexpected theme colors %q / %q", cfg.PrimaryColor, cfg.BackgroundColor)
	}
	if cfg.FontSize != 16 || cfg.FontFamily != "system-ui" {
		t.Errorf("unexpected typography %d / %q", cfg.FontSize, cfg.FontFamily)
	}
	if cfg.ButtonText != "Réserver maintenant" {
		t.Errorf("unexpected button text %q", cfg.ButtonText)
	}
}

func TestDefaultConcept(t *testing.T) {
	c := DefaultConcept()
	if c.ID != DocConcept {
		t.Errorf("concept id = %q", c.ID)
	}
	if c.Description == "" || c.HeroImageURL != "" {
		t.Errorf("unexpected concept defaults %+v", c)
	}
}

func TestDefaultPaymentLinksEmpty(t *testing.T) {
	pl := DefaultPaymentLinks()
	if pl.ID != DocPaymentLinks {
		t.Errorf("payment links id = %q", pl.ID)
	}
	if pl.Stripe != "" || pl.Paypal != "" || pl.Twint != "" || pl.CoachWhatsapp != "" {
		t.Errorf("payment links must start empty, got %+v", pl)
	}
}

func TestDefaultCoachAuth(t *testing.T) {
	auth := DefaultCoachAuth()
	if auth.Email != "coach@afroboost.com" {
		t.Errorf("default coach email = %q", auth.Email)
	}
	if auth.Password == "" {
		t.Error("default coach password must be set")
	}
}

func TestDefaultAIConfigDisabled(t *testing.T) {
	ai := DefaultAIConfig()
	if ai.Enabled {
		t.Error("ai relay must be disabled until a key is configured")
	}
	if ai.Model == "" || ai.SystemPrompt == "" {
		t.Errorf("ai defaults incomplete %+v", ai)
	}
}
