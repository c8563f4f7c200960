package settings

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	MsgLoginOK     = "Connexion réussie"
	MsgLoginFailed = "Email ou mot de passe incorrect"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// Ping reports store reachability for the health endpoints
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// --- payment links ---

func (s *Service) PaymentLinks(ctx context.Context) (*PaymentLinks, error) {
	var doc PaymentLinks
	err := s.repo.Load(ctx, DocPaymentLinks, &doc)
	if IsErrNotFound(err) {
		doc = DefaultPaymentLinks()
		if err := s.repo.Seed(ctx, DocPaymentLinks, doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Service) UpdatePaymentLinks(ctx context.Context, patch PaymentLinksPatch) (*PaymentLinks, error) {
	if _, err := s.PaymentLinks(ctx); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Stripe != nil {
		updates["stripe"] = *patch.Stripe
	}
	if patch.Paypal != nil {
		updates["paypal"] = *patch.Paypal
	}
	if patch.Twint != nil {
		updates["twint"] = *patch.Twint
	}
	if patch.CoachWhatsapp != nil {
		updates["coachWhatsapp"] = *patch.CoachWhatsapp
	}
	if len(updates) > 0 {
		if err := s.repo.Merge(ctx, DocPaymentLinks, updates); err != nil {
			return nil, err
		}
	}
	return s.PaymentLinks(ctx)
}

// --- concept ---

func (s *Service) Concept(ctx context.Context) (*Concept, error) {
	var doc Concept
	err := s.repo.Load(ctx, DocConcept, &doc)
	if IsErrNotFound(err) {
		doc = DefaultConcept()
		if err := s.repo.Seed(ctx, DocConcept, doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Service) UpdateConcept(ctx context.Context, patch ConceptPatch) (*Concept, error) {
	if _, err := s.Concept(ctx); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.HeroImageURL != nil {
		updates["heroImageUrl"] = *patch.HeroImageURL
	}
	if patch.HeroVideoURL != nil {
		updates["heroVideoUrl"] = *patch.HeroVideoURL
	}
	if patch.LogoURL != nil {
		updates["logoUrl"] = *patch.LogoURL
	}
	if len(updates) > 0 {
		if err := s.repo.Merge(ctx, DocConcept, updates); err != nil {
			return nil, err
		}
	}
	return s.Concept(ctx)
}

// --- app config ---

func (s *Service) AppConfig(ctx context.Context) (*AppConfig, error) {
	var doc AppConfig
	err := s.repo.Load(ctx, DocAppConfig, &doc)
	if IsErrNotFound(err) {
		doc = DefaultAppConfig()
		if err := s.repo.Seed(ctx, DocAppConfig, doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Service) UpdateAppConfig(ctx context.Context, patch AppConfigPatch) (*AppConfig, error) {
	if _, err := s.AppConfig(ctx); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.BackgroundColor != nil {
		updates["background_color"] = *patch.BackgroundColor
	}
	if patch.GradientColor != nil {
		updates["gradient_color"] = *patch.GradientColor
	}
	if patch.PrimaryColor != nil {
		updates["primary_color"] = *patch.PrimaryColor
	}
	if patch.SecondaryColor != nil {
		updates["secondary_color"] = *patch.SecondaryColor
	}
	if patch.TextColor != nil {
		updates["text_color"] = *patch.TextColor
	}
	if patch.FontFamily != nil {
		updates["font_family"] = *patch.FontFamily
	}
	if patch.FontSize != nil {
		updates["font_size"] = *patch.FontSize
	}
	if patch.AppTitle != nil {
		updates["app_title"] = *patch.AppTitle
	}
	if patch.AppSubtitle != nil {
		updates["app_subtitle"] = *patch.AppSubtitle
	}
	if patch.ConceptDescription != nil {
		updates["concept_description"] = *patch.ConceptDescription
	}
	if patch.ChooseSessionText != nil {
		updates["choose_session_text"] = *patch.ChooseSessionText
	}
	if patch.ChooseOfferText != nil {
		updates["choose_offer_text"] = *patch.ChooseOfferText
	}
	if patch.UserInfoText != nil {
		updates["user_info_text"] = *patch.UserInfoText
	}
	if patch.ButtonText != nil {
		updates["button_text"] = *patch.ButtonText
	}
	if len(updates) > 0 {
		if err := s.repo.Merge(ctx, DocAppConfig, updates); err != nil {
			return nil, err
		}
	}
	return s.AppConfig(ctx)
}

// --- emailjs config ---

func (s *Service) EmailJSConfig(ctx context.Context) (*EmailJSConfig, error) {
	var doc EmailJSConfig
	err := s.repo.Load(ctx, DocEmailJSConfig, &doc)
	if IsErrNotFound(err) {
		doc = DefaultEmailJSConfig()
		if err := s.repo.Seed(ctx, DocEmailJSConfig, doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Service) UpdateEmailJSConfig(ctx context.Context, patch EmailJSConfigPatch) (*EmailJSConfig, error) {
	if _, err := s.EmailJSConfig(ctx); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.ServiceID != nil {
		updates["serviceId"] = *patch.ServiceID
	}
	if patch.TemplateID != nil {
		updates["templateId"] = *patch.TemplateID
	}
	if patch.PublicKey != nil {
		updates["publicKey"] = *patch.PublicKey
	}
	if patch.Enabled != nil {
		updates["enabled"] = *patch.Enabled
	}
	if len(updates) > 0 {
		if err := s.repo.Merge(ctx, DocEmailJSConfig, updates); err != nil {
			return nil, err
		}
	}
	return s.EmailJSConfig(ctx)
}

// --- whatsapp config ---

func (s *Service) WhatsappConfig(ctx context.Context) (*WhatsappConfig, error) {
	var doc WhatsappConfig
	err := s.repo.Load(ctx, DocWhatsappConfig, &doc)
	if IsErrNotFound(err) {
		doc = DefaultWhatsappConfig()
		if err := s.repo.Seed(ctx, DocWhatsappConfig, doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Service) UpdateWhatsappConfig(ctx context.Context, patch WhatsappConfigPatch) (*WhatsappConfig, error) {
	if _, err := s.WhatsappConfig(ctx); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.APIURL != nil {
		updates["apiUrl"] = *patch.APIURL
	}
	if patch.APIToken != nil {
		updates["apiToken"] = *patch.APIToken
	}
	if patch.PhoneNumberID != nil {
		updates["phoneNumberId"] = *patch.PhoneNumberID
	}
	if patch.Enabled != nil {
		updates["enabled"] = *patch.Enabled
	}
	if len(updates) > 0 {
		if err := s.repo.Merge(ctx, DocWhatsappConfig, updates); err != nil {
			return nil, err
		}
	}
	return s.WhatsappConfig(ctx)
}

// --- ai config ---

func (s *Service) AIConfig(ctx context.Context) (*AIConfig, error) {
	var doc AIConfig
	err := s.repo.Load(ctx, DocAIConfig, &doc)
	if IsErrNotFound(err) {
		doc = DefaultAIConfig()
		if err := s.repo.Seed(ctx, DocAIConfig, doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Service) UpdateAIConfig(ctx context.Context, patch AIConfigPatch) (*AIConfig, error) {
	if _, err := s.AIConfig(ctx); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Enabled != nil {
		updates["enabled"] = *patch.Enabled
	}
	if patch.APIKey != nil {
		updates["apiKey"] = *patch.APIKey
	}
	if patch.Model != nil {
		updates["model"] = *patch.Model
	}
	if patch.SystemPrompt != nil {
		updates["systemPrompt"] = *patch.SystemPrompt
	}
	if patch.Endpoint != nil {
		updates["endpoint"] = *patch.Endpoint
	}
	if len(updates) > 0 {
		if err := s.repo.Merge(ctx, DocAIConfig, updates); err != nil {
			return nil, err
		}
	}
	return s.AIConfig(ctx)
}

// --- feature flags ---

func (s *Service) FeatureFlags(ctx context.Context) (*FeatureFlags, error) {
	var doc FeatureFlags
	err := s.repo.Load(ctx, DocFeatureFlags, &doc)
	if IsErrNotFound(err) {
		doc = DefaultFeatureFlags()
		if err := s.repo.Seed(ctx, DocFeatureFlags, doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Service) UpdateFeatureFlags(ctx context.Context, patch FeatureFlagsPatch) (*FeatureFlags, error) {
	if _, err := s.FeatureFlags(ctx); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.ChatEnabled != nil {
		updates["chatEnabled"] = *patch.ChatEnabled
	}
	if patch.CommunityEnabled != nil {
		updates["communityEnabled"] = *patch.CommunityEnabled
	}
	if patch.ShopEnabled != nil {
		updates["shopEnabled"] = *patch.ShopEnabled
	}
	if patch.CampaignsEnabled != nil {
		updates["campaignsEnabled"] = *patch.CampaignsEnabled
	}
	if len(updates) > 0 {
		if err := s.repo.Merge(ctx, DocFeatureFlags, updates); err != nil {
			return nil, err
		}
	}
	return s.FeatureFlags(ctx)
}

// --- coach subscription ---

func (s *Service) CoachSubscription(ctx context.Context) (*CoachSubscription, error) {
	var doc CoachSubscription
	err := s.repo.Load(ctx, DocCoachSubscription, &doc)
	if IsErrNotFound(err) {
		doc = DefaultCoachSubscription()
		if err := s.repo.Seed(ctx, DocCoachSubscription, doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Service) UpdateCoachSubscription(ctx context.Context, patch CoachSubscriptionPatch) (*CoachSubscription, error) {
	if _, err := s.CoachSubscription(ctx); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Plan != nil {
		updates["plan"] = *patch.Plan
	}
	if patch.Active != nil {
		updates["active"] = *patch.Active
	}
	if patch.ExpiresAt != nil {
		updates["expiresAt"] = *patch.ExpiresAt
	}
	if len(updates) > 0 {
		if err := s.repo.Merge(ctx, DocCoachSubscription, updates); err != nil {
			return nil, err
		}
	}
	return s.CoachSubscription(ctx)
}

// --- coach auth ---

func (s *Service) coachAuth(ctx context.Context) (*CoachAuth, error) {
	var doc CoachAuth
	err := s.repo.Load(ctx, DocCoachAuth, &doc)
	if IsErrNotFound(err) {
		doc = DefaultCoachAuth()
		if err := s.repo.Seed(ctx, DocCoachAuth, doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// CoachEmail exposes the login email only; the password stays server-side
func (s *Service) CoachEmail(ctx context.Context) (string, error) {
	auth, err := s.coachAuth(ctx)
	if err != nil {
		return "", err
	}
	return auth.Email, nil
}

// CoachLogin compares the submitted pair against the stored credential.
// The outcome is a business result, not an error: bad credentials return
// success=false with the French message.
func (s *Service) CoachLogin(ctx context.Context, in CoachLoginInput) (*CoachLoginResult, error) {
	auth, err := s.coachAuth(ctx)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(strings.TrimSpace(in.Email), auth.Email) && in.Password == auth.Password {
		return &CoachLoginResult{Success: true, Message: MsgLoginOK}, nil
	}
	return &CoachLoginResult{Success: false, Message: MsgLoginFailed}, nil
}

// UpdateCoachAuth replaces both credential fields
func (s *Service) UpdateCoachAuth(ctx context.Context, in CoachAuthUpdate) error {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" {
		return fmt.Errorf("%w: email and password are required", ErrBadRequest)
	}

	return s.repo.Merge(ctx, DocCoachAuth, map[string]interface{}{
		"id":        DocCoachAuth,
		"email":     in.Email,
		"password":  in.Password,
		"updatedAt": time.Now().UTC(),
	})
}
