package settings

// Singleton document ids. Each lives under the "settings" collection at
// a fixed id and is lazily created with its defaults on first read.
const (
	DocPaymentLinks      = "payment_links"
	DocConcept           = "concept"
	DocAppConfig         = "app_config"
	DocEmailJSConfig     = "emailjs_config"
	DocWhatsappConfig    = "whatsapp_config"
	DocAIConfig          = "ai_config"
	DocFeatureFlags      = "feature_flags"
	DocCoachSubscription = "coach_subscription"
	DocCoachAuth         = "coach_auth"
)

// PaymentLinks holds the externally-hosted payment URLs shown at checkout
type PaymentLinks struct {
	ID            string `firestore:"id" json:"id"`
	Stripe        string `firestore:"stripe" json:"stripe"`
	Paypal        string `firestore:"paypal" json:"paypal"`
	Twint         string `firestore:"twint" json:"twint"`
	CoachWhatsapp string `firestore:"coachWhatsapp" json:"coachWhatsapp"`
}

func DefaultPaymentLinks() PaymentLinks {
	return PaymentLinks{ID: DocPaymentLinks}
}

// PaymentLinksPatch lists the updatable payment link fields
type PaymentLinksPatch struct {
	Stripe        *string `json:"stripe,omitempty"`
	Paypal        *string `json:"paypal,omitempty"`
	Twint         *string `json:"twint,omitempty"`
	CoachWhatsapp *string `json:"coachWhatsapp,omitempty"`
}

// Concept is the landing-page pitch block
type Concept struct {
	ID           string `firestore:"id" json:"id"`
	Description  string `firestore:"description" json:"description"`
	HeroImageURL string `firestore:"heroImageUrl" json:"heroImageUrl"`
	HeroVideoURL string `firestore:"heroVideoUrl" json:"heroVideoUrl"`
	LogoURL      string `firestore:"logoUrl" json:"logoUrl"`
}

func DefaultConcept() Concept {
	return Concept{
		ID:          DocConcept,
		Description: "Le concept Afroboost : cardio + danse afrobeat + casques audio immersifs. Un entraînement fun, énergétique et accessible à tous.",
	}
}

// ConceptPatch lists the updatable concept fields
type ConceptPatch struct {
	Description  *string `json:"description,omitempty"`
	HeroImageURL *string `json:"heroImageUrl,omitempty"`
	HeroVideoURL *string `json:"heroVideoUrl,omitempty"`
	LogoURL      *string `json:"logoUrl,omitempty"`
}

// AppConfig is the widget theme and UI copy, all coach-editable
type AppConfig struct {
	ID                 string `firestore:"id" json:"id"`
	BackgroundColor    string `firestore:"background_color" json:"background_color"`
	GradientColor      string `firestore:"gradient_color" json:"gradient_color"`
	PrimaryColor       string `firestore:"primary_color" json:"primary_color"`
	SecondaryColor     string `firestore:"secondary_color" json:"secondary_color"`
	TextColor          string `firestore:"text_color" json:"text_color"`
	FontFamily         string `firestore:"font_family" json:"font_family"`
	FontSize           int    `firestore:"font_size" json:"font_size"`
	AppTitle           string `firestore:"app_title" json:"app_title"`
	AppSubtitle        string `firestore:"app_subtitle" json:"app_subtitle"`
	ConceptDescription string `firestore:"concept_description" json:"concept_description"`
	ChooseSessionText  string `firestore:"choose_session_text" json:"choose_session_text"`
	ChooseOfferText    string `firestore:"choose_offer_text" json:"choose_offer_text"`
	UserInfoText       string `firestore:"user_info_text" json:"user_info_text"`
	ButtonText         string `firestore:"button_text" json:"button_text"`
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		ID:                 DocAppConfig,
		BackgroundColor:    "#020617",
		GradientColor:      "#3b0764",
		PrimaryColor:       "#d91cd2",
		SecondaryColor:     "#8b5cf6",
		TextColor:          "#ffffff",
		FontFamily:         "system-ui",
		FontSize:           16,
		AppTitle:           "Afroboost",
		AppSubtitle:        "Réservation de casque",
		ConceptDescription: "Le concept Afroboost : cardio + danse afrobeat + casques audio immersifs.",
		ChooseSessionText:  "Choisissez votre session",
		ChooseOfferText:    "Choisissez votre offre",
		UserInfoText:       "Vos informations",
		ButtonText:         "Réserver maintenant",
	}
}

// AppConfigPatch lists the updatable app config fields
type AppConfigPatch struct {
	BackgroundColor    *string `json:"background_color,omitempty"`
	GradientColor      *string `json:"gradient_color,omitempty"`
	PrimaryColor       *string `json:"primary_color,omitempty"`
	SecondaryColor     *string `json:"secondary_color,omitempty"`
	TextColor          *string `json:"text_color,omitempty"`
	FontFamily         *string `json:"font_family,omitempty"`
	FontSize           *int    `json:"font_size,omitempty"`
	AppTitle           *string `json:"app_title,omitempty"`
	AppSubtitle        *string `json:"app_subtitle,omitempty"`
	ConceptDescription *string `json:"concept_description,omitempty"`
	ChooseSessionText  *string `json:"choose_session_text,omitempty"`
	ChooseOfferText    *string `json:"choose_offer_text,omitempty"`
	UserInfoText       *string `json:"user_info_text,omitempty"`
	ButtonText         *string `json:"button_text,omitempty"`
}

// EmailJSConfig configures the browser-side transactional mail sender
type EmailJSConfig struct {
	ID         string `firestore:"id" json:"id"`
	ServiceID  string `firestore:"serviceId" json:"serviceId"`
	TemplateID string `firestore:"templateId" json:"templateId"`
	PublicKey  string `firestore:"publicKey" json:"publicKey"`
	Enabled    bool   `firestore:"enabled" json:"enabled"`
}

func DefaultEmailJSConfig() EmailJSConfig {
	return EmailJSConfig{ID: DocEmailJSConfig}
}

// EmailJSConfigPatch lists the updatable EmailJS fields
type EmailJSConfigPatch struct {
	ServiceID  *string `json:"serviceId,omitempty"`
	TemplateID *string `json:"templateId,omitempty"`
	PublicKey  *string `json:"publicKey,omitempty"`
	Enabled    *bool   `json:"enabled,omitempty"`
}

// WhatsappConfig configures the campaign WhatsApp channel
type WhatsappConfig struct {
	ID            string `firestore:"id" json:"id"`
	APIURL        string `firestore:"apiUrl" json:"apiUrl"`
	APIToken      string `firestore:"apiToken" json:"apiToken"`
	PhoneNumberID string `firestore:"phoneNumberId" json:"phoneNumberId"`
	Enabled       bool   `firestore:"enabled" json:"enabled"`
}

func DefaultWhatsappConfig() WhatsappConfig {
	return WhatsappConfig{ID: DocWhatsappConfig}
}

// WhatsappConfigPatch lists the updatable WhatsApp fields
type WhatsappConfigPatch struct {
	APIURL        *string `json:"apiUrl,omitempty"`
	APIToken      *string `json:"apiToken,omitempty"`
	PhoneNumberID *string `json:"phoneNumberId,omitempty"`
	Enabled       *bool   `json:"enabled,omitempty"`
}

// AIConfig configures the chat assistant relay
type AIConfig struct {
	ID           string `firestore:"id" json:"id"`
	Enabled      bool   `firestore:"enabled" json:"enabled"`
	APIKey       string `firestore:"apiKey" json:"apiKey"`
	Model        string `firestore:"model" json:"model"`
	SystemPrompt string `firestore:"systemPrompt" json:"systemPrompt"`
	Endpoint     string `firestore:"endpoint" json:"endpoint"`
}

func DefaultAIConfig() AIConfig {
	return AIConfig{
		ID:           DocAIConfig,
		Model:        "gpt-4o-mini",
		SystemPrompt: "Tu es le Coach IA d'Afroboost. Réponds en français, avec énergie, aux questions sur les cours, les offres et les réservations.",
	}
}

// AIConfigPatch lists the updatable AI relay fields
type AIConfigPatch struct {
	Enabled      *bool   `json:"enabled,omitempty"`
	APIKey       *string `json:"apiKey,omitempty"`
	Model        *string `json:"model,omitempty"`
	SystemPrompt *string `json:"systemPrompt,omitempty"`
	Endpoint     *string `json:"endpoint,omitempty"`
}

// FeatureFlags gates optional front-end surfaces
type FeatureFlags struct {
	ID               string `firestore:"id" json:"id"`
	ChatEnabled      bool   `firestore:"chatEnabled" json:"chatEnabled"`
	CommunityEnabled bool   `firestore:"communityEnabled" json:"communityEnabled"`
	ShopEnabled      bool   `firestore:"shopEnabled" json:"shopEnabled"`
	CampaignsEnabled bool   `firestore:"campaignsEnabled" json:"campaignsEnabled"`
}

func DefaultFeatureFlags() FeatureFlags {
	return FeatureFlags{
		ID:               DocFeatureFlags,
		ChatEnabled:      true,
		CommunityEnabled: false,
		ShopEnabled:      true,
		CampaignsEnabled: true,
	}
}

// FeatureFlagsPatch lists the updatable flags
type FeatureFlagsPatch struct {
	ChatEnabled      *bool `json:"chatEnabled,omitempty"`
	CommunityEnabled *bool `json:"communityEnabled,omitempty"`
	ShopEnabled      *bool `json:"shopEnabled,omitempty"`
	CampaignsEnabled *bool `json:"campaignsEnabled,omitempty"`
}

// CoachSubscription tracks the studio's own plan state
type CoachSubscription struct {
	ID        string `firestore:"id" json:"id"`
	Plan      string `firestore:"plan" json:"plan"`
	Active    bool   `firestore:"active" json:"active"`
	ExpiresAt string `firestore:"expiresAt" json:"expiresAt"`
}

func DefaultCoachSubscription() CoachSubscription {
	return CoachSubscription{ID: DocCoachSubscription, Plan: "free", Active: true}
}

// CoachSubscriptionPatch lists the updatable subscription fields
type CoachSubscriptionPatch struct {
	Plan      *string `json:"plan,omitempty"`
	Active    *bool   `json:"active,omitempty"`
	ExpiresAt *string `json:"expiresAt,omitempty"`
}

// CoachAuth is the single staff credential pair. Stored in clear like the
// rest of the singleton documents; the password never leaves the API.
type CoachAuth struct {
	ID       string `firestore:"id" json:"id"`
	Email    string `firestore:"email" json:"email"`
	Password string `firestore:"password" json:"-"`
}

func DefaultCoachAuth() CoachAuth {
	return CoachAuth{ID: DocCoachAuth, Email: "coach@afroboost.com", Password: "afroboost123"}
}

// CoachAuthUpdate replaces the credential pair
type CoachAuthUpdate struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CoachLoginInput is the login payload
type CoachLoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CoachLoginResult carries the French-facing login outcome
type CoachLoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
