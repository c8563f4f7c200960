package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"afroboost/backend/internal/config"
	"afroboost/backend/internal/domain/campaign"
	"afroboost/backend/internal/domain/chat"
	"afroboost/backend/internal/domain/contact"
	"afroboost/backend/internal/domain/course"
	"afroboost/backend/internal/domain/discount"
	"afroboost/backend/internal/domain/offer"
	"afroboost/backend/internal/domain/payments"
	"afroboost/backend/internal/domain/reservation"
	"afroboost/backend/internal/domain/settings"
	"afroboost/backend/internal/firebase"
	httpapi "afroboost/backend/internal/http"
)

// aiConfigSource adapts the ai_config singleton to the chat relay
type aiConfigSource struct {
	settings *settings.Service
}

func (s aiConfigSource) AIConfig(ctx context.Context) (chat.AIConfig, error) {
	doc, err := s.settings.AIConfig(ctx)
	if err != nil {
		return chat.AIConfig{}, err
	}
	return chat.AIConfig{
		Enabled:      doc.Enabled,
		APIKey:       doc.APIKey,
		Model:        doc.Model,
		SystemPrompt: doc.SystemPrompt,
		Endpoint:     doc.Endpoint,
	}, nil
}

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := firebase.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("firebase app: %v", err)
	}

	fs, err := firebase.NewFirestore(ctx, app)
	if err != nil {
		log.Fatalf("firestore: %v", err)
	}
	defer fs.Close()

	courseRepo := course.NewRepo(fs.Client)
	offerRepo := offer.NewRepo(fs.Client)
	contactRepo := contact.NewRepo(fs.Client)
	reservationRepo := reservation.NewRepo(fs.Client)
	discountRepo := discount.NewRepo(fs.Client)
	campaignRepo := campaign.NewRepo(fs.Client)
	chatRepo := chat.NewRepo(fs.Client)
	settingsRepo := settings.NewRepo(fs.Client)

	settingsSvc := settings.NewService(settingsRepo)
	aiClient := chat.NewAIClient(aiConfigSource{settings: settingsSvc}, cfg.AIRequestsPerMinute)

	deps := httpapi.RouterDeps{
		Cfg:            cfg,
		CourseSvc:      course.NewService(courseRepo),
		OfferSvc:       offer.NewService(offerRepo, discountRepo),
		ContactSvc:     contact.NewService(contactRepo, discountRepo),
		ReservationSvc: reservation.NewService(reservationRepo),
		DiscountSvc:    discount.NewService(discountRepo),
		CampaignSvc:    campaign.NewService(campaignRepo, contactRepo),
		ChatSvc:        chat.NewService(chatRepo, aiClient),
		SettingsSvc:    settingsSvc,
		PaymentsSvc:    payments.NewService(cfg.StripeSecretKey, reservationRepo),
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpapi.NewRouter(deps),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("afroboost api listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
