package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

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
	"afroboost/backend/internal/middleware"
)

type RouterDeps struct {
	Cfg            config.Config
	CourseSvc      *course.Service
	OfferSvc       *offer.Service
	ContactSvc     *contact.Service
	ReservationSvc *reservation.Service
	DiscountSvc    *discount.Service
	CampaignSvc    *campaign.Service
	ChatSvc        *chat.Service
	SettingsSvc    *settings.Service
	PaymentsSvc    *payments.Service
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(d.Cfg.AllowedOrigins))
	r.Use(middleware.Metrics())

	r.Handle("/metrics", promhttp.Handler())

	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		if err := d.SettingsSvc.Ping(r.Context()); err != nil {
			Fail(w, 503, "store unreachable")
			return
		}
		WriteJSON(w, 200, map[string]any{"status": "ok"})
	}
	r.Get("/health", healthHandler)
	r.Get("/api/health", healthHandler)

	// the original mounts everything under /api; both prefixes are served
	// so older clients keep working
	apiRoutes := func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			WriteJSON(w, 200, map[string]any{"message": "Afroboost API"})
		})

		registerCourses(r, d)
		registerOffers(r, d)
		registerContacts(r, d)
		registerReservations(r, d)
		registerDiscounts(r, d)
		registerCampaigns(r, d)
		registerChat(r, d)
		registerSettings(r, d)
		registerPayments(r, d)
	}

	r.Route("/api", apiRoutes)
	r.Group(apiRoutes)

	return r
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		Fail(w, 400, "invalid JSON body")
		return false
	}
	return true
}

// ===== Courses =====

func registerCourses(r chi.Router, d RouterDeps) {
	r.Get("/courses", func(w http.ResponseWriter, r *http.Request) {
		in := course.ListCoursesInput{
			IncludeArchived: r.URL.Query().Get("all") == "true",
			VisibleOnly:     r.URL.Query().Get("visible") == "true",
		}
		courses, err := d.CourseSvc.List(r.Context(), in)
		if err != nil {
			mapCourseError(w, err)
			return
		}
		WriteJSON(w, 200, courses)
	})

	r.Post("/courses", func(w http.ResponseWriter, r *http.Request) {
		var in course.CreateCourseInput
		if !decode(w, r, &in) {
			return
		}
		c, err := d.CourseSvc.Create(r.Context(), in)
		if err != nil {
			mapCourseError(w, err)
			return
		}
		WriteJSON(w, 200, c)
	})

	r.Get("/courses/{id}", func(w http.ResponseWriter, r *http.Request) {
		c, err := d.CourseSvc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			mapCourseError(w, err)
			return
		}
		WriteJSON(w, 200, c)
	})

	r.Put("/courses/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in course.UpdateCourseInput
		if !decode(w, r, &in) {
			return
		}
		c, err := d.CourseSvc.Update(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			mapCourseError(w, err)
			return
		}
		WriteJSON(w, 200, c)
	})

	r.Put("/courses/{id}/archive", func(w http.ResponseWriter, r *http.Request) {
		c, err := d.CourseSvc.Archive(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			mapCourseError(w, err)
			return
		}
		WriteJSON(w, 200, c)
	})

	r.Delete("/courses/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := d.CourseSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			mapCourseError(w, err)
			return
		}
		WriteJSON(w, 200, map[string]any{"success": true})
	})
}

func mapCourseError(w http.ResponseWriter, err error) {
	switch {
	case course.IsErrBadRequest(err):
		Fail(w, 400, err.Error())
	case course.IsErrNotFound(err):
		Fail(w, 404, err.Error())
	default:
		Fail(w, 500, "internal error")
	}
}

// ===== Offers =====

func registerOffers(r chi.Router, d RouterDeps) {
	r.Get("/offers", func(w http.ResponseWriter, r *http.Request) {
		offers, err := d.OfferSvc.List(r.Context(), r.URL.Query().Get("visible") == "true")
		if err != nil {
			mapOfferError(w, err)
			return
		}
		WriteJSON(w, 200, offers)
	})

	r.Post("/offers", func(w http.ResponseWriter, r *http.Request) {
		var in offer.CreateOfferInput
		if !decode(w, r, &in) {
			return
		}
		o, err := d.OfferSvc.Create(r.Context(), in)
		if err != nil {
			mapOfferError(w, err)
			return
		}
		WriteJSON(w, 200, o)
	})

	r.Get("/offers/{id}", func(w http.ResponseWriter, r *http.Request) {
		o, err := d.OfferSvc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			mapOfferError(w, err)
			return
		}
		WriteJSON(w, 200, o)
	})

	r.Put("/offers/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in offer.UpdateOfferInput
		if !decode(w, r, &in) {
			return
		}
		o, err := d.OfferSvc.Update(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			mapOfferError(w, err)
			return
		}
		WriteJSON(w, 200, o)
	})

	r.Delete("/offers/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := d.OfferSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			mapOfferError(w, err)
			return
		}
		WriteJSON(w, 200, map[string]any{"success": true})
	})
}

func mapOfferError(w http.ResponseWriter, err error) {
	switch {
	case offer.IsErrBadRequest(err):
		Fail(w, 400, err.Error())
	case offer.IsErrNotFound(err):
		Fail(w, 404, err.Error())
	default:
		Fail(w, 500, "internal error")
	}
}

// ===== Contacts =====

func registerContacts(r chi.Router, d RouterDeps) {
	r.Get("/users", func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		contacts, err := d.ContactSvc.List(r.Context(), limit)
		if err != nil {
			mapContactError(w, err)
			return
		}
		WriteJSON(w, 200, contacts)
	})

	r.Post("/users", func(w http.ResponseWriter, r *http.Request) {
		var in contact.CreateContactInput
		if !decode(w, r, &in) {
			return
		}
		c, err := d.ContactSvc.Create(r.Context(), in)
		if err != nil {
			mapContactError(w, err)
			return
		}
		WriteJSON(w, 200, c)
	})

	r.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		c, err := d.ContactSvc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			mapContactError(w, err)
			return
		}
		WriteJSON(w, 200, c)
	})

	r.Put("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in contact.UpdateContactInput
		if !decode(w, r, &in) {
			return
		}
		c, err := d.ContactSvc.Update(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			mapContactError(w, err)
			return
		}
		WriteJSON(w, 200, c)
	})

	r.Delete("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := d.ContactSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			mapContactError(w, err)
			return
		}
		WriteJSON(w, 200, map[string]any{"success": true})
	})
}

func mapContactError(w http.ResponseWriter, err error) {
	switch {
	case contact.IsErrBadRequest(err):
		Fail(w, 400, err.Error())
	case contact.IsErrNotFound(err):
		Fail(w, 404, err.Error())
	default:
		Fail(w, 500, "internal error")
	}
}

// ===== Reservations =====

func registerReservations(r chi.Router, d RouterDeps) {
	r.Get("/reservations", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if q.Get("all_data") == "true" {
			reservations, err := d.ReservationSvc.ListAll(r.Context())
			if err != nil {
				mapReservationError(w, err)
				return
			}
			WriteJSON(w, 200, reservations)
			return
		}

		page, _ := strconv.Atoi(q.Get("page"))
		limit, _ := strconv.Atoi(q.Get("limit"))
		result, err := d.ReservationSvc.ListPage(r.Context(), reservation.ListReservationsInput{
			Page:  page,
			Limit: limit,
		})
		if err != nil {
			mapReservationError(w, err)
			return
		}
		WriteJSON(w, 200, result)
	})

	r.Post("/reservations", func(w http.ResponseWriter, r *http.Request) {
		var in reservation.CreateReservationInput
		if !decode(w, r, &in) {
			return
		}
		res, err := d.ReservationSvc.Create(r.Context(), in)
		if err != nil {
			mapReservationError(w, err)
			return
		}
		WriteJSON(w, 200, res)
	})

	r.Post("/reservations/{code}/validate", func(w http.ResponseWriter, r *http.Request) {
		res, err := d.ReservationSvc.Validate(r.Context(), chi.URLParam(r, "code"))
		if err != nil {
			mapReservationError(w, err)
			return
		}
		WriteJSON(w, 200, map[string]any{"success": true, "reservation": res})
	})

	r.Put("/reservations/{id}/tracking", func(w http.ResponseWriter, r *http.Request) {
		var in reservation.UpdateTrackingInput
		if !decode(w, r, &in) {
			return
		}
		res, err := d.ReservationSvc.UpdateTracking(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			mapReservationError(w, err)
			return
		}
		WriteJSON(w, 200, res)
	})

	r.Delete("/reservations/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := d.ReservationSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			mapReservationError(w, err)
			return
		}
		WriteJSON(w, 200, map[string]any{"success": true})
	})
}

func mapReservationError(w http.ResponseWriter, err error) {
	switch {
	case reservation.IsErrBadRequest(err):
		Fail(w, 400, err.Error())
	case reservation.IsErrNotFound(err):
		Fail(w, 404, err.Error())
	default:
		Fail(w, 500, "internal error")
	}
}

// ===== Discount codes =====

func registerDiscounts(r chi.Router, d RouterDeps) {
	r.Get("/discount-codes", func(w http.ResponseWriter, r *http.Request) {
		codes, err := d.DiscountSvc.List(r.Context())
		if err != nil {
			mapDiscountError(w, err)
			return
		}
		WriteJSON(w, 200, codes)
	})

	r.Post("/discount-codes", func(w http.ResponseWriter, r *http.Request) {
		var in discount.CreateDiscountCodeInput
		if !decode(w, r, &in) {
			return
		}
		dc, err := d.DiscountSvc.Create(r.Context(), in)
		if err != nil {
			mapDiscountError(w, err)
			return
		}
		WriteJSON(w, 200, dc)
	})

	r.Put("/discount-codes/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in discount.UpdateDiscountCodeInput
		if !decode(w, r, &in) {
			return
		}
		dc, err := d.DiscountSvc.Update(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			mapDiscountError(w, err)
			return
		}
		WriteJSON(w, 200, dc)
	})

	r.Delete("/discount-codes/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := d.DiscountSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			mapDiscountError(w, err)
			return
		}
		WriteJSON(w, 200, map[string]any{"success": true})
	})

	// validation is two-phase: this call never mutates the counter
	r.Post("/discount-codes/validate", func(w http.ResponseWriter, r *http.Request) {
		var in discount.ValidateInput
		if !decode(w, r, &in) {
			return
		}
		result, err := d.DiscountSvc.Validate(r.Context(), in)
		if err != nil {
			mapDiscountError(w, err)
			return
		}
		WriteJSON(w, 200, result)
	})

	r.Post("/discount-codes/{id}/use", func(w http.ResponseWriter, r *http.Request) {
		if err := d.DiscountSvc.Use(r.Context(), chi.URLParam(r, "id")); err != nil {
			mapDiscountError(w, err)
			return
		}
		WriteJSON(w, 200, map[string]any{"success": true})
	})
}

func mapDiscountError(w http.ResponseWriter, err error) {
	switch {
	case discount.IsErrBadRequest(err):
		Fail(w, 400, err.Error())
	case discount.IsErrNotFound(err):
		Fail(w, 404, err.Error())
	default:
		Fail(w, 500, "internal error")
	}
}

// ===== Campaigns =====

func registerCampaigns(r chi.Router, d RouterDeps) {
	r.Get("/campaigns", func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := d.CampaignSvc.List(r.Context())
		if err != nil {
			mapCampaignError(w, err)
			return
		}
		WriteJSON(w, 200, campaigns)
	})

	r.Post("/campaigns", func(w http.ResponseWriter, r *http.Request) {
		var in campaign.CreateCampaignInput
		if !decode(w, r, &in) {
			return
		}
		c, err := d.CampaignSvc.Create(r.Context(), in)
		if err != nil {
			mapCampaignError(w, err)
			return
		}
		WriteJSON(w, 200, c)
	})

	r.Get("/campaigns/{id}", func(w http.ResponseWriter, r *http.Request) {
		c, err := d.CampaignSvc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			mapCampaignError(w, err)
			return
		}
		WriteJSON(w, 200, c)
	})

	r.Put("/campaigns/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in campaign.UpdateCampaignInput
		if !decode(w, r, &in) {
			return
		}
		c, err := d.CampaignSvc.Update(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			mapCampaignError(w, err)
			return
		}
		WriteJSON(w, 200, c)
	})

	r.Delete("/campaigns/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := d.CampaignSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			mapCampaignError(w, err)
			return
		}
		WriteJSON(w, 200, map[string]any{"success": true})
	})

	r.Post("/campaigns/{id}/launch", func(w http.ResponseWriter, r *http.Request) {
		c, err := d.CampaignSvc.Launch(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			mapCampaignError(w, err)
			return
		}
		WriteJSON(w, 200, c)
	})

	r.Post("/campaigns/{id}/mark-sent", func(w http.ResponseWriter, r *http.Request) {
		var in campaign.MarkSentInput
		if !decode(w, r, &in) {
			return
		}
		c, err := d.CampaignSvc.MarkResultSent(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			mapCampaignError(w, err)
			return
		}
		WriteJSON(w, 200, c)
	})
}

func mapCampaignError(w http.ResponseWriter, err error) {
	switch {
	case campaign.IsErrBadRequest(err):
		Fail(w, 400, err.Error())
	case campaign.IsErrNotFound(err):
		Fail(w, 404, err.Error())
	default:
		Fail(w, 500, "internal error")
	}
}

// ===== Chat =====

func registerChat(r chi.Router, d RouterDeps) {
	r.Post("/chat/smart-entry", func(w http.ResponseWriter, r *http.Request) {
		var in chat.SmartEntryInput
		if !decode(w, r, &in) {
			return
		}
		result, err := d.ChatSvc.SmartEntry(r.Context(), in)
		if err != nil {
			mapChatError(w, err)
			return
		}
		WriteJSON(w, 200, result)
	})

	r.Post("/chat/ai-response", func(w http.ResponseWriter, r *http.Request) {
		var in chat.SendMessageInput
		if !decode(w, r, &in) {
			return
		}
		result, err := d.ChatSvc.SendMessage(r.Context(), in)
		if err != nil {
			mapChatError(w, err)
			return
		}
		WriteJSON(w, 200, result)
	})

	r.Post("/chat/coach-response", func(w http.ResponseWriter, r *http.Request) {
		var in chat.CoachResponseInput
		if !decode(w, r, &in) {
			return
		}
		msg, err := d.ChatSvc.CoachResponse(r.Context(), in)
		if err != nil {
			mapChatError(w, err)
			return
		}
		WriteJSON(w, 200, msg)
	})

	r.Get("/chat/sessions", func(w http.ResponseWriter, r *http.Request) {
		sessions, err := d.ChatSvc.ListSessions(r.Context())
		if err != nil {
			mapChatError(w, err)
			return
		}
		WriteJSON(w, 200, sessions)
	})

	r.Get("/chat/sessions/{id}/messages", func(w http.ResponseWriter, r *http.Request) {
		messages, err := d.ChatSvc.ListMessages(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			mapChatError(w, err)
			return
		}
		WriteJSON(w, 200, messages)
	})

	r.Put("/chat/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in chat.UpdateSessionInput
		if !decode(w, r, &in) {
			return
		}
		session, err := d.ChatSvc.UpdateSession(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			mapChatError(w, err)
			return
		}
		WriteJSON(w, 200, session)
	})

	r.Post("/chat/sessions/{id}/toggle-ai", func(w http.ResponseWriter, r *http.Request) {
		session, err := d.ChatSvc.ToggleAI(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			mapChatError(w, err)
			return
		}
		WriteJSON(w, 200, session)
	})

	r.Delete("/chat/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := d.ChatSvc.DeleteSession(r.Context(), chi.URLParam(r, "id")); err != nil {
			mapChatError(w, err)
			return
		}
		WriteJSON(w, 200, map[string]any{"success": true})
	})

	r.Put("/chat/messages/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
		if err := d.ChatSvc.DeleteMessage(r.Context(), chi.URLParam(r, "id")); err != nil {
			mapChatError(w, err)
			return
		}
		WriteJSON(w, 200, map[string]any{"success": true})
	})

	r.Post("/chat/start-private", func(w http.ResponseWriter, r *http.Request) {
		var in chat.StartPrivateInput
		if !decode(w, r, &in) {
			return
		}
		session, err := d.ChatSvc.StartPrivate(r.Context(), in)
		if err != nil {
			mapChatError(w, err)
			return
		}
		WriteJSON(w, 200, session)
	})

	r.Post("/chat/generate-link", func(w http.ResponseWriter, r *http.Request) {
		var in chat.GenerateLinkInput
		if !decode(w, r, &in) {
			return
		}
		link, err := d.ChatSvc.GenerateLink(r.Context(), in)
		if err != nil {
			mapChatError(w, err)
			return
		}
		WriteJSON(w, 200, link)
	})

	r.Get("/chat/links", func(w http.ResponseWriter, r *http.Request) {
		links, err := d.ChatSvc.ListLinks(r.Context())
		if err != nil {
			mapChatError(w, err)
			return
		}
		WriteJSON(w, 200, links)
	})
}

func mapChatError(w http.ResponseWriter, err error) {
	switch {
	case chat.IsErrBadRequest(err):
		Fail(w, 400, err.Error())
	case chat.IsErrNotFound(err):
		Fail(w, 404, err.Error())
	case chat.IsErrRateLimited(err):
		Fail(w, 429, "too many requests")
	default:
		Fail(w, 500, "internal error")
	}
}

// ===== Settings singletons =====

func registerSettings(r chi.Router, d RouterDeps) {
	r.Get("/payment-links", func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.SettingsSvc.PaymentLinks(r.Context())
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, doc)
	})
	r.Put("/payment-links", func(w http.ResponseWriter, r *http.Request) {
		var patch settings.PaymentLinksPatch
		if !decode(w, r, &patch) {
			return
		}
		doc, err := d.SettingsSvc.UpdatePaymentLinks(r.Context(), patch)
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, doc)
	})

	r.Get("/concept", func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.SettingsSvc.Concept(r.Context())
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, doc)
	})
	r.Put("/concept", func(w http.ResponseWriter, r *http.Request) {
		var patch settings.ConceptPatch
		if !decode(w, r, &patch) {
			return
		}
		doc, err := d.SettingsSvc.UpdateConcept(r.Context(), patch)
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, doc)
	})

	r.Get("/config", func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.SettingsSvc.AppConfig(r.Context())
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, doc)
	})
	r.Put("/config", func(w http.ResponseWriter, r *http.Request) {
		var patch settings.AppConfigPatch
		if !decode(w, r, &patch) {
			return
		}
		doc, err := d.SettingsSvc.UpdateAppConfig(r.Context(), patch)
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, doc)
	})

	r.Get("/emailjs-config", func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.SettingsSvc.EmailJSConfig(r.Context())
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, doc)
	})
	r.Put("/emailjs-config", func(w http.ResponseWriter, r *http.Request) {
		var patch settings.EmailJSConfigPatch
		if !decode(w, r, &patch) {
			return
		}
		doc, err := d.SettingsSvc.UpdateEmailJSConfig(r.Context(), patch)
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, doc)
	})

	r.Get("/whatsapp-config", func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.SettingsSvc.WhatsappConfig(r.Context())
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, doc)
	})
	r.Put("/whatsapp-config", func(w http.ResponseWriter, r *http.Request) {
		var patch settings.WhatsappConfigPatch
		if !decode(w, r, &patch) {
			return
		}
		doc, err := d.SettingsSvc.UpdateWhatsappConfig(r.Context(), patch)
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, doc)
	})

	r.Get("/ai-config", func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.SettingsSvc.AIConfig(r.Context())
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, doc)
	})
	r.Put("/ai-config", func(w http.ResponseWriter, r *http.Request) {
		var patch settings.AIConfigPatch
		if !decode(w, r, &patch) {
			return
		}
		doc, err := d.SettingsSvc.UpdateAIConfig(r.Context(), patch)
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, doc)
	})

	r.Get("/feature-flags", func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.SettingsSvc.FeatureFlags(r.Context())
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, doc)
	})
	r.Put("/feature-flags", func(w http.ResponseWriter, r *http.Request) {
		var patch settings.FeatureFlagsPatch
		if !decode(w, r, &patch) {
			return
		}
		doc, err := d.SettingsSvc.UpdateFeatureFlags(r.Context(), patch)
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, doc)
	})

	r.Get("/coach-subscription", func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.SettingsSvc.CoachSubscription(r.Context())
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, doc)
	})
	r.Put("/coach-subscription", func(w http.ResponseWriter, r *http.Request) {
		var patch settings.CoachSubscriptionPatch
		if !decode(w, r, &patch) {
			return
		}
		doc, err := d.SettingsSvc.UpdateCoachSubscription(r.Context(), patch)
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, doc)
	})

	r.Get("/coach-auth", func(w http.ResponseWriter, r *http.Request) {
		email, err := d.SettingsSvc.CoachEmail(r.Context())
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, map[string]any{"email": email})
	})
	r.Post("/coach-auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in settings.CoachLoginInput
		if !decode(w, r, &in) {
			return
		}
		result, err := d.SettingsSvc.CoachLogin(r.Context(), in)
		if err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, result)
	})
	r.Put("/coach-auth", func(w http.ResponseWriter, r *http.Request) {
		var in settings.CoachAuthUpdate
		if !decode(w, r, &in) {
			return
		}
		if err := d.SettingsSvc.UpdateCoachAuth(r.Context(), in); err != nil {
			mapSettingsError(w, err)
			return
		}
		WriteJSON(w, 200, map[string]any{"success": true})
	})
}

func mapSettingsError(w http.ResponseWriter, err error) {
	switch {
	case settings.IsErrBadRequest(err):
		Fail(w, 400, err.Error())
	case settings.IsErrNotFound(err):
		Fail(w, 404, err.Error())
	default:
		Fail(w, 500, "internal error")
	}
}

// ===== Payments =====

func registerPayments(r chi.Router, d RouterDeps) {
	r.Post("/payments/checkout", func(w http.ResponseWriter, r *http.Request) {
		var in payments.CreateCheckoutInput
		if !decode(w, r, &in) {
			return
		}
		result, err := d.PaymentsSvc.CreateCheckout(r.Context(), in)
		if err != nil {
			mapPaymentsError(w, err)
			return
		}
		WriteJSON(w, 200, result)
	})
}

func mapPaymentsError(w http.ResponseWriter, err error) {
	switch {
	case payments.IsErrBadRequest(err):
		Fail(w, 400, err.Error())
	case payments.IsErrNotFound(err):
		Fail(w, 404, err.Error())
	default:
		Fail(w, 500, "internal error")
	}
}
