package payments

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/stripe/stripe-go/v78"
	checkoutsession "github.com/stripe/stripe-go/v78/checkout/session"

	"afroboost/backend/internal/domain/reservation"
)

const checkoutFailedMsg = "Le paiement est momentanément indisponible, réessayez plus tard."

// ReservationSource looks up the booking a checkout pays for
type ReservationSource interface {
	Get(ctx context.Context, reservationID string) (*reservation.Reservation, error)
}

type Service struct {
	reservations ReservationSource
}

// NewService configures the Stripe client key once at startup
func NewService(secretKey string, reservations ReservationSource) *Service {
	stripe.Key = secretKey
	return &Service{reservations: reservations}
}

// CreateCheckout creates a one-time Checkout Session for a reservation's
// total. Validation errors are hard errors; Stripe outages degrade to a
// success=false result so the booking flow keeps a parseable response.
func (s *Service) CreateCheckout(ctx context.Context, in CreateCheckoutInput) (*CheckoutResult, error) {
	in.Trim()

	if in.ReservationID == "" {
		return nil, fmt.Errorf("%w: reservationId is required", ErrBadRequest)
	}
	if in.SuccessURL == "" || in.CancelURL == "" {
		return nil, fmt.Errorf("%w: successUrl and cancelUrl are required", ErrBadRequest)
	}

	res, err := s.reservations.Get(ctx, in.ReservationID)
	if err != nil {
		if reservation.IsErrNotFound(err) {
			return nil, fmt.Errorf("%w: reservation not found", ErrNotFound)
		}
		return nil, err
	}
	if res.TotalPrice <= 0 {
		return nil, fmt.Errorf("%w: reservation has no payable amount", ErrBadRequest)
	}

	name := res.OfferName
	if name == "" {
		name = res.CourseName
	}
	if name == "" {
		name = "Réservation Afroboost"
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyCHF)),
					UnitAmount: stripe.Int64(int64(math.Round(res.TotalPrice * 100))),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(name),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		CustomerEmail: stripe.String(res.UserEmail),
		SuccessURL:    stripe.String(in.SuccessURL),
		CancelURL:     stripe.String(in.CancelURL),
		Metadata: map[string]string{
			"reservationId":   res.ID,
			"reservationCode": res.ReservationCode,
		},
	}

	session, err := checkoutsession.New(params)
	if err != nil {
		log.Printf("payments: checkout session failed: %v", err)
		return &CheckoutResult{Success: false, Message: checkoutFailedMsg}, nil
	}

	return &CheckoutResult{Success: true, CheckoutURL: session.URL}, nil
}
