package payments

import (
	"strings"
)

// CreateCheckoutInput is the input for creating a checkout session
type CreateCheckoutInput struct {
	ReservationID string `json:"reservationId"`
	SuccessURL    string `json:"successUrl"`
	CancelURL     string `json:"cancelUrl"`
}

func (in *CreateCheckoutInput) Trim() {
	in.ReservationID = strings.TrimSpace(in.ReservationID)
	in.SuccessURL = strings.TrimSpace(in.SuccessURL)
	in.CancelURL = strings.TrimSpace(in.CancelURL)
}

// CheckoutResult is the soft-fail envelope: provider outages surface as
// success=false with a message, never as a transport error.
type CheckoutResult struct {
	Success     bool   `json:"success"`
	CheckoutURL string `json:"checkoutUrl,omitempty"`
	Message     string `json:"message,omitempty"`
}
