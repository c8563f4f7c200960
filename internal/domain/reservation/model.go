package reservation

import (
	"strings"
	"time"
)

// Reservation is a booking snapshot. Course, offer, user and pricing
// fields are captured as submitted at booking time; the server does not
// recompute totalPrice from the live offer and discount records.
type Reservation struct {
	ID              string     `firestore:"id" json:"id"`
	ReservationCode string     `firestore:"reservationCode" json:"reservationCode"`
	UserID          string     `firestore:"userId" json:"userId"`
	UserName        string     `firestore:"userName" json:"userName"`
	UserEmail       string     `firestore:"userEmail" json:"userEmail"`
	UserWhatsapp    string     `firestore:"userWhatsapp,omitempty" json:"userWhatsapp,omitempty"`
	CourseID        string     `firestore:"courseId" json:"courseId"`
	CourseName      string     `firestore:"courseName" json:"courseName"`
	CourseTime      string     `firestore:"courseTime" json:"courseTime"`
	Datetime        string     `firestore:"datetime,omitempty" json:"datetime,omitempty"`
	SelectedDates   []string   `firestore:"selectedDates,omitempty" json:"selectedDates,omitempty"`
	OfferID         string     `firestore:"offerId" json:"offerId"`
	OfferName       string     `firestore:"offerName" json:"offerName"`
	Price           float64    `firestore:"price" json:"price"`
	Quantity        int        `firestore:"quantity" json:"quantity"`
	TotalPrice      float64    `firestore:"totalPrice" json:"totalPrice"`
	DiscountCode    string     `firestore:"discountCode,omitempty" json:"discountCode,omitempty"`
	DiscountType    string     `firestore:"discountType,omitempty" json:"discountType,omitempty"`
	DiscountValue   float64    `firestore:"discountValue,omitempty" json:"discountValue,omitempty"`
	Validated       bool       `firestore:"validated" json:"validated"`
	ValidatedAt     *time.Time `firestore:"validatedAt,omitempty" json:"validatedAt,omitempty"`
	TrackingNumber  string     `firestore:"trackingNumber,omitempty" json:"trackingNumber,omitempty"`
	ShippingStatus  string     `firestore:"shippingStatus,omitempty" json:"shippingStatus,omitempty"`
	CreatedAt       time.Time  `firestore:"createdAt" json:"createdAt"`
}

// CreateReservationInput carries the booking snapshot from the client
type CreateReservationInput struct {
	UserID        string   `json:"userId"`
	UserName      string   `json:"userName"`
	UserEmail     string   `json:"userEmail"`
	UserWhatsapp  string   `json:"userWhatsapp,omitempty"`
	CourseID      string   `json:"courseId"`
	CourseName    string   `json:"courseName"`
	CourseTime    string   `json:"courseTime"`
	Datetime      string   `json:"datetime,omitempty"`
	SelectedDates []string `json:"selectedDates,omitempty"`
	OfferID       string   `json:"offerId"`
	OfferName     string   `json:"offerName"`
	Price         float64  `json:"price"`
	Quantity      int      `json:"quantity,omitempty"`
	TotalPrice    float64  `json:"totalPrice"`
	DiscountCode  string   `json:"discountCode,omitempty"`
	DiscountType  string   `json:"discountType,omitempty"`
	DiscountValue float64  `json:"discountValue,omitempty"`
}

func (in *CreateReservationInput) Trim() {
	in.UserName = strings.TrimSpace(in.UserName)
	in.UserEmail = strings.TrimSpace(in.UserEmail)
	in.UserWhatsapp = strings.TrimSpace(in.UserWhatsapp)
	in.CourseName = strings.TrimSpace(in.CourseName)
	in.CourseTime = strings.TrimSpace(in.CourseTime)
	in.OfferName = strings.TrimSpace(in.OfferName)
	in.DiscountCode = strings.TrimSpace(in.DiscountCode)
}

// UpdateTrackingInput updates shipping fields only
type UpdateTrackingInput struct {
	TrackingNumber *string `json:"trackingNumber,omitempty"`
	ShippingStatus *string `json:"shippingStatus,omitempty"`
}

func (in *UpdateTrackingInput) Trim() {
	if in.TrackingNumber != nil {
		*in.TrackingNumber = strings.TrimSpace(*in.TrackingNumber)
	}
	if in.ShippingStatus != nil {
		*in.ShippingStatus = strings.TrimSpace(*in.ShippingStatus)
	}
}

// ListReservationsInput represents input for listing reservations
type ListReservationsInput struct {
	Page    int
	Limit   int
	AllData bool
}

// ReservationSummary is the projected shape for the paginated listing
type ReservationSummary struct {
	ID              string    `firestore:"id" json:"id"`
	ReservationCode string    `firestore:"reservationCode" json:"reservationCode"`
	UserName        string    `firestore:"userName" json:"userName"`
	UserEmail       string    `firestore:"userEmail" json:"userEmail"`
	CourseName      string    `firestore:"courseName" json:"courseName"`
	CourseTime      string    `firestore:"courseTime" json:"courseTime"`
	OfferName       string    `firestore:"offerName" json:"offerName"`
	Quantity        int       `firestore:"quantity" json:"quantity"`
	TotalPrice      float64   `firestore:"totalPrice" json:"totalPrice"`
	Validated       bool      `firestore:"validated" json:"validated"`
	ShippingStatus  string    `firestore:"shippingStatus,omitempty" json:"shippingStatus,omitempty"`
	TrackingNumber  string    `firestore:"trackingNumber,omitempty" json:"trackingNumber,omitempty"`
	CreatedAt       time.Time `firestore:"createdAt" json:"createdAt"`
}

// ListResult is a page of reservations
type ListResult struct {
	Reservations []ReservationSummary `json:"reservations"`
	Page         int                  `json:"page"`
	Limit        int                  `json:"limit"`
}
