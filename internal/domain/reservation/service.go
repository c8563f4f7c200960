package reservation

import (
	"context"
	"fmt"
	"time"

	"afroboost/backend/internal/metrics"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// Create persists a booking snapshot as submitted. totalPrice is taken
// from the caller; there is no server-side price integrity check.
func (s *Service) Create(ctx context.Context, in CreateReservationInput) (*Reservation, error) {
	in.Trim()

	if in.UserName == "" || in.UserEmail == "" {
		return nil, fmt.Errorf("%w: userName and userEmail are required", ErrBadRequest)
	}
	if in.CourseID == "" || in.OfferID == "" {
		return nil, fmt.Errorf("%w: courseId and offerId are required", ErrBadRequest)
	}
	if in.TotalPrice < 0 {
		return nil, fmt.Errorf("%w: totalPrice must be non-negative", ErrBadRequest)
	}

	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	res, err := s.repo.Create(ctx, Reservation{
		ReservationCode: NewCode(),
		UserID:          in.UserID,
		UserName:        in.UserName,
		UserEmail:       in.UserEmail,
		UserWhatsapp:    in.UserWhatsapp,
		CourseID:        in.CourseID,
		CourseName:      in.CourseName,
		CourseTime:      in.CourseTime,
		Datetime:        in.Datetime,
		SelectedDates:   in.SelectedDates,
		OfferID:         in.OfferID,
		OfferName:       in.OfferName,
		Price:           in.Price,
		Quantity:        quantity,
		TotalPrice:      in.TotalPrice,
		DiscountCode:    in.DiscountCode,
		DiscountType:    in.DiscountType,
		DiscountValue:   in.DiscountValue,
		Validated:       false,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.ReservationsCreated.Inc()
	return res, nil
}

// Get retrieves a reservation by ID
func (s *Service) Get(ctx context.Context, reservationID string) (*Reservation, error) {
	if reservationID == "" {
		return nil, fmt.Errorf("%w: reservationId is required", ErrBadRequest)
	}
	return s.repo.Get(ctx, reservationID)
}

// Validate is the staff QR-scan path. It is idempotent: re-scanning an
// already-validated reservation re-sets the flag and refreshes the
// timestamp without erroring.
func (s *Service) Validate(ctx context.Context, code string) (*Reservation, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: reservation code is required", ErrBadRequest)
	}

	res, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	return s.repo.MarkValidated(ctx, res.ID, time.Now().UTC())
}

// UpdateTracking patches trackingNumber / shippingStatus only
func (s *Service) UpdateTracking(ctx context.Context, reservationID string, in UpdateTrackingInput) (*Reservation, error) {
	if reservationID == "" {
		return nil, fmt.Errorf("%w: reservationId is required", ErrBadRequest)
	}
	in.Trim()

	if _, err := s.repo.Get(ctx, reservationID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.TrackingNumber != nil {
		updates["trackingNumber"] = *in.TrackingNumber
	}
	if in.ShippingStatus != nil {
		updates["shippingStatus"] = *in.ShippingStatus
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: trackingNumber or shippingStatus is required", ErrBadRequest)
	}

	return s.repo.UpdateTracking(ctx, reservationID, updates)
}

// Delete deletes a reservation
func (s *Service) Delete(ctx context.Context, reservationID string) error {
	if reservationID == "" {
		return fmt.Errorf("%w: reservationId is required", ErrBadRequest)
	}

	if _, err := s.repo.Get(ctx, reservationID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, reservationID)
}

// ListPage returns one projected page of reservations
func (s *Service) ListPage(ctx context.Context, in ListReservationsInput) (*ListResult, error) {
	page := in.Page
	if page <= 0 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	items, err := s.repo.ListPage(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &ListResult{Reservations: items, Page: page, Limit: limit}, nil
}

// ListAll returns full payloads for export
func (s *Service) ListAll(ctx context.Context) ([]Reservation, error) {
	return s.repo.ListAll(ctx)
}
