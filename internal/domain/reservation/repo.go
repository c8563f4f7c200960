package reservation

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) col() *firestore.CollectionRef {
	return r.fs.Collection("reservations")
}

// summaryFields is the projection used on the paginated path so the admin
// list does not transfer full booking payloads.
var summaryFields = []string{
	"id", "reservationCode", "userName", "userEmail", "courseName",
	"courseTime", "offerName", "quantity", "totalPrice", "validated",
	"shippingStatus", "trackingNumber", "createdAt",
}

// Create persists a new reservation keyed by a fresh UUID
func (r *Repo) Create(ctx context.Context, res Reservation) (*Reservation, error) {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}

	_, err := r.col().Doc(res.ID).Set(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	return &res, nil
}

// Get retrieves a reservation by ID
func (r *Repo) Get(ctx context.Context, reservationID string) (*Reservation, error) {
	doc, err := r.col().Doc(reservationID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: reservation not found", ErrNotFound)
	}

	var res Reservation
	if err := doc.DataTo(&res); err != nil {
		return nil, fmt.Errorf("failed to parse reservation: %w", err)
	}
	res.ID = doc.Ref.ID

	return &res, nil
}

// GetByCode looks a reservation up by its human-shareable code
func (r *Repo) GetByCode(ctx context.Context, code string) (*Reservation, error) {
	iter := r.col().Where("reservationCode", "==", code).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("%w: reservation not found", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up reservation code: %w", err)
	}

	var res Reservation
	if err := doc.DataTo(&res); err != nil {
		return nil, fmt.Errorf("failed to parse reservation: %w", err)
	}
	res.ID = doc.Ref.ID

	return &res, nil
}

// MarkValidated sets the validated flag and stamps validatedAt. Re-marking
// an already-validated reservation just refreshes the timestamp.
func (r *Repo) MarkValidated(ctx context.Context, reservationID string, at time.Time) (*Reservation, error) {
	_, err := r.col().Doc(reservationID).Set(ctx, map[string]interface{}{
		"validated":   true,
		"validatedAt": at,
	}, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to validate reservation: %w", err)
	}

	return r.Get(ctx, reservationID)
}

// UpdateTracking updates shipping fields only; everything else untouched
func (r *Repo) UpdateTracking(ctx context.Context, reservationID string, updates map[string]interface{}) (*Reservation, error) {
	_, err := r.col().Doc(reservationID).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to update tracking: %w", err)
	}

	return r.Get(ctx, reservationID)
}

// Delete deletes a reservation
func (r *Repo) Delete(ctx context.Context, reservationID string) error {
	_, err := r.col().Doc(reservationID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	return nil
}

// ListPage returns one projected page, newest first
func (r *Repo) ListPage(ctx context.Context, page, limit int) ([]ReservationSummary, error) {
	q := r.col().
		Select(summaryFields...).
		OrderBy("createdAt", firestore.Desc).
		Offset((page - 1) * limit).
		Limit(limit)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []ReservationSummary
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate reservations: %w", err)
		}

		var s ReservationSummary
		if err := doc.DataTo(&s); err != nil {
			continue
		}
		s.ID = doc.Ref.ID
		out = append(out, s)
	}

	if out == nil {
		out = []ReservationSummary{}
	}

	return out, nil
}

// ListAll returns every reservation with full payloads, newest first.
// Used by the export path.
func (r *Repo) ListAll(ctx context.Context) ([]Reservation, error) {
	iter := r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var out []Reservation
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate reservations: %w", err)
		}

		var res Reservation
		if err := doc.DataTo(&res); err != nil {
			continue
		}
		res.ID = doc.Ref.ID
		out = append(out, res)
	}

	if out == nil {
		out = []Reservation{}
	}

	return out, nil
}
