package offer

import (
	"context"
	"fmt"

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
	return r.fs.Collection("offers")
}

// Create creates a new offer keyed by a fresh UUID
func (r *Repo) Create(ctx context.Context, o Offer) (*Offer, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	_, err := r.col().Doc(o.ID).Set(ctx, o)
	if err != nil {
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}

	return &o, nil
}

// Get retrieves an offer by ID
func (r *Repo) Get(ctx context.Context, offerID string) (*Offer, error) {
	doc, err := r.col().Doc(offerID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: offer not found", ErrNotFound)
	}

	var o Offer
	if err := doc.DataTo(&o); err != nil {
		return nil, fmt.Errorf("failed to parse offer: %w", err)
	}
	o.ID = doc.Ref.ID

	return &o, nil
}

// Update applies a partial update and returns the stored document
func (r *Repo) Update(ctx context.Context, offerID string, updates map[string]interface{}) (*Offer, error) {
	_, err := r.col().Doc(offerID).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}

	return r.Get(ctx, offerID)
}

// Delete deletes an offer
func (r *Repo) Delete(ctx context.Context, offerID string) error {
	_, err := r.col().Doc(offerID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	return nil
}

// List lists offers
func (r *Repo) List(ctx context.Context, visibleOnly bool) ([]Offer, error) {
	q := r.col().Query
	if visibleOnly {
		q = q.Where("visible", "==", true)
	}

	iter := q.Limit(100).Documents(ctx)
	defer iter.Stop()

	var offers []Offer
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate offers: %w", err)
		}

		var o Offer
		if err := doc.DataTo(&o); err != nil {
			continue
		}
		o.ID = doc.Ref.ID
		offers = append(offers, o)
	}

	if offers == nil {
		offers = []Offer{}
	}

	return offers, nil
}
