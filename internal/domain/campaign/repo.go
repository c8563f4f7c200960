package campaign

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
	return r.fs.Collection("campaigns")
}

// Create creates a new campaign keyed by a fresh UUID
func (r *Repo) Create(ctx context.Context, c Campaign) (*Campaign, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Results == nil {
		c.Results = []Result{}
	}

	_, err := r.col().Doc(c.ID).Set(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	return &c, nil
}

// Get retrieves a campaign by ID
func (r *Repo) Get(ctx context.Context, campaignID string) (*Campaign, error) {
	doc, err := r.col().Doc(campaignID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: campaign not found", ErrNotFound)
	}

	var c Campaign
	if err := doc.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to parse campaign: %w", err)
	}
	c.ID = doc.Ref.ID

	return &c, nil
}

// Update applies a partial update and returns the stored document
func (r *Repo) Update(ctx context.Context, campaignID string, updates map[string]interface{}) (*Campaign, error) {
	_, err := r.col().Doc(campaignID).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}

	return r.Get(ctx, campaignID)
}

// Delete deletes a campaign
func (r *Repo) Delete(ctx context.Context, campaignID string) error {
	_, err := r.col().Doc(campaignID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return nil
}

// List lists campaigns, newest first
func (r *Repo) List(ctx context.Context) ([]Campaign, error) {
	iter := r.col().OrderBy("createdAt", firestore.Desc).Limit(200).Documents(ctx)
	defer iter.Stop()

	var campaigns []Campaign
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate campaigns: %w", err)
		}

		var c Campaign
		if err := doc.DataTo(&c); err != nil {
			continue
		}
		c.ID = doc.Ref.ID
		campaigns = append(campaigns, c)
	}

	if campaigns == nil {
		campaigns = []Campaign{}
	}

	return campaigns, nil
}
