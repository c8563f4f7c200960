package contact

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
	return r.fs.Collection("users")
}

// Create creates a new contact keyed by a fresh UUID
func (r *Repo) Create(ctx context.Context, c Contact) (*Contact, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	_, err := r.col().Doc(c.ID).Set(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return &c, nil
}

// Get retrieves a contact by ID
func (r *Repo) Get(ctx context.Context, contactID string) (*Contact, error) {
	doc, err := r.col().Doc(contactID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	var c Contact
	if err := doc.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to parse contact: %w", err)
	}
	c.ID = doc.Ref.ID

	return &c, nil
}

// Update applies a partial update and returns the stored document
func (r *Repo) Update(ctx context.Context, contactID string, updates map[string]interface{}) (*Contact, error) {
	_, err := r.col().Doc(contactID).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return r.Get(ctx, contactID)
}

// Delete deletes a contact
func (r *Repo) Delete(ctx context.Context, contactID string) error {
	_, err := r.col().Doc(contactID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

// List lists contacts, newest first
func (r *Repo) List(ctx context.Context, limit int) ([]Contact, error) {
	if limit <= 0 || limit > 1000 {
		limit = 1000
	}

	iter := r.col().OrderBy("createdAt", firestore.Desc).Limit(limit).Documents(ctx)
	defer iter.Stop()

	var contacts []Contact
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate contacts: %w", err)
		}

		var c Contact
		if err := doc.DataTo(&c); err != nil {
			continue
		}
		c.ID = doc.Ref.ID
		contacts = append(contacts, c)
	}

	if contacts == nil {
		contacts = []Contact{}
	}

	return contacts, nil
}

// GetByIDs fetches an explicit subset of contacts. Missing ids are
// silently skipped; the campaign snapshot only covers contacts that still
// exist at launch time.
func (r *Repo) GetByIDs(ctx context.Context, ids []string) ([]Contact, error) {
	contacts := make([]Contact, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		c, err := r.Get(ctx, id)
		if err != nil {
			if IsErrNotFound(err) {
				continue
			}
			return nil, err
		}
		contacts = append(contacts, *c)
	}
	return contacts, nil
}
