package settings

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) col() *firestore.CollectionRef {
	return r.fs.Collection("settings")
}

// Load reads a singleton document into out. Returns ErrNotFound when the
// document has never been seeded.
func (r *Repo) Load(ctx context.Context, docID string, out interface{}) error {
	doc, err := r.col().Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, docID)
		}
		return fmt.Errorf("failed to load %s: %w", docID, err)
	}
	if err := doc.DataTo(out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", docID, err)
	}
	return nil
}

// Seed writes the full default document
func (r *Repo) Seed(ctx context.Context, docID string, doc interface{}) error {
	_, err := r.col().Doc(docID).Set(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to seed %s: %w", docID, err)
	}
	return nil
}

// Merge applies a partial update to a singleton, creating it if missing
func (r *Repo) Merge(ctx context.Context, docID string, updates map[string]interface{}) error {
	_, err := r.col().Doc(docID).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", docID, err)
	}
	return nil
}

// Ping does a single-document read to prove the store is reachable. A
// missing document still counts as reachable.
func (r *Repo) Ping(ctx context.Context) error {
	_, err := r.col().Doc(DocAppConfig).Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("store unreachable: %w", err)
	}
	return nil
}
