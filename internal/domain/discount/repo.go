package discount

import (
	"context"
	"fmt"
	"strings"

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
	return r.fs.Collection("discount_codes")
}

// Create creates a new discount code
func (r *Repo) Create(ctx context.Context, dc DiscountCode) (*DiscountCode, error) {
	if dc.ID == "" {
		dc.ID = uuid.NewString()
	}
	if dc.Courses == nil {
		dc.Courses = []string{}
	}

	_, err := r.col().Doc(dc.ID).Set(ctx, dc)
	if err != nil {
		return nil, fmt.Errorf("failed to create discount code: %w", err)
	}

	return &dc, nil
}

// Get retrieves a discount code by ID
func (r *Repo) Get(ctx context.Context, codeID string) (*DiscountCode, error) {
	doc, err := r.col().Doc(codeID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: discount code not found", ErrNotFound)
	}

	var dc DiscountCode
	if err := doc.DataTo(&dc); err != nil {
		return nil, fmt.Errorf("failed to parse discount code: %w", err)
	}
	dc.ID = doc.Ref.ID

	return &dc, nil
}

// Update applies a partial update and returns the stored document
func (r *Repo) Update(ctx context.Context, codeID string, updates map[string]interface{}) (*DiscountCode, error) {
	_, err := r.col().Doc(codeID).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to update discount code: %w", err)
	}

	return r.Get(ctx, codeID)
}

// Delete deletes a discount code
func (r *Repo) Delete(ctx context.Context, codeID string) error {
	_, err := r.col().Doc(codeID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete discount code: %w", err)
	}
	return nil
}

// List lists all discount codes
func (r *Repo) List(ctx context.Context) ([]DiscountCode, error) {
	iter := r.col().Limit(1000).Documents(ctx)
	defer iter.Stop()

	var codes []DiscountCode
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate discount codes: %w", err)
		}

		var dc DiscountCode
		if err := doc.DataTo(&dc); err != nil {
			continue
		}
		dc.ID = doc.Ref.ID
		codes = append(codes, dc)
	}

	if codes == nil {
		codes = []DiscountCode{}
	}

	return codes, nil
}

// FindActiveByCode finds an active code whose stored code matches the
// submitted one case-insensitively. Firestore has no case-insensitive
// query, so the active codes are compared in code; the collection is small
// (promo codes, not coupons at scale).
func (r *Repo) FindActiveByCode(ctx context.Context, code string) (*DiscountCode, error) {
	normalized := NormalizeCode(code)

	iter := r.col().Where("active", "==", true).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to search discount codes: %w", err)
		}

		var dc DiscountCode
		if err := doc.DataTo(&dc); err != nil {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(dc.Code), normalized) {
			dc.ID = doc.Ref.ID
			return &dc, nil
		}
	}

	return nil, nil
}

// IncrementUsed applies a blind atomic +1 to the use counter. It is not
// conditional on maxUses; validate-then-use is a two-phase contract.
func (r *Repo) IncrementUsed(ctx context.Context, codeID string) error {
	_, err := r.col().Doc(codeID).Update(ctx, []firestore.Update{
		{Path: "used", Value: firestore.Increment(1)},
	})
	if err != nil {
		return fmt.Errorf("failed to increment code usage: %w", err)
	}
	return nil
}

// RemoveCourseRef strips a deleted course/offer id from every code's
// allow-list. Each code is an independent write; a crash partway leaves
// the remaining codes untouched until the next cleanup.
func (r *Repo) RemoveCourseRef(ctx context.Context, courseID string) (int, error) {
	iter := r.col().Where("courses", "array-contains", courseID).Documents(ctx)
	defer iter.Stop()

	cleaned := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return cleaned, fmt.Errorf("failed to find codes referencing %s: %w", courseID, err)
		}

		_, err = doc.Ref.Update(ctx, []firestore.Update{
			{Path: "courses", Value: firestore.ArrayRemove(courseID)},
		})
		if err != nil {
			return cleaned, fmt.Errorf("failed to clean code %s: %w", doc.Ref.ID, err)
		}
		cleaned++
	}

	return cleaned, nil
}

// ClearAssignedEmail blanks the assignedEmail of every code assigned to a
// deleted contact's email
func (r *Repo) ClearAssignedEmail(ctx context.Context, email string) (int, error) {
	if strings.TrimSpace(email) == "" {
		return 0, nil
	}

	iter := r.col().Where("assignedEmail", "==", email).Documents(ctx)
	defer iter.Stop()

	cleared := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return cleared, fmt.Errorf("failed to find codes assigned to %s: %w", email, err)
		}

		_, err = doc.Ref.Set(ctx, map[string]interface{}{"assignedEmail": ""}, firestore.MergeAll)
		if err != nil {
			return cleared, fmt.Errorf("failed to clear assignment on code %s: %w", doc.Ref.ID, err)
		}
		cleared++
	}

	return cleared, nil
}
