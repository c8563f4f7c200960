package course

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
	return r.fs.Collection("courses")
}

// Create creates a new course keyed by a fresh UUID
func (r *Repo) Create(ctx context.Context, c Course) (*Course, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	_, err := r.col().Doc(c.ID).Set(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return &c, nil
}

// Get retrieves a course by ID
func (r *Repo) Get(ctx context.Context, courseID string) (*Course, error) {
	doc, err := r.col().Doc(courseID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: course not found", ErrNotFound)
	}

	var c Course
	if err := doc.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to parse course: %w", err)
	}
	c.ID = doc.Ref.ID

	return &c, nil
}

// Update applies a partial update and returns the stored document
func (r *Repo) Update(ctx context.Context, courseID string, updates map[string]interface{}) (*Course, error) {
	_, err := r.col().Doc(courseID).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	return r.Get(ctx, courseID)
}

// Delete hard-deletes a course. The archive endpoint is preferred; this is
// kept for the older admin surface.
func (r *Repo) Delete(ctx context.Context, courseID string) error {
	_, err := r.col().Doc(courseID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}

// List lists courses. Archived courses are filtered in code so that
// documents written before the archived field existed still show up.
func (r *Repo) List(ctx context.Context, in ListCoursesInput) ([]Course, error) {
	iter := r.col().Limit(100).Documents(ctx)
	defer iter.Stop()

	var courses []Course
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate courses: %w", err)
		}

		var c Course
		if err := doc.DataTo(&c); err != nil {
			continue
		}
		c.ID = doc.Ref.ID

		if c.Archived && !in.IncludeArchived {
			continue
		}
		if in.VisibleOnly && !c.Visible {
			continue
		}
		courses = append(courses, c)
	}

	if courses == nil {
		courses = []Course{}
	}

	return courses, nil
}

// Count counts all course documents, archived included
func (r *Repo) Count(ctx context.Context) (int, error) {
	iter := r.col().Select().Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to count courses: %w", err)
		}
		count++
	}
	return count, nil
}
