package contact

import (
	"context"
	"fmt"
	"log"
	"time"

	"afroboost/backend/internal/domain/discount"
)

type Service struct {
	repo         *Repo
	discountRepo *discount.Repo
}

func NewService(repo *Repo, discountRepo *discount.Repo) *Service {
	return &Service{repo: repo, discountRepo: discountRepo}
}

// List lists contacts
func (s *Service) List(ctx context.Context, limit int) ([]Contact, error) {
	return s.repo.List(ctx, limit)
}

// Create creates a new contact
func (s *Service) Create(ctx context.Context, in CreateContactInput) (*Contact, error) {
	in.Trim()

	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	if in.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrBadRequest)
	}

	return s.repo.Create(ctx, Contact{
		Name:      in.Name,
		Email:     in.Email,
		Whatsapp:  in.Whatsapp,
		CreatedAt: time.Now().UTC(),
	})
}

// Get retrieves a contact by ID
func (s *Service) Get(ctx context.Context, contactID string) (*Contact, error) {
	if contactID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrBadRequest)
	}
	return s.repo.Get(ctx, contactID)
}

// Update applies a partial update to a contact
func (s *Service) Update(ctx context.Context, contactID string, in UpdateContactInput) (*Contact, error) {
	if contactID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrBadRequest)
	}
	in.Trim()

	if _, err := s.repo.Get(ctx, contactID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrBadRequest)
		}
		updates["name"] = *in.Name
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, fmt.Errorf("%w: email cannot be empty", ErrBadRequest)
		}
		updates["email"] = *in.Email
	}
	if in.Whatsapp != nil {
		updates["whatsapp"] = *in.Whatsapp
	}

	if len(updates) == 0 {
		return s.repo.Get(ctx, contactID)
	}

	return s.repo.Update(ctx, contactID, updates)
}

// Delete deletes a contact and blanks any discount code assigned to the
// contact's email. Independent writes, no rollback.
func (s *Service) Delete(ctx context.Context, contactID string) error {
	if contactID == "" {
		return fmt.Errorf("%w: userId is required", ErrBadRequest)
	}

	c, err := s.repo.Get(ctx, contactID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, contactID); err != nil {
		return err
	}

	cleared, err := s.discountRepo.ClearAssignedEmail(ctx, c.Email)
	if err != nil {
		log.Printf("[contact] discount cleanup after deleting %s failed (cleared %d): %v", contactID, cleared, err)
		return nil
	}
	if cleared > 0 {
		log.Printf("[contact] cleared assignment on %d discount code(s) for %s", cleared, c.Email)
	}

	return nil
}
