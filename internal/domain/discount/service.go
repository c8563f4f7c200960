package discount

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

// List lists all discount codes
func (s *Service) List(ctx context.Context) ([]DiscountCode, error) {
	return s.repo.List(ctx)
}

// Create creates a new discount code
func (s *Service) Create(ctx context.Context, in CreateDiscountCodeInput) (*DiscountCode, error) {
	in.Trim()

	if in.Code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrBadRequest)
	}
	if !IsValidType(in.Type) {
		return nil, fmt.Errorf("%w: type must be one of: 100%%, %%, CHF", ErrBadRequest)
	}
	if in.Value < 0 {
		return nil, fmt.Errorf("%w: value must be non-negative", ErrBadRequest)
	}
	if in.MaxUses < 0 {
		return nil, fmt.Errorf("%w: maxUses must be non-negative", ErrBadRequest)
	}

	courses := in.Courses
	if courses == nil {
		courses = []string{}
	}

	return s.repo.Create(ctx, DiscountCode{
		Code:          in.Code,
		Type:          in.Type,
		Value:         in.Value,
		AssignedEmail: in.AssignedEmail,
		ExpiresAt:     in.ExpiresAt,
		Courses:       courses,
		MaxUses:       in.MaxUses,
		Used:          0,
		Active:        true,
	})
}

// Update applies a partial update to a discount code
func (s *Service) Update(ctx context.Context, codeID string, in UpdateDiscountCodeInput) (*DiscountCode, error) {
	if codeID == "" {
		return nil, fmt.Errorf("%w: codeId is required", ErrBadRequest)
	}
	in.Trim()

	if _, err := s.repo.Get(ctx, codeID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if in.Code != nil {
		if *in.Code == "" {
			return nil, fmt.Errorf("%w: code cannot be empty", ErrBadRequest)
		}
		updates["code"] = *in.Code
	}
	if in.Type != nil {
		if !IsValidType(*in.Type) {
			return nil, fmt.Errorf("%w: type must be one of: 100%%, %%, CHF", ErrBadRequest)
		}
		updates["type"] = *in.Type
	}
	if in.Value != nil {
		if *in.Value < 0 {
			return nil, fmt.Errorf("%w: value must be non-negative", ErrBadRequest)
		}
		updates["value"] = *in.Value
	}
	if in.AssignedEmail != nil {
		updates["assignedEmail"] = *in.AssignedEmail
	}
	if in.ExpiresAt != nil {
		updates["expiresAt"] = *in.ExpiresAt
	}
	if in.Courses != nil {
		updates["courses"] = *in.Courses
	}
	if in.MaxUses != nil {
		if *in.MaxUses < 0 {
			return nil, fmt.Errorf("%w: maxUses must be non-negative", ErrBadRequest)
		}
		updates["maxUses"] = *in.MaxUses
	}
	if in.Active != nil {
		updates["active"] = *in.Active
	}

	if len(updates) == 0 {
		return s.repo.Get(ctx, codeID)
	}

	return s.repo.Update(ctx, codeID, updates)
}

// Delete deletes a discount code
func (s *Service) Delete(ctx context.Context, codeID string) error {
	if codeID == "" {
		return fmt.Errorf("%w: codeId is required", ErrBadRequest)
	}

	if _, err := s.repo.Get(ctx, codeID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, codeID)
}

// Validate checks a submitted code against the booking request. An
// unknown or failing code is a normal result, not an error.
func (s *Service) Validate(ctx context.Context, in ValidateInput) (ValidateResult, error) {
	dc, err := s.repo.FindActiveByCode(ctx, in.Code)
	if err != nil {
		return ValidateResult{}, err
	}

	var result ValidateResult
	if dc == nil {
		result = ValidateResult{Valid: false, Message: msgUnknown}
	} else {
		result = Evaluate(*dc, in, time.Now().UTC())
	}

	metrics.RecordDiscountValidation(result.Valid)
	return result, nil
}

// Use consumes one use of a code. Invoked by the client after it decides
// to apply the code; deliberately not coupled to Validate.
func (s *Service) Use(ctx context.Context, codeID string) error {
	if codeID == "" {
		return fmt.Errorf("%w: codeId is required", ErrBadRequest)
	}

	if _, err := s.repo.Get(ctx, codeID); err != nil {
		return err
	}

	return s.repo.IncrementUsed(ctx, codeID)
}
