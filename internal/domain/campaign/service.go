package campaign

import (
	"context"
	"fmt"
	"time"

	"afroboost/backend/internal/domain/contact"
)

type Service struct {
	repo        *Repo
	contactRepo *contact.Repo
}

func NewService(repo *Repo, contactRepo *contact.Repo) *Service {
	return &Service{repo: repo, contactRepo: contactRepo}
}

// List lists campaigns
func (s *Service) List(ctx context.Context) ([]Campaign, error) {
	return s.repo.List(ctx)
}

// Create creates a draft campaign
func (s *Service) Create(ctx context.Context, in CreateCampaignInput) (*Campaign, error) {
	in.Trim()

	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	if in.Message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrBadRequest)
	}
	if len(in.Channels.Enabled()) == 0 {
		return nil, fmt.Errorf("%w: at least one channel is required", ErrBadRequest)
	}

	targetType := in.TargetType
	if targetType == "" {
		targetType = TargetAll
	}
	if targetType != TargetAll && targetType != TargetSelected {
		return nil, fmt.Errorf("%w: targetType must be all or selected", ErrBadRequest)
	}
	if targetType == TargetSelected && len(in.ContactIDs) == 0 {
		return nil, fmt.Errorf("%w: contactIds are required for selected targeting", ErrBadRequest)
	}

	status := StatusDraft
	if in.ScheduledAt != nil && !in.ScheduledAt.IsZero() {
		status = StatusScheduled
	}

	now := time.Now().UTC()

	return s.repo.Create(ctx, Campaign{
		Name:        in.Name,
		Message:     in.Message,
		MediaURL:    in.MediaURL,
		Channels:    in.Channels,
		TargetType:  targetType,
		ContactIDs:  in.ContactIDs,
		Status:      status,
		Results:     []Result{},
		ScheduledAt: in.ScheduledAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// Get retrieves a campaign by ID
func (s *Service) Get(ctx context.Context, campaignID string) (*Campaign, error) {
	if campaignID == "" {
		return nil, fmt.Errorf("%w: campaignId is required", ErrBadRequest)
	}
	return s.repo.Get(ctx, campaignID)
}

// Update applies a partial update. Campaigns that already started sending
// keep their materialized results untouched.
func (s *Service) Update(ctx context.Context, campaignID string, in UpdateCampaignInput) (*Campaign, error) {
	if campaignID == "" {
		return nil, fmt.Errorf("%w: campaignId is required", ErrBadRequest)
	}

	c, err := s.repo.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.Status == StatusSending || c.Status == StatusCompleted {
		return nil, fmt.Errorf("%w: campaign already launched", ErrBadRequest)
	}

	updates := map[string]interface{}{
		"updatedAt": time.Now().UTC(),
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrBadRequest)
		}
		updates["name"] = *in.Name
	}
	if in.Message != nil {
		updates["message"] = *in.Message
	}
	if in.MediaURL != nil {
		updates["mediaUrl"] = *in.MediaURL
	}
	if in.Channels != nil {
		if len(in.Channels.Enabled()) == 0 {
			return nil, fmt.Errorf("%w: at least one channel is required", ErrBadRequest)
		}
		updates["channels"] = *in.Channels
	}
	if in.TargetType != nil {
		if *in.TargetType != TargetAll && *in.TargetType != TargetSelected {
			return nil, fmt.Errorf("%w: targetType must be all or selected", ErrBadRequest)
		}
		updates["targetType"] = *in.TargetType
	}
	if in.ContactIDs != nil {
		updates["contactIds"] = *in.ContactIDs
	}
	if in.ScheduledAt != nil {
		updates["scheduledAt"] = *in.ScheduledAt
		updates["status"] = StatusScheduled
	}

	return s.repo.Update(ctx, campaignID, updates)
}

// Delete deletes a campaign
func (s *Service) Delete(ctx context.Context, campaignID string) error {
	if campaignID == "" {
		return fmt.Errorf("%w: campaignId is required", ErrBadRequest)
	}

	if _, err := s.repo.Get(ctx, campaignID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, campaignID)
}

// Launch snapshots the current audience into pending result rows and
// flips the campaign to sending. Launching an already-sending or
// completed campaign is rejected; transitions only move forward.
func (s *Service) Launch(ctx context.Context, campaignID string) (*Campaign, error) {
	c, err := s.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.Status == StatusSending || c.Status == StatusCompleted {
		return nil, fmt.Errorf("%w: campaign already launched", ErrBadRequest)
	}

	var audience []contact.Contact
	if c.TargetType == TargetSelected {
		audience, err = s.contactRepo.GetByIDs(ctx, c.ContactIDs)
	} else {
		audience, err = s.contactRepo.List(ctx, 0)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve campaign audience: %w", err)
	}

	now := time.Now().UTC()

	return s.repo.Update(ctx, campaignID, map[string]interface{}{
		"results":    BuildResults(audience, c.Channels),
		"status":     StatusSending,
		"launchedAt": now,
		"updatedAt":  now,
	})
}

// MarkResultSent marks one (contactId, channel) row sent, then rescans
// all rows and flips the campaign to completed when every row is sent.
func (s *Service) MarkResultSent(ctx context.Context, campaignID string, in MarkSentInput) (*Campaign, error) {
	if in.ContactID == "" || in.Channel == "" {
		return nil, fmt.Errorf("%w: contactId and channel are required", ErrBadRequest)
	}

	c, err := s.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if !MarkSent(c.Results, in.ContactID, in.Channel, now) {
		return nil, fmt.Errorf("%w: no result row for contact %s on %s", ErrNotFound, in.ContactID, in.Channel)
	}

	updates := map[string]interface{}{
		"results":   c.Results,
		"updatedAt": now,
	}
	if AllSent(c.Results) {
		updates["status"] = StatusCompleted
	}

	return s.repo.Update(ctx, campaignID, updates)
}
