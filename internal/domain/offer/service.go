package offer

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

// defaultOffers are seeded on the first listing of an empty collection.
var defaultOffers = []Offer{
	{Name: "Cours à l'unité", Price: 30, Stock: UnlimitedStock, Visible: true},
	{Name: "Carte 10 cours", Price: 150, Stock: UnlimitedStock, Visible: true},
	{Name: "Abonnement 1 mois", Price: 109, Stock: UnlimitedStock, Visible: true},
}

// List lists offers, seeding the default pricing when the collection is empty
func (s *Service) List(ctx context.Context, visibleOnly bool) ([]Offer, error) {
	offers, err := s.repo.List(ctx, visibleOnly)
	if err != nil {
		return nil, err
	}
	if len(offers) > 0 || visibleOnly {
		return offers, nil
	}

	now := time.Now().UTC()
	seeded := make([]Offer, 0, len(defaultOffers))
	for _, o := range defaultOffers {
		o.CreatedAt = now
		o.UpdatedAt = now
		created, err := s.repo.Create(ctx, o)
		if err != nil {
			return nil, fmt.Errorf("failed to seed default offers: %w", err)
		}
		seeded = append(seeded, *created)
	}
	return seeded, nil
}

// Create creates a new offer
func (s *Service) Create(ctx context.Context, in CreateOfferInput) (*Offer, error) {
	in.Trim()

	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", ErrBadRequest)
	}

	stock := UnlimitedStock
	if in.Stock != nil {
		if *in.Stock < UnlimitedStock {
			return nil, fmt.Errorf("%w: stock must be -1 (unlimited) or non-negative", ErrBadRequest)
		}
		stock = *in.Stock
	}

	visible := true
	if in.Visible != nil {
		visible = *in.Visible
	}

	now := time.Now().UTC()

	return s.repo.Create(ctx, Offer{
		Name:         in.Name,
		Price:        in.Price,
		Category:     in.Category,
		IsProduct:    in.IsProduct,
		Variants:     in.Variants,
		Stock:        stock,
		TVA:          in.TVA,
		ShippingCost: in.ShippingCost,
		Thumbnail:    in.Thumbnail,
		VideoURL:     in.VideoURL,
		Description:  in.Description,
		Visible:      visible,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Get retrieves an offer by ID
func (s *Service) Get(ctx context.Context, offerID string) (*Offer, error) {
	if offerID == "" {
		return nil, fmt.Errorf("%w: offerId is required", ErrBadRequest)
	}
	return s.repo.Get(ctx, offerID)
}

// Update applies a partial update to an offer
func (s *Service) Update(ctx context.Context, offerID string, in UpdateOfferInput) (*Offer, error) {
	if offerID == "" {
		return nil, fmt.Errorf("%w: offerId is required", ErrBadRequest)
	}
	in.Trim()

	if _, err := s.repo.Get(ctx, offerID); err != nil {
		return nil, err
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
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, fmt.Errorf("%w: price must be non-negative", ErrBadRequest)
		}
		updates["price"] = *in.Price
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.IsProduct != nil {
		updates["isProduct"] = *in.IsProduct
	}
	if in.Variants != nil {
		updates["variants"] = *in.Variants
	}
	if in.Stock != nil {
		if *in.Stock < UnlimitedStock {
			return nil, fmt.Errorf("%w: stock must be -1 (unlimited) or non-negative", ErrBadRequest)
		}
		updates["stock"] = *in.Stock
	}
	if in.TVA != nil {
		updates["tva"] = *in.TVA
	}
	if in.ShippingCost != nil {
		updates["shippingCost"] = *in.ShippingCost
	}
	if in.Thumbnail != nil {
		updates["thumbnail"] = *in.Thumbnail
	}
	if in.VideoURL != nil {
		updates["videoUrl"] = *in.VideoURL
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Visible != nil {
		updates["visible"] = *in.Visible
	}

	return s.repo.Update(ctx, offerID, updates)
}

// Delete deletes an offer and strips its id from every discount code's
// allow-list. The two writes are independent; a crash in between leaves
// stale references that the validation path treats as "not applicable".
func (s *Service) Delete(ctx context.Context, offerID string) error {
	if offerID == "" {
		return fmt.Errorf("%w: offerId is required", ErrBadRequest)
	}

	if _, err := s.repo.Get(ctx, offerID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, offerID); err != nil {
		return err
	}

	cleaned, err := s.discountRepo.RemoveCourseRef(ctx, offerID)
	if err != nil {
		// The offer itself is gone; report the partial cleanup instead of
		// failing the delete.
		log.Printf("[offer] discount cleanup after deleting %s failed (cleaned %d): %v", offerID, cleaned, err)
		return nil
	}
	if cleaned > 0 {
		log.Printf("[offer] removed %s from %d discount code(s)", offerID, cleaned)
	}

	return nil
}
