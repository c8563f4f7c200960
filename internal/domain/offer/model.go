package offer

import (
	"strings"
	"time"
)

// UnlimitedStock is the sentinel for offers without stock tracking.
const UnlimitedStock = -1

// Variant is one option set on a product (size, color, weight).
type Variant struct {
	Name    string   `firestore:"name" json:"name"`
	Options []string `firestore:"options" json:"options"`
}

// Offer is a bookable pass or a physical product in the shop.
type Offer struct {
	ID           string    `firestore:"id" json:"id"`
	Name         string    `firestore:"name" json:"name"`
	Price        float64   `firestore:"price" json:"price"`
	Category     string    `firestore:"category,omitempty" json:"category,omitempty"`
	IsProduct    bool      `firestore:"isProduct" json:"isProduct"`
	Variants     []Variant `firestore:"variants,omitempty" json:"variants,omitempty"`
	Stock        int       `firestore:"stock" json:"stock"` // -1 = unlimited
	TVA          float64   `firestore:"tva,omitempty" json:"tva,omitempty"`
	ShippingCost float64   `firestore:"shippingCost,omitempty" json:"shippingCost,omitempty"`
	Thumbnail    string    `firestore:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	VideoURL     string    `firestore:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Description  string    `firestore:"description,omitempty" json:"description,omitempty"`
	Visible      bool      `firestore:"visible" json:"visible"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// CreateOfferInput represents input for creating an offer
type CreateOfferInput struct {
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Category     string    `json:"category,omitempty"`
	IsProduct    bool      `json:"isProduct,omitempty"`
	Variants     []Variant `json:"variants,omitempty"`
	Stock        *int      `json:"stock,omitempty"`
	TVA          float64   `json:"tva,omitempty"`
	ShippingCost float64   `json:"shippingCost,omitempty"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
	VideoURL     string    `json:"videoUrl,omitempty"`
	Description  string    `json:"description,omitempty"`
	Visible      *bool     `json:"visible,omitempty"`
}

func (in *CreateOfferInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Thumbnail = strings.TrimSpace(in.Thumbnail)
	in.VideoURL = strings.TrimSpace(in.VideoURL)
	in.Description = strings.TrimSpace(in.Description)
}

// UpdateOfferInput represents input for updating an offer
type UpdateOfferInput struct {
	Name         *string    `json:"name,omitempty"`
	Price        *float64   `json:"price,omitempty"`
	Category     *string    `json:"category,omitempty"`
	IsProduct    *bool      `json:"isProduct,omitempty"`
	Variants     *[]Variant `json:"variants,omitempty"`
	Stock        *int       `json:"stock,omitempty"`
	TVA          *float64   `json:"tva,omitempty"`
	ShippingCost *float64   `json:"shippingCost,omitempty"`
	Thumbnail    *string    `json:"thumbnail,omitempty"`
	VideoURL     *string    `json:"videoUrl,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Visible      *bool      `json:"visible,omitempty"`
}

func (in *UpdateOfferInput) Trim() {
	if in.Name != nil {
		*in.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		*in.Category = strings.TrimSpace(*in.Category)
	}
	if in.Thumbnail != nil {
		*in.Thumbnail = strings.TrimSpace(*in.Thumbnail)
	}
	if in.VideoURL != nil {
		*in.VideoURL = strings.TrimSpace(*in.VideoURL)
	}
	if in.Description != nil {
		*in.Description = strings.TrimSpace(*in.Description)
	}
}
