package contact

import (
	"strings"
	"time"
)

// Contact is a client record created at first booking or by the coach.
// Email is the natural lookup key for marketing and the chat widget, but
// uniqueness is not enforced at storage level.
type Contact struct {
	ID        string    `firestore:"id" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	Email     string    `firestore:"email" json:"email"`
	Whatsapp  string    `firestore:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

// CreateContactInput represents input for creating a contact
type CreateContactInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Whatsapp string `json:"whatsapp,omitempty"`
}

func (in *CreateContactInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Whatsapp = strings.TrimSpace(in.Whatsapp)
}

// UpdateContactInput represents input for updating a contact
type UpdateContactInput struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Whatsapp *string `json:"whatsapp,omitempty"`
}

func (in *UpdateContactInput) Trim() {
	if in.Name != nil {
		*in.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		*in.Email = strings.TrimSpace(*in.Email)
	}
	if in.Whatsapp != nil {
		*in.Whatsapp = strings.TrimSpace(*in.Whatsapp)
	}
}
