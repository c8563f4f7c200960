package discount

import (
	"strings"
)

// Discount types. "100%" makes the reservation free, "%" is a percentage
// off, "CHF" is a fixed amount off.
var ValidTypes = []string{"100%", "%", "CHF"}

func IsValidType(t string) bool {
	for _, v := range ValidTypes {
		if v == t {
			return true
		}
	}
	return false
}

// DiscountCode is a promo code document. An empty Courses allow-list means
// the code applies to every course and offer, not to none. MaxUses of 0
// means uncapped.
type DiscountCode struct {
	ID            string   `firestore:"id" json:"id"`
	Code          string   `firestore:"code" json:"code"`
	Type          string   `firestore:"type" json:"type"`
	Value         float64  `firestore:"value" json:"value"`
	AssignedEmail string   `firestore:"assignedEmail,omitempty" json:"assignedEmail,omitempty"`
	ExpiresAt     string   `firestore:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	Courses       []string `firestore:"courses" json:"courses"`
	MaxUses       int      `firestore:"maxUses,omitempty" json:"maxUses,omitempty"`
	Used          int      `firestore:"used" json:"used"`
	Active        bool     `firestore:"active" json:"active"`
}

// CreateDiscountCodeInput represents input for creating a discount code
type CreateDiscountCodeInput struct {
	Code          string   `json:"code"`
	Type          string   `json:"type"`
	Value         float64  `json:"value"`
	AssignedEmail string   `json:"assignedEmail,omitempty"`
	ExpiresAt     string   `json:"expiresAt,omitempty"`
	Courses       []string `json:"courses,omitempty"`
	MaxUses       int      `json:"maxUses,omitempty"`
}

func (in *CreateDiscountCodeInput) Trim() {
	in.Code = strings.TrimSpace(in.Code)
	in.Type = strings.TrimSpace(in.Type)
	in.AssignedEmail = strings.TrimSpace(in.AssignedEmail)
	in.ExpiresAt = strings.TrimSpace(in.ExpiresAt)
}

// UpdateDiscountCodeInput lists the legally-updatable fields. Arbitrary
// key/value payloads are deliberately not accepted here.
type UpdateDiscountCodeInput struct {
	Code          *string   `json:"code,omitempty"`
	Type          *string   `json:"type,omitempty"`
	Value         *float64  `json:"value,omitempty"`
	AssignedEmail *string   `json:"assignedEmail,omitempty"`
	ExpiresAt     *string   `json:"expiresAt,omitempty"`
	Courses       *[]string `json:"courses,omitempty"`
	MaxUses       *int      `json:"maxUses,omitempty"`
	Active        *bool     `json:"active,omitempty"`
}

func (in *UpdateDiscountCodeInput) Trim() {
	if in.Code != nil {
		*in.Code = strings.TrimSpace(*in.Code)
	}
	if in.Type != nil {
		*in.Type = strings.TrimSpace(*in.Type)
	}
	if in.AssignedEmail != nil {
		*in.AssignedEmail = strings.TrimSpace(*in.AssignedEmail)
	}
	if in.ExpiresAt != nil {
		*in.ExpiresAt = strings.TrimSpace(*in.ExpiresAt)
	}
}

// ValidateInput is a validation request from the booking flow
type ValidateInput struct {
	Code     string `json:"code"`
	Email    string `json:"email"`
	CourseID string `json:"courseId"`
}

// ValidateResult is what the booking flow receives. Invalid codes are not
// errors; the message is shown to the user as-is.
type ValidateResult struct {
	Valid   bool          `json:"valid"`
	Message string        `json:"message,omitempty"`
	Code    *DiscountCode `json:"code,omitempty"`
}
