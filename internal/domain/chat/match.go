package chat

import (
	"strings"

	"afroboost/backend/internal/utils"
)

// Match resolves a visitor against known participants. Checks run in
// order: case-insensitive exact email, normalized whatsapp substring,
// accent-folded exact name. The first hit wins. This is deliberately
// loose: two people sharing a first name will collide, which the widget
// accepts in exchange for a zero-password entry flow.
func Match(candidates []Participant, name, email, whatsapp string) *Participant {
	email = strings.TrimSpace(email)
	if email != "" {
		for i := range candidates {
			if candidates[i].Email != "" && strings.EqualFold(candidates[i].Email, email) {
				return &candidates[i]
			}
		}
	}

	if digits := utils.NormalizePhone(whatsapp); len(digits) >= 6 {
		for i := range candidates {
			stored := utils.NormalizePhone(candidates[i].Whatsapp)
			if stored == "" {
				continue
			}
			if strings.Contains(stored, digits) || strings.Contains(digits, stored) {
				return &candidates[i]
			}
		}
	}

	if folded := utils.NormalizeNameLower(name); folded != "" {
		for i := range candidates {
			if utils.NormalizeNameLower(candidates[i].Name) == folded {
				return &candidates[i]
			}
		}
	}

	return nil
}

// Backfill returns the participant fields to fill from the current
// request. Only empty stored fields are eligible: a recognized
// participant never has existing contact data overwritten.
func Backfill(p *Participant, email, whatsapp string) map[string]interface{} {
	updates := map[string]interface{}{}
	email = strings.TrimSpace(email)
	whatsapp = strings.TrimSpace(whatsapp)

	if p.Email == "" && email != "" {
		updates["email"] = email
	}
	if p.Whatsapp == "" && whatsapp != "" {
		updates["whatsapp"] = whatsapp
	}
	return updates
}
