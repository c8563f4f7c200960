package discount

import (
	"log"
	"strings"
	"time"

	"afroboost/backend/internal/utils"
)

// User-facing validation messages, surfaced verbatim to the booking widget.
const (
	msgUnknown      = "Code inconnu ou invalide"
	msgExpired      = "Code promo expiré"
	msgExhausted    = "Code promo épuisé (nombre max d'utilisations atteint)"
	msgWrongCourse  = "Code non applicable à ce cours"
	msgWrongAccount = "Code réservé à un autre compte"
)

// NormalizeCode trims and uppercases a submitted code
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Evaluate runs the ordered validation checks for one code against one
// request. The first failing check wins. The caller is responsible for
// looking the code up; a zero-value DiscountCode fails the first check.
//
// Consuming a use is a separate call (Service.Use). Two concurrent
// validations can both pass the maxUses check before either increments the
// counter; that two-phase contract is kept on purpose.
func Evaluate(dc DiscountCode, in ValidateInput, now time.Time) ValidateResult {
	if !dc.Active || !strings.EqualFold(strings.TrimSpace(dc.Code), NormalizeCode(in.Code)) {
		return ValidateResult{Valid: false, Message: msgUnknown}
	}

	if dc.ExpiresAt != "" {
		expiry, err := parseExpiry(dc.ExpiresAt)
		if err != nil {
			// Unparseable expiry is treated as "not expired" rather than
			// blocking the booking.
			log.Printf("[discount] unparseable expiresAt %q on code %s: %v", dc.ExpiresAt, dc.ID, err)
		} else if now.After(expiry) {
			return ValidateResult{Valid: false, Message: msgExpired}
		}
	}

	if dc.MaxUses > 0 && dc.Used >= dc.MaxUses {
		return ValidateResult{Valid: false, Message: msgExhausted}
	}

	// Empty allow-list = applies to all courses and offers.
	if len(dc.Courses) > 0 && !contains(dc.Courses, in.CourseID) {
		return ValidateResult{Valid: false, Message: msgWrongCourse}
	}

	if assigned := strings.TrimSpace(dc.AssignedEmail); assigned != "" {
		if !strings.EqualFold(assigned, strings.TrimSpace(in.Email)) {
			return ValidateResult{Valid: false, Message: msgWrongAccount}
		}
	}

	return ValidateResult{Valid: true, Code: &dc}
}

// parseExpiry parses an expiry stored as a date or datetime string. A
// date-only value expires at the end of that day, UTC.
func parseExpiry(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "T") && !strings.Contains(s, " ") {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, err
		}
		return d.Add(23*time.Hour + 59*time.Minute + 59*time.Second), nil
	}
	return utils.ParseTime(s)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
