package campaign

import (
	"time"

	"afroboost/backend/internal/domain/contact"
)

// BuildResults expands the audience into one pending row per contact and
// enabled channel. The rows are a snapshot: contact edits after launch do
// not flow back into them.
func BuildResults(contacts []contact.Contact, channels Channels) []Result {
	enabled := channels.Enabled()
	results := make([]Result, 0, len(contacts)*len(enabled))
	for _, c := range contacts {
		for _, ch := range enabled {
			results = append(results, Result{
				ContactID:    c.ID,
				ContactName:  c.Name,
				ContactEmail: c.Email,
				ContactPhone: c.Whatsapp,
				Channel:      ch,
				Status:       ResultPending,
			})
		}
	}
	return results
}

// MarkSent flips the matching (contactId, channel) row to sent. Returns
// false when no matching row exists.
func MarkSent(results []Result, contactID, channel string, at time.Time) bool {
	for i := range results {
		if results[i].ContactID == contactID && results[i].Channel == channel {
			results[i].Status = ResultSent
			sentAt := at
			results[i].SentAt = &sentAt
			return true
		}
	}
	return false
}

// AllSent reports whether every result row has been sent. A full scan per
// mark call; fine at the hundreds-of-rows scale campaigns run at.
func AllSent(results []Result) bool {
	if len(results) == 0 {
		return false
	}
	for _, r := range results {
		if r.Status != ResultSent {
			return false
		}
	}
	return true
}
