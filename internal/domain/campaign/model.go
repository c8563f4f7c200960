package campaign

import (
	"strings"
	"time"
)

// Campaign statuses; transitions only move forward.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusSending   = "sending"
	StatusCompleted = "completed"
)

// Result row statuses.
const (
	ResultPending = "pending"
	ResultSent    = "sent"
)

// Target types.
const (
	TargetAll      = "all"
	TargetSelected = "selected"
)

// Channels flags which delivery channels a campaign uses.
type Channels struct {
	Whatsapp  bool `firestore:"whatsapp" json:"whatsapp"`
	Email     bool `firestore:"email" json:"email"`
	Instagram bool `firestore:"instagram" json:"instagram"`
}

// Enabled returns the enabled channel names in a fixed order
func (c Channels) Enabled() []string {
	var out []string
	if c.Whatsapp {
		out = append(out, "whatsapp")
	}
	if c.Email {
		out = append(out, "email")
	}
	if c.Instagram {
		out = append(out, "instagram")
	}
	return out
}

// Result is one (contact, channel) delivery row, snapshotted at launch.
// Later contact edits do not retroactively alter these rows.
type Result struct {
	ContactID    string     `firestore:"contactId" json:"contactId"`
	ContactName  string     `firestore:"contactName" json:"contactName"`
	ContactEmail string     `firestore:"contactEmail" json:"contactEmail"`
	ContactPhone string     `firestore:"contactPhone" json:"contactPhone"`
	Channel      string     `firestore:"channel" json:"channel"`
	Status       string     `firestore:"status" json:"status"`
	SentAt       *time.Time `firestore:"sentAt,omitempty" json:"sentAt"`
}

// Campaign is a marketing blast. The external sender marks each result
// row sent individually; completion is detected by a full scan.
type Campaign struct {
	ID          string     `firestore:"id" json:"id"`
	Name        string     `firestore:"name" json:"name"`
	Message     string     `firestore:"message" json:"message"`
	MediaURL    string     `firestore:"mediaUrl,omitempty" json:"mediaUrl,omitempty"`
	Channels    Channels   `firestore:"channels" json:"channels"`
	TargetType  string     `firestore:"targetType" json:"targetType"`
	ContactIDs  []string   `firestore:"contactIds,omitempty" json:"contactIds,omitempty"`
	Status      string     `firestore:"status" json:"status"`
	Results     []Result   `firestore:"results" json:"results"`
	ScheduledAt *time.Time `firestore:"scheduledAt,omitempty" json:"scheduledAt,omitempty"`
	LaunchedAt  *time.Time `firestore:"launchedAt,omitempty" json:"launchedAt,omitempty"`
	CreatedAt   time.Time  `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `firestore:"updatedAt" json:"updatedAt"`
}

// CreateCampaignInput represents input for creating a campaign
type CreateCampaignInput struct {
	Name        string     `json:"name"`
	Message     string     `json:"message"`
	MediaURL    string     `json:"mediaUrl,omitempty"`
	Channels    Channels   `json:"channels"`
	TargetType  string     `json:"targetType,omitempty"`
	ContactIDs  []string   `json:"contactIds,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}

func (in *CreateCampaignInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Message = strings.TrimSpace(in.Message)
	in.MediaURL = strings.TrimSpace(in.MediaURL)
	in.TargetType = strings.TrimSpace(in.TargetType)
}

// UpdateCampaignInput represents input for updating a draft campaign
type UpdateCampaignInput struct {
	Name        *string    `json:"name,omitempty"`
	Message     *string    `json:"message,omitempty"`
	MediaURL    *string    `json:"mediaUrl,omitempty"`
	Channels    *Channels  `json:"channels,omitempty"`
	TargetType  *string    `json:"targetType,omitempty"`
	ContactIDs  *[]string  `json:"contactIds,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}

// MarkSentInput identifies one result row
type MarkSentInput struct {
	ContactID string `json:"contactId"`
	Channel   string `json:"channel"`
}
