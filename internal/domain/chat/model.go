package chat

import (
	"strings"
	"time"
)

// Session modes. Mode and IsAIActive are stored independently: the toggle
// keeps them in sync, but direct session updates may set any combination,
// and all four are legal states.
const (
	ModeAI        = "ai"
	ModeHuman     = "human"
	ModeCommunity = "community"
)

// Message sender types
const (
	SenderUser   = "user"
	SenderCoach  = "coach"
	SenderAI     = "ai"
	SenderSystem = "system"
)

// Participant is a chat identity created on first smart entry. Identity
// is resolved heuristically (see match.go); email/whatsapp/name are hints,
// not unique keys.
type Participant struct {
	ID        string    `firestore:"id" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	Email     string    `firestore:"email,omitempty" json:"email,omitempty"`
	Whatsapp  string    `firestore:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// Session is a conversation thread. Deleted sessions stay in storage and
// are excluded from default listings.
type Session struct {
	ID             string     `firestore:"id" json:"id"`
	Mode           string     `firestore:"mode" json:"mode"`
	IsAIActive     bool       `firestore:"isAiActive" json:"is_ai_active"`
	ParticipantIDs []string   `firestore:"participantIds" json:"participant_ids"`
	LinkToken      string     `firestore:"linkToken,omitempty" json:"link_token,omitempty"`
	Deleted        bool       `firestore:"deleted" json:"deleted"`
	CreatedAt      time.Time  `firestore:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time  `firestore:"updatedAt" json:"updatedAt"`
	DeletedAt      *time.Time `firestore:"deletedAt,omitempty" json:"deletedAt,omitempty"`
}

// Message carries a snapshot of the session mode at send time, so mode
// flips after the fact do not rewrite history.
type Message struct {
	ID         string    `firestore:"id" json:"id"`
	SessionID  string    `firestore:"sessionId" json:"session_id"`
	SenderID   string    `firestore:"senderId,omitempty" json:"sender_id,omitempty"`
	SenderName string    `firestore:"senderName" json:"sender_name"`
	SenderType string    `firestore:"senderType" json:"sender_type"`
	Content    string    `firestore:"content" json:"content"`
	Mode       string    `firestore:"mode" json:"mode"`
	Deleted    bool      `firestore:"deleted" json:"deleted"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
}

// ShareLink binds a shareable token to a session so a URL can drop a
// visitor straight into an existing conversation.
type ShareLink struct {
	ID        string    `firestore:"id" json:"id"`
	Token     string    `firestore:"token" json:"token"`
	SessionID string    `firestore:"sessionId" json:"session_id"`
	Name      string    `firestore:"name,omitempty" json:"name,omitempty"`
	Mode      string    `firestore:"mode" json:"mode"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

// SmartEntryInput is the widget's entry payload
type SmartEntryInput struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Whatsapp  string `json:"whatsapp,omitempty"`
	LinkToken string `json:"link_token,omitempty"`
}

func (in *SmartEntryInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Whatsapp = strings.TrimSpace(in.Whatsapp)
	in.LinkToken = strings.TrimSpace(in.LinkToken)
}

// SmartEntryResult is returned to the widget after identity resolution
type SmartEntryResult struct {
	Participant *Participant `json:"participant"`
	Session     *Session     `json:"session"`
	IsReturning bool         `json:"is_returning"`
	ChatHistory []Message    `json:"chat_history"`
	Message     string       `json:"message"`
}

// SendMessageInput represents a visitor message on a session
type SendMessageInput struct {
	SessionID     string `json:"session_id"`
	ParticipantID string `json:"participant_id"`
	Message       string `json:"message"`
}

// SendMessageResult mirrors the widget contract: Response is empty when
// the assistant did not answer (human queue or community broadcast).
type SendMessageResult struct {
	Response string `json:"response,omitempty"`
	AIActive bool   `json:"ai_active"`
}

// CoachResponseInput represents a staff reply on a session
type CoachResponseInput struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	CoachName string `json:"coach_name,omitempty"`
}

// UpdateSessionInput represents a partial session update
type UpdateSessionInput struct {
	Mode       *string `json:"mode,omitempty"`
	IsAIActive *bool   `json:"is_ai_active,omitempty"`
}

// StartPrivateInput spins a private human thread off a community session
type StartPrivateInput struct {
	ParticipantID string `json:"participant_id"`
	TargetID      string `json:"target_id"`
}

// GenerateLinkInput represents input for creating a share link
type GenerateLinkInput struct {
	Name string `json:"name,omitempty"`
	Mode string `json:"mode,omitempty"`
}
