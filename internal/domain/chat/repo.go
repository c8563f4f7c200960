package chat

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) participants() *firestore.CollectionRef {
	return r.fs.Collection("chat_participants")
}

func (r *Repo) sessions() *firestore.CollectionRef {
	return r.fs.Collection("chat_sessions")
}

func (r *Repo) messages() *firestore.CollectionRef {
	return r.fs.Collection("chat_messages")
}

func (r *Repo) links() *firestore.CollectionRef {
	return r.fs.Collection("chat_links")
}

// --- participants ---

func (r *Repo) CreateParticipant(ctx context.Context, p Participant) (*Participant, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := r.participants().Doc(p.ID).Set(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}
	return &p, nil
}

func (r *Repo) GetParticipant(ctx context.Context, participantID string) (*Participant, error) {
	doc, err := r.participants().Doc(participantID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: participant not found", ErrNotFound)
	}

	var p Participant
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to parse participant: %w", err)
	}
	p.ID = doc.Ref.ID
	return &p, nil
}

func (r *Repo) UpdateParticipant(ctx context.Context, participantID string, updates map[string]interface{}) (*Participant, error) {
	_, err := r.participants().Doc(participantID).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to update participant: %w", err)
	}
	return r.GetParticipant(ctx, participantID)
}

// ListParticipants loads the candidate set for identity matching. The
// store has no case-insensitive or substring query, so matching happens
// in code over this scan.
func (r *Repo) ListParticipants(ctx context.Context) ([]Participant, error) {
	iter := r.participants().Limit(1000).Documents(ctx)
	defer iter.Stop()

	var out []Participant
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate participants: %w", err)
		}
		var p Participant
		if err := doc.DataTo(&p); err != nil {
			continue
		}
		p.ID = doc.Ref.ID
		out = append(out, p)
	}
	if out == nil {
		out = []Participant{}
	}
	return out, nil
}

// --- sessions ---

func (r *Repo) CreateSession(ctx context.Context, s Session) (*Session, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.ParticipantIDs == nil {
		s.ParticipantIDs = []string{}
	}
	_, err := r.sessions().Doc(s.ID).Set(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &s, nil
}

func (r *Repo) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	doc, err := r.sessions().Doc(sessionID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: session not found", ErrNotFound)
	}

	var s Session
	if err := doc.DataTo(&s); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	s.ID = doc.Ref.ID
	return &s, nil
}

func (r *Repo) UpdateSession(ctx context.Context, sessionID string, updates map[string]interface{}) (*Session, error) {
	_, err := r.sessions().Doc(sessionID).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return r.GetSession(ctx, sessionID)
}

// AddSessionParticipant adds a participant id to the session without
// duplicating an existing entry.
func (r *Repo) AddSessionParticipant(ctx context.Context, sessionID, participantID string) error {
	_, err := r.sessions().Doc(sessionID).Update(ctx, []firestore.Update{
		{Path: "participantIds", Value: firestore.ArrayUnion(participantID)},
	})
	if err != nil {
		return fmt.Errorf("failed to add session participant: %w", err)
	}
	return nil
}

// LatestSessionForParticipant returns the most recent non-deleted session
// the participant belongs to, or nil when none exists. The deleted filter
// and ordering run in code to keep the query on a single array-contains
// clause.
func (r *Repo) LatestSessionForParticipant(ctx context.Context, participantID string) (*Session, error) {
	iter := r.sessions().Where("participantIds", "array-contains", participantID).Documents(ctx)
	defer iter.Stop()

	var sessions []Session
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate sessions: %w", err)
		}
		var s Session
		if err := doc.DataTo(&s); err != nil {
			continue
		}
		if s.Deleted {
			continue
		}
		s.ID = doc.Ref.ID
		sessions = append(sessions, s)
	}
	if len(sessions) == 0 {
		return nil, nil
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return &sessions[0], nil
}

// ListSessions lists non-deleted sessions, newest first
func (r *Repo) ListSessions(ctx context.Context) ([]Session, error) {
	iter := r.sessions().Where("deleted", "==", false).OrderBy("createdAt", firestore.Desc).Limit(200).Documents(ctx)
	defer iter.Stop()

	var out []Session
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate sessions: %w", err)
		}
		var s Session
		if err := doc.DataTo(&s); err != nil {
			continue
		}
		s.ID = doc.Ref.ID
		out = append(out, s)
	}
	if out == nil {
		out = []Session{}
	}
	return out, nil
}

// --- messages ---

func (r *Repo) CreateMessage(ctx context.Context, m Message) (*Message, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	_, err := r.messages().Doc(m.ID).Set(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return &m, nil
}

// ListMessages returns the most recent non-deleted messages for a
// session in chronological order, capped at limit.
func (r *Repo) ListMessages(ctx context.Context, sessionID string, limit int) ([]Message, error) {
	if limit <= 0 {
		limit = 50
	}

	iter := r.messages().
		Where("sessionId", "==", sessionID).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit * 2).
		Documents(ctx)
	defer iter.Stop()

	var out []Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate messages: %w", err)
		}
		var m Message
		if err := doc.DataTo(&m); err != nil {
			continue
		}
		if m.Deleted {
			continue
		}
		m.ID = doc.Ref.ID
		out = append(out, m)
		if len(out) >= limit {
			break
		}
	}

	// newest-first from the query; the widget wants chronological
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if out == nil {
		out = []Message{}
	}
	return out, nil
}

// SoftDeleteMessage flags a message deleted without removing it
func (r *Repo) SoftDeleteMessage(ctx context.Context, messageID string) error {
	_, err := r.messages().Doc(messageID).Set(ctx, map[string]interface{}{
		"deleted": true,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

// --- share links ---

func (r *Repo) CreateLink(ctx context.Context, l ShareLink) (*ShareLink, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	_, err := r.links().Doc(l.ID).Set(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}
	return &l, nil
}

func (r *Repo) GetLinkByToken(ctx context.Context, token string) (*ShareLink, error) {
	iter := r.links().Where("token", "==", token).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("%w: link not found", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up link: %w", err)
	}

	var l ShareLink
	if err := doc.DataTo(&l); err != nil {
		return nil, fmt.Errorf("failed to parse link: %w", err)
	}
	l.ID = doc.Ref.ID
	return &l, nil
}

func (r *Repo) ListLinks(ctx context.Context) ([]ShareLink, error) {
	iter := r.links().OrderBy("createdAt", firestore.Desc).Limit(200).Documents(ctx)
	defer iter.Stop()

	var out []ShareLink
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate links: %w", err)
		}
		var l ShareLink
		if err := doc.DataTo(&l); err != nil {
			continue
		}
		l.ID = doc.Ref.ID
		out = append(out, l)
	}
	if out == nil {
		out = []ShareLink{}
	}
	return out, nil
}

// --- notifications ---

// CreateNotification records a staff alert document. Delivery (email,
// push) is handled outside this service; the document is the queue.
func (r *Repo) CreateNotification(ctx context.Context, data map[string]interface{}) error {
	id := uuid.NewString()
	data["id"] = id
	_, err := r.fs.Collection("notifications").Doc(id).Set(ctx, data)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}
