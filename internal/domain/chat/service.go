package chat

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo *Repo
	ai   *AIClient
}

func NewService(repo *Repo, ai *AIClient) *Service {
	return &Service{repo: repo, ai: ai}
}

// SmartEntry resolves a visitor to a participant and a session. Matching
// is best-effort (see Match); recognized participants get backfilled
// contact fields and their recent history, new visitors get a fresh
// ai-mode session.
func (s *Service) SmartEntry(ctx context.Context, in SmartEntryInput) (*SmartEntryResult, error) {
	in.Trim()
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}

	candidates, err := s.repo.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}

	participant := Match(candidates, in.Name, in.Email, in.Whatsapp)
	isReturning := participant != nil

	now := time.Now().UTC()
	if participant == nil {
		participant, err = s.repo.CreateParticipant(ctx, Participant{
			Name:      in.Name,
			Email:     in.Email,
			Whatsapp:  in.Whatsapp,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return nil, err
		}
	} else if updates := Backfill(participant, in.Email, in.Whatsapp); len(updates) > 0 {
		updates["updatedAt"] = now
		participant, err = s.repo.UpdateParticipant(ctx, participant.ID, updates)
		if err != nil {
			return nil, err
		}
	}

	session, err := s.resolveSession(ctx, participant.ID, in.LinkToken)
	if err != nil {
		return nil, err
	}

	history := []Message{}
	if isReturning {
		history, err = s.repo.ListMessages(ctx, session.ID, 50)
		if err != nil {
			return nil, err
		}
	}

	greeting := fmt.Sprintf("Enchanté %s ! 👋 Comment puis-je t'aider ?", participant.Name)
	if isReturning {
		greeting = fmt.Sprintf("Ravi de te revoir %s ! 👋 On reprend où on s'était arrêtés.", participant.Name)
	}

	return &SmartEntryResult{
		Participant: participant,
		Session:     session,
		IsReturning: isReturning,
		ChatHistory: history,
		Message:     greeting,
	}, nil
}

func (s *Service) resolveSession(ctx context.Context, participantID, linkToken string) (*Session, error) {
	if linkToken != "" {
		link, err := s.repo.GetLinkByToken(ctx, linkToken)
		if err == nil {
			session, err := s.repo.GetSession(ctx, link.SessionID)
			if err != nil {
				return nil, err
			}
			if err := s.repo.AddSessionParticipant(ctx, session.ID, participantID); err != nil {
				return nil, err
			}
			return s.repo.GetSession(ctx, session.ID)
		}
		if !IsErrNotFound(err) {
			return nil, err
		}
		// unknown token: fall through to the participant's own session
	}

	session, err := s.repo.LatestSessionForParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return session, nil
	}

	now := time.Now().UTC()
	return s.repo.CreateSession(ctx, Session{
		Mode:           ModeAI,
		IsAIActive:     true,
		ParticipantIDs: []string{participantID},
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}

// SendMessage stores a visitor message and, when the session is in ai
// mode with the assistant active, relays it to the AI provider. In human
// mode the assistant stays silent and a staff notification is fired off
// without awaiting delivery.
func (s *Service) SendMessage(ctx context.Context, in SendMessageInput) (*SendMessageResult, error) {
	in.Message = strings.TrimSpace(in.Message)
	if in.SessionID == "" || in.Message == "" {
		return nil, fmt.Errorf("%w: session_id and message are required", ErrBadRequest)
	}

	session, err := s.repo.GetSession(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}

	senderName := ""
	if in.ParticipantID != "" {
		if p, err := s.repo.GetParticipant(ctx, in.ParticipantID); err == nil {
			senderName = p.Name
		}
	}

	now := time.Now().UTC()
	if _, err := s.repo.CreateMessage(ctx, Message{
		SessionID:  session.ID,
		SenderID:   in.ParticipantID,
		SenderName: senderName,
		SenderType: SenderUser,
		Content:    in.Message,
		Mode:       session.Mode,
		CreatedAt:  now,
	}); err != nil {
		return nil, err
	}

	aiActive := session.Mode == ModeAI && session.IsAIActive

	if session.Mode == ModeHuman {
		s.notifyCoach(session.ID, senderName, in.Message)
	}

	if !aiActive {
		return &SendMessageResult{AIActive: false}, nil
	}

	reply, err := s.ai.Respond(ctx, in.Message)
	if err != nil {
		if IsErrRateLimited(err) {
			return nil, err
		}
		// provider outage degrades to a queued message
		log.Printf("chat: ai relay failed: %v", err)
		return &SendMessageResult{AIActive: false}, nil
	}

	if _, err := s.repo.CreateMessage(ctx, Message{
		SessionID:  session.ID,
		SenderName: "Coach IA",
		SenderType: SenderAI,
		Content:    reply,
		Mode:       session.Mode,
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		return nil, err
	}

	return &SendMessageResult{Response: reply, AIActive: true}, nil
}

// notifyCoach fires the staff alert without blocking the request. The
// notification document is the handoff point; delivery is external.
func (s *Service) notifyCoach(sessionID, senderName, content string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		preview := content
		if len(preview) > 140 {
			preview = preview[:140]
		}
		err := s.repo.CreateNotification(ctx, map[string]interface{}{
			"type":       "chat_human_message",
			"sessionId":  sessionID,
			"senderName": senderName,
			"preview":    preview,
			"createdAt":  time.Now().UTC(),
		})
		if err != nil {
			log.Printf("chat: coach notification failed: %v", err)
		}
	}()
}

// CoachResponse stores a staff reply on a session
func (s *Service) CoachResponse(ctx context.Context, in CoachResponseInput) (*Message, error) {
	in.Message = strings.TrimSpace(in.Message)
	if in.SessionID == "" || in.Message == "" {
		return nil, fmt.Errorf("%w: session_id and message are required", ErrBadRequest)
	}

	session, err := s.repo.GetSession(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}

	name := in.CoachName
	if name == "" {
		name = "Coach"
	}

	return s.repo.CreateMessage(ctx, Message{
		SessionID:  session.ID,
		SenderName: name,
		SenderType: SenderCoach,
		Content:    in.Message,
		Mode:       session.Mode,
		CreatedAt:  time.Now().UTC(),
	})
}

// ListSessions lists non-deleted sessions for the coach inbox
func (s *Service) ListSessions(ctx context.Context) ([]Session, error) {
	return s.repo.ListSessions(ctx)
}

// ListMessages returns a session's recent history
func (s *Service) ListMessages(ctx context.Context, sessionID string) ([]Message, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionId is required", ErrBadRequest)
	}
	if _, err := s.repo.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, sessionID, 50)
}

// UpdateSession applies a partial session update. Mode and is_ai_active
// move independently; no transition table is enforced.
func (s *Service) UpdateSession(ctx context.Context, sessionID string, in UpdateSessionInput) (*Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionId is required", ErrBadRequest)
	}
	if _, err := s.repo.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updatedAt": time.Now().UTC(),
	}
	if in.Mode != nil {
		switch *in.Mode {
		case ModeAI, ModeHuman, ModeCommunity:
			updates["mode"] = *in.Mode
		default:
			return nil, fmt.Errorf("%w: mode must be ai, human or community", ErrBadRequest)
		}
	}
	if in.IsAIActive != nil {
		updates["isAiActive"] = *in.IsAIActive
	}

	return s.repo.UpdateSession(ctx, sessionID, updates)
}

// ToggleAI flips is_ai_active and realigns mode with it
func (s *Service) ToggleAI(ctx context.Context, sessionID string) (*Session, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	active := !session.IsAIActive
	mode := ModeHuman
	if active {
		mode = ModeAI
	}

	return s.repo.UpdateSession(ctx, sessionID, map[string]interface{}{
		"isAiActive": active,
		"mode":       mode,
		"updatedAt":  time.Now().UTC(),
	})
}

// DeleteSession soft-deletes a session; its messages stay in storage
func (s *Service) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := s.repo.GetSession(ctx, sessionID); err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err := s.repo.UpdateSession(ctx, sessionID, map[string]interface{}{
		"deleted":   true,
		"deletedAt": now,
		"updatedAt": now,
	})
	return err
}

// DeleteMessage soft-deletes a message
func (s *Service) DeleteMessage(ctx context.Context, messageID string) error {
	if messageID == "" {
		return fmt.Errorf("%w: messageId is required", ErrBadRequest)
	}
	return s.repo.SoftDeleteMessage(ctx, messageID)
}

// StartPrivate spins a private human thread off between two participants
func (s *Service) StartPrivate(ctx context.Context, in StartPrivateInput) (*Session, error) {
	if in.ParticipantID == "" || in.TargetID == "" {
		return nil, fmt.Errorf("%w: participant_id and target_id are required", ErrBadRequest)
	}
	if in.ParticipantID == in.TargetID {
		return nil, fmt.Errorf("%w: cannot start a private session with yourself", ErrBadRequest)
	}

	if _, err := s.repo.GetParticipant(ctx, in.ParticipantID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetParticipant(ctx, in.TargetID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.CreateSession(ctx, Session{
		Mode:           ModeHuman,
		IsAIActive:     false,
		ParticipantIDs: []string{in.ParticipantID, in.TargetID},
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}

// GenerateLink creates a share link and the session it points at
func (s *Service) GenerateLink(ctx context.Context, in GenerateLinkInput) (*ShareLink, error) {
	mode := in.Mode
	if mode == "" {
		mode = ModeCommunity
	}
	if mode != ModeAI && mode != ModeHuman && mode != ModeCommunity {
		return nil, fmt.Errorf("%w: mode must be ai, human or community", ErrBadRequest)
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	now := time.Now().UTC()

	session, err := s.repo.CreateSession(ctx, Session{
		Mode:       mode,
		IsAIActive: mode == ModeAI,
		LinkToken:  token,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	return s.repo.CreateLink(ctx, ShareLink{
		Token:     token,
		SessionID: session.ID,
		Name:      strings.TrimSpace(in.Name),
		Mode:      mode,
		CreatedAt: now,
	})
}

// ListLinks lists share links, newest first
func (s *Service) ListLinks(ctx context.Context) ([]ShareLink, error) {
	return s.repo.ListLinks(ctx)
}
