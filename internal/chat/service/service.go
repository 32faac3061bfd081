// Package service orchestrates the lead chat: session lifecycle, reply
// generation, and best-effort conversation persistence.
package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"insurance_leads_backend/internal/chat/ports"
	"insurance_leads_backend/internal/chat/responder"
	"insurance_leads_backend/internal/chat/session"
	"insurance_leads_backend/platform/apperr"
	"insurance_leads_backend/platform/logger"
)

// Replier generates a reply from the session state and the new message.
// The Gemini assistant implements it; a nil Replier means templates only.
type Replier interface {
	Reply(ctx context.Context, sess session.Session, message string) (string, error)
}

// InitResult is returned when a chat is initialized.
type InitResult struct {
	SessionID string
	Message   string
	Context   map[string]interface{}
}

// Service implements the chat operations.
type Service struct {
	store    session.Store
	replier  Replier
	recorder ports.ConversationRecorder
	log      *logger.Logger
}

// New creates the chat service. replier and recorder may be nil.
func New(store session.Store, replier Replier, recorder ports.ConversationRecorder, log *logger.Logger) *Service {
	return &Service{
		store:    store,
		replier:  replier,
		recorder: recorder,
		log:      log,
	}
}

// Initialize registers a session with the lead's form context and returns
// the welcome message. Re-initializing an existing id resets it.
func (s *Service) Initialize(ctx context.Context, sessionID string, formData map[string]interface{}) (InitResult, error) {
	if strings.TrimSpace(sessionID) == "" {
		return InitResult{}, apperr.Validation("sessionId", "session id is required")
	}
	if formData == nil {
		formData = map[string]interface{}{}
	}

	now := time.Now()
	err := s.store.Put(ctx, session.Session{
		ID:        sessionID,
		Context:   formData,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return InitResult{}, err
	}

	profile := responder.ProfileFromContext(formData)
	s.log.Info("chat initialized", "session_id", sessionID, "insurance_type", profile.InsuranceType)

	return InitResult{
		SessionID: sessionID,
		Message:   responder.Welcome(profile),
		Context: map[string]interface{}{
			"insurance_type": profile.InsuranceType,
			"customer_name":  profile.Name,
		},
	}, nil
}

// AppendTurn answers one message. Fresh form data is merged into the
// session context last-write-wins before the reply is generated, and the
// exchange is appended to the history. The session mutation is atomic:
// concurrent messages on the same session serialize.
func (s *Service) AppendTurn(ctx context.Context, sessionID, message string, formData map[string]interface{}) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", apperr.Validation("message", "message is required")
	}

	var reply string
	err := s.store.Update(ctx, sessionID, func(sess *session.Session) error {
		if sess.Context == nil {
			sess.Context = map[string]interface{}{}
		}
		for k, v := range formData {
			sess.Context[k] = v
		}

		reply = s.generateReply(ctx, *sess, message)
		sess.History = append(sess.History, session.Turn{
			UserMessage: message,
			BotResponse: reply,
			Timestamp:   time.Now(),
		})
		return nil
	})
	if err != nil {
		return "", err
	}

	s.recordExchange(ctx, sessionID, message, reply)
	return reply, nil
}

// History returns the session's conversation so far.
func (s *Service) History(ctx context.Context, sessionID string) (session.Session, error) {
	return s.store.Get(ctx, sessionID)
}

// End removes a session from the registry.
func (s *Service) End(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

func (s *Service) generateReply(ctx context.Context, sess session.Session, message string) string {
	if s.replier != nil {
		reply, err := s.replier.Reply(ctx, sess, message)
		if err == nil {
			return reply
		}
		s.log.AssistantFallback(sess.ID, err)
	}
	return responder.Respond(message, responder.ProfileFromContext(sess.Context))
}

// recordExchange persists the turn when the session knows its customer id.
// Failures are logged and swallowed: the chat reply already happened.
func (s *Service) recordExchange(ctx context.Context, sessionID, message, reply string) {
	if s.recorder == nil {
		return
	}

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return
	}
	customerID := customerIDFromContext(sess.Context)
	if customerID <= 0 {
		return
	}

	if err := s.recorder.RecordExchange(ctx, customerID, sessionID, message, reply); err != nil {
		s.log.Warn("conversation not persisted", "session_id", sessionID, "error", err.Error())
	}
}

func customerIDFromContext(ctx map[string]interface{}) int64 {
	for key, value := range ctx {
		folded := strings.ReplaceAll(strings.ToLower(key), "_", "")
		if folded != "customerid" {
			continue
		}
		switch typed := value.(type) {
		case float64:
			return int64(typed)
		case int:
			return int64(typed)
		case int64:
			return typed
		case string:
			parsed, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
			if err == nil {
				return parsed
			}
		}
	}
	return 0
}
