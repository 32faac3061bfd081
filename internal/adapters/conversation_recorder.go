// Package adapters bridges bounded contexts. Each adapter implements a
// port declared by the consuming context and delegates to the owning
// context's service, so contexts never import each other directly.
package adapters

import (
	"context"

	"insurance_leads_backend/internal/chat/ports"
	"insurance_leads_backend/internal/intake/repository"
	intakeservice "insurance_leads_backend/internal/intake/service"
)

// ConversationRecorder lets the chat context persist exchanges through the
// intake context's conversation store.
type ConversationRecorder struct {
	intake *intakeservice.Service
}

// NewConversationRecorder creates the adapter.
func NewConversationRecorder(svc *intakeservice.Service) *ConversationRecorder {
	return &ConversationRecorder{intake: svc}
}

// RecordExchange persists one chat exchange for a stored customer.
func (a *ConversationRecorder) RecordExchange(ctx context.Context, customerID int64, sessionID, message, response string) error {
	return a.intake.StoreConversation(ctx, repository.ConversationEntry{
		CustomerID: customerID,
		SessionID:  sessionID,
		Message:    message,
		Response:   response,
	})
}

var _ ports.ConversationRecorder = (*ConversationRecorder)(nil)
