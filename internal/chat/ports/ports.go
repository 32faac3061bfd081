// Package ports declares the chat context's outbound dependencies. Other
// contexts satisfy these through adapters so chat never imports them
// directly.
package ports

import "context"

// ConversationRecorder persists chat exchanges for leads that already have
// a stored customer record.
type ConversationRecorder interface {
	RecordExchange(ctx context.Context, customerID int64, sessionID, message, response string) error
}
