// Package session implements the chat session registry. Sessions carry the
// lead's form context and the running conversation history, keyed by the
// client-chosen session id.
package session

import (
	"context"
	"time"
)

// Turn is one user message and the reply it received.
type Turn struct {
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Timestamp   time.Time `json:"timestamp"`
}

// Session is the registry entry for one chat.
type Session struct {
	ID        string                 `json:"id"`
	Context   map[string]interface{} `json:"context"`
	History   []Turn                 `json:"history"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// Store is the session registry. Implementations must serialize concurrent
// Update calls on the same session id and expire entries after their TTL.
type Store interface {
	// Put creates or replaces a session.
	Put(ctx context.Context, sess Session) error
	// Get returns a copy of the session, or a not-found error.
	Get(ctx context.Context, id string) (Session, error)
	// Update applies fn to the session under a per-session lock. If fn
	// returns an error the session is left unchanged.
	Update(ctx context.Context, id string, fn func(*Session) error) error
	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}
