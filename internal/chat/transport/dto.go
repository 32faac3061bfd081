package transport

// InitializeRequest opens a chat session seeded with the lead's form data.
type InitializeRequest struct {
	SessionID string                 `json:"sessionId" validate:"required,min=1,max=128"`
	FormData  map[string]interface{} `json:"formData"`
}

// InitializeResponse carries the welcome message and the context echo the
// widget renders.
type InitializeResponse struct {
	Success   bool                   `json:"success"`
	SessionID string                 `json:"sessionId"`
	Message   string                 `json:"message"`
	Context   map[string]interface{} `json:"context"`
}

// MessageRequest sends one user message. FormData is optional and merges
// into the session context before the reply is generated.
type MessageRequest struct {
	SessionID string                 `json:"sessionId" validate:"required,min=1,max=128"`
	Message   string                 `json:"message" validate:"required"`
	FormData  map[string]interface{} `json:"formData"`
}

// MessageResponse carries the reply.
type MessageResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response"`
	SessionID string `json:"sessionId"`
}

// HistoryTurn is one exchange as rendered to clients.
type HistoryTurn struct {
	UserMessage string `json:"user_message"`
	BotResponse string `json:"bot_response"`
	Timestamp   string `json:"timestamp"`
}

// HistoryResponse returns a session's conversation so far.
type HistoryResponse struct {
	Success   bool          `json:"success"`
	SessionID string        `json:"sessionId"`
	History   []HistoryTurn `json:"history"`
}
