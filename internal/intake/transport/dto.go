package transport

// StoreCustomerRequest wraps the raw form payload. The inner map is kept
// loosely typed on purpose: field naming differs across form versions and
// is reconciled by the domain normalizer.
type StoreCustomerRequest struct {
	CustomerData map[string]interface{} `json:"customerData" validate:"required"`
}

// StoreCustomerResponse reports a successful intake.
type StoreCustomerResponse struct {
	Success    bool   `json:"success"`
	CustomerID int64  `json:"customerId"`
	Message    string `json:"message"`
}

// StoreConversationRequest persists one chat exchange.
type StoreConversationRequest struct {
	CustomerID  int64  `json:"customerId" validate:"required,min=1"`
	SessionID   string `json:"sessionId" validate:"required,min=1,max=128"`
	Message     string `json:"message" validate:"required"`
	Response    string `json:"response" validate:"required"`
	MessageType string `json:"messageType" validate:"omitempty,oneof=user bot system"`
}

// StoreConversationResponse acknowledges a stored exchange.
type StoreConversationResponse struct {
	Success bool `json:"success"`
}
