package repository

import (
	"context"
	"time"

	"insurance_leads_backend/internal/intake/domain"
)

// Customer is a persisted lead row.
type Customer struct {
	CustomerID        int64    `json:"customer_id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Age               *int     `json:"age,omitempty"`
	Gender            *string  `json:"gender,omitempty"`
	ZipCode           string   `json:"zip_code"`
	InsuranceType     string   `json:"insurance_type"`
	VehicleNumber     *string  `json:"vehicle_number,omitempty"`
	VehicleModel      *string  `json:"vehicle_model,omitempty"`
	VehicleYear       *string  `json:"vehicle_year,omitempty"`
	MedicalHistory    *string  `json:"medical_history,omitempty"`
	CoverageAmount    *float64 `json:"coverage_amount,omitempty"`
	Relationship      *string  `json:"relationship,omitempty"`
	MonthlyInvestment *float64 `json:"monthly_investment,omitempty"`
	InvestmentGoal    *string  `json:"investment_goal,omitempty"`
	CurrentProvider   *string  `json:"current_provider,omitempty"`
	CreatedAt         string   `json:"created_at"`
}

// CreateCustomerParams carries a validated canonical record into storage.
type CreateCustomerParams struct {
	Record domain.Record
	Type   domain.InsuranceType
}

// ConversationEntry is one stored chat exchange tied to a customer.
type ConversationEntry struct {
	CustomerID  int64
	SessionID   string
	Message     string
	Response    string
	MessageType string
	CreatedAt   time.Time
}

// Repository defines intake storage operations.
type Repository interface {
	CreateCustomer(ctx context.Context, params CreateCustomerParams) (int64, error)
	GetCustomerByID(ctx context.Context, customerID int64) (Customer, error)
	CreateConversation(ctx context.Context, entry ConversationEntry) error
}
