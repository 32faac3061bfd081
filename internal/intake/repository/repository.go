package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"insurance_leads_backend/platform/apperr"
)

const customerNotFoundMessage = "customer not found"

// Repo implements the intake repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new intake repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// CreateCustomer inserts a validated record and returns the generated id.
func (r *Repo) CreateCustomer(ctx context.Context, params CreateCustomerParams) (int64, error) {
	query := `
		INSERT INTO customers (
			name, email, phone, age, gender, zip_code, insurance_type,
			vehicle_number, vehicle_model, vehicle_year, medical_history,
			coverage_amount, relationship, monthly_investment, investment_goal,
			current_provider
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING customer_id`

	rec := params.Record
	var customerID int64
	if err := r.pool.QueryRow(ctx, query,
		rec.Name, rec.Email, rec.Phone, rec.Age, nullable(rec.Gender),
		rec.ZipCode, string(params.Type),
		nullable(rec.VehicleNumber), nullable(rec.VehicleModel), nullable(rec.VehicleYear),
		nullable(rec.MedicalHistory), rec.CoverageAmount, nullable(rec.Relationship),
		rec.MonthlyInvestment, nullable(rec.InvestmentGoal), nullable(rec.CurrentProvider),
	).Scan(&customerID); err != nil {
		return 0, fmt.Errorf("create customer: %w", err)
	}

	return customerID, nil
}

// GetCustomerByID retrieves a stored customer.
func (r *Repo) GetCustomerByID(ctx context.Context, customerID int64) (Customer, error) {
	query := `
		SELECT customer_id, name, email, phone, age, gender, zip_code,
			insurance_type, vehicle_number, vehicle_model, vehicle_year,
			medical_history, coverage_amount, relationship, monthly_investment,
			investment_goal, current_provider, created_at
		FROM customers
		WHERE customer_id = $1`

	var customer Customer
	var createdAt time.Time
	if err := r.pool.QueryRow(ctx, query, customerID).Scan(
		&customer.CustomerID, &customer.Name, &customer.Email, &customer.Phone,
		&customer.Age, &customer.Gender, &customer.ZipCode, &customer.InsuranceType,
		&customer.VehicleNumber, &customer.VehicleModel, &customer.VehicleYear,
		&customer.MedicalHistory, &customer.CoverageAmount, &customer.Relationship,
		&customer.MonthlyInvestment, &customer.InvestmentGoal, &customer.CurrentProvider,
		&createdAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Customer{}, apperr.NotFound(customerNotFoundMessage)
		}
		return Customer{}, fmt.Errorf("get customer by id: %w", err)
	}

	customer.CreatedAt = createdAt.Format(time.RFC3339)
	return customer, nil
}

// CreateConversation persists one chat exchange.
func (r *Repo) CreateConversation(ctx context.Context, entry ConversationEntry) error {
	query := `
		INSERT INTO customer_conversations (customer_id, session_id, message, response, message_type)
		VALUES ($1, $2, $3, $4, $5)`

	messageType := entry.MessageType
	if messageType == "" {
		messageType = "user"
	}

	if _, err := r.pool.Exec(ctx, query,
		entry.CustomerID, entry.SessionID, entry.Message, entry.Response, messageType,
	); err != nil {
		return fmt.Errorf("create conversation: %w", err)
	}
	return nil
}

// nullable converts empty strings to NULL so optional columns stay clean.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
