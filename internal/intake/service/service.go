// Package service orchestrates the intake pipeline: normalize, resolve,
// validate, then persist.
package service

import (
	"context"
	"errors"

	"insurance_leads_backend/internal/intake/domain"
	"insurance_leads_backend/internal/intake/repository"
	"insurance_leads_backend/platform/apperr"
	"insurance_leads_backend/platform/logger"
	"insurance_leads_backend/platform/phone"
	"insurance_leads_backend/platform/sanitize"
	"insurance_leads_backend/platform/validator"
)

// Service implements customer intake and conversation persistence.
type Service struct {
	repo      repository.Repository
	validator *domain.RecordValidator
	log       *logger.Logger
}

// New creates the intake service.
func New(repo repository.Repository, val *validator.Validator, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: domain.NewRecordValidator(val),
		log:       log,
	}
}

// StoreCustomer runs the full pipeline on a raw payload. On success the
// record is durable and the generated customer id is returned.
func (s *Service) StoreCustomer(ctx context.Context, raw map[string]interface{}) (int64, error) {
	rec := domain.Normalize(raw)

	canonicalType, err := domain.ResolveType(rec.InsuranceType)
	if err != nil {
		return 0, err
	}

	if err := s.validator.Validate(rec, canonicalType); err != nil {
		return 0, err
	}

	// Post-validation cleanup: lenient gender normalization into the
	// closed set, best-effort E.164 phone formatting, and HTML stripping
	// on free-text fields.
	rec.Gender = domain.NormalizeGender(rec.Gender)
	rec.Phone = phone.NormalizeE164(rec.Phone)
	rec.MedicalHistory = sanitize.Text(rec.MedicalHistory)
	rec.InvestmentGoal = sanitize.Text(rec.InvestmentGoal)

	customerID, err := s.repo.CreateCustomer(ctx, repository.CreateCustomerParams{
		Record: rec,
		Type:   canonicalType,
	})
	if err != nil {
		s.log.DatabaseError("create_customer", err)
		return 0, storageErr(err)
	}

	s.log.Info("customer stored", "customer_id", customerID, "insurance_type", string(canonicalType))
	return customerID, nil
}

// GetCustomer fetches a stored customer by id.
func (s *Service) GetCustomer(ctx context.Context, customerID int64) (repository.Customer, error) {
	customer, err := s.repo.GetCustomerByID(ctx, customerID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return repository.Customer{}, err
		}
		s.log.DatabaseError("get_customer", err)
		return repository.Customer{}, storageErr(err)
	}
	return customer, nil
}

// StoreConversation persists one chat exchange for a known customer.
func (s *Service) StoreConversation(ctx context.Context, entry repository.ConversationEntry) error {
	if entry.CustomerID <= 0 {
		return apperr.Validation("customerId", "customer id is required")
	}
	if err := s.repo.CreateConversation(ctx, entry); err != nil {
		s.log.DatabaseError("create_conversation", err)
		return storageErr(err)
	}
	return nil
}

// storageErr wraps a database failure without leaking connection details.
func storageErr(err error) error {
	var domainErr *apperr.Error
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return apperr.Wrap(apperr.KindUnavailable, "storage is unavailable", err)
}
