package service

import (
	"context"
	"errors"
	"testing"

	"insurance_leads_backend/internal/intake/repository"
	"insurance_leads_backend/platform/apperr"
	"insurance_leads_backend/platform/logger"
	"insurance_leads_backend/platform/validator"
)

type fakeRepo struct {
	customers     map[int64]repository.CreateCustomerParams
	conversations []repository.ConversationEntry
	nextID        int64
	failCreate    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{customers: make(map[int64]repository.CreateCustomerParams), nextID: 1}
}

func (f *fakeRepo) CreateCustomer(_ context.Context, params repository.CreateCustomerParams) (int64, error) {
	if f.failCreate != nil {
		return 0, f.failCreate
	}
	id := f.nextID
	f.nextID++
	f.customers[id] = params
	return id, nil
}

func (f *fakeRepo) GetCustomerByID(_ context.Context, customerID int64) (repository.Customer, error) {
	params, ok := f.customers[customerID]
	if !ok {
		return repository.Customer{}, apperr.NotFound("customer not found")
	}
	rec := params.Record
	return repository.Customer{
		CustomerID:    customerID,
		Name:          rec.Name,
		Email:         rec.Email,
		Phone:         rec.Phone,
		Age:           rec.Age,
		ZipCode:       rec.ZipCode,
		InsuranceType: string(params.Type),
	}, nil
}

func (f *fakeRepo) CreateConversation(_ context.Context, entry repository.ConversationEntry) error {
	f.conversations = append(f.conversations, entry)
	return nil
}

func newTestService(repo repository.Repository) *Service {
	return New(repo, validator.New(), logger.New("development"))
}

func autoPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":          "Jane Doe",
		"email":         "jane@x.com",
		"phone":         "9999999999",
		"zipCode":       "12345",
		"insuranceType": "car",
		"vehicleNumber": "AB12",
		"vehicleModel":  "Civic",
		"vehicleYear":   "2020",
	}
}

func TestStoreCustomer_RoundTrip(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	id, err := svc.StoreCustomer(context.Background(), autoPayload())
	if err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected first generated id, got %d", id)
	}

	customer, err := svc.GetCustomer(context.Background(), id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if customer.Name != "Jane Doe" || customer.Email != "jane@x.com" {
		t.Fatalf("round trip lost identity fields: %+v", customer)
	}
	if customer.InsuranceType != "auto" {
		t.Fatalf("expected canonical type auto, got %q", customer.InsuranceType)
	}
}

func TestStoreCustomer_UnsupportedTypeRejected(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	payload := autoPayload()
	payload["insuranceType"] = "pet"

	_, err := svc.StoreCustomer(context.Background(), payload)
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.customers) != 0 {
		t.Fatal("invalid record must not be persisted")
	}
}

func TestStoreCustomer_ValidationFailureNotPersisted(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	payload := autoPayload()
	delete(payload, "vehicleModel")

	_, err := svc.StoreCustomer(context.Background(), payload)
	appErr, ok := err.(*apperr.Error)
	if !ok || appErr.Field != "vehicleModel" {
		t.Fatalf("expected vehicleModel violation, got %v", err)
	}
	if len(repo.customers) != 0 {
		t.Fatal("invalid record must not be persisted")
	}
}

func TestStoreCustomer_GenderNormalizedBeforeStore(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	payload := map[string]interface{}{
		"name":          "Alex Smith",
		"email":         "alex@x.com",
		"phone":         "8888888888",
		"zip_code":      "67890",
		"insuranceType": "health",
		"age":           float64(30),
		"gender":        "F",
	}

	id, err := svc.StoreCustomer(context.Background(), payload)
	if err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if stored := repo.customers[id].Record.Gender; stored != "female" {
		t.Fatalf("expected gender normalized to female, got %q", stored)
	}
}

func TestStoreCustomer_StorageFailureSurfaces(t *testing.T) {
	repo := newFakeRepo()
	repo.failCreate = errors.New("connection refused")
	svc := newTestService(repo)

	_, err := svc.StoreCustomer(context.Background(), autoPayload())
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}

func TestGetCustomer_NotFound(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.GetCustomer(context.Background(), 42)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStoreConversation_RequiresCustomerID(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	err := svc.StoreConversation(context.Background(), repository.ConversationEntry{
		SessionID: "s1", Message: "hi", Response: "hello",
	})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.conversations) != 0 {
		t.Fatal("conversation must not be persisted without customer id")
	}
}
