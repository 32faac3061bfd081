package service

import (
	"context"
	"errors"
	"testing"

	"insurance_leads_backend/internal/catalog/repository"
	"insurance_leads_backend/platform/apperr"
	"insurance_leads_backend/platform/logger"
)

type fakeRepo struct {
	products map[string][]repository.Product
	err      error
}

func (f *fakeRepo) ListActiveByType(_ context.Context, productType string) ([]repository.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products[productType], nil
}

func intPtr(n int) *int { return &n }

func healthCatalog() *fakeRepo {
	return &fakeRepo{products: map[string][]repository.Product{
		"health": {
			{ProductID: 1, ProductName: "Basic Health", ProductType: "health", PremiumAmount: 150, MinAge: 18, MaxAge: 65, TargetGender: "all"},
			{ProductID: 2, ProductName: "Women's Care Plus", ProductType: "health", PremiumAmount: 180, MinAge: 18, MaxAge: 55, TargetGender: "female"},
			{ProductID: 3, ProductName: "Men's Shield", ProductType: "health", PremiumAmount: 120, MinAge: 18, MaxAge: 55, TargetGender: "male"},
			{ProductID: 4, ProductName: "Senior Health", ProductType: "health", PremiumAmount: 300, MinAge: 60, MaxAge: 80, TargetGender: "all"},
		},
	}}
}

func newTestService(repo repository.Repository) *Service {
	return New(repo, logger.New("development"))
}

func TestFindProducts_AgeAndGenderFilter(t *testing.T) {
	svc := newTestService(healthCatalog())

	products, err := svc.FindProducts(context.Background(), Filter{
		InsuranceType: "health",
		Age:           intPtr(30),
		Gender:        "female",
	})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 eligible products, got %d", len(products))
	}
	for _, p := range products {
		if p.ProductType != "health" {
			t.Fatalf("wrong product type %q", p.ProductType)
		}
		if p.MinAge > 30 || p.MaxAge < 30 {
			t.Fatalf("product %q out of age range", p.ProductName)
		}
		if p.TargetGender != "female" && p.TargetGender != "all" {
			t.Fatalf("product %q targets %q", p.ProductName, p.TargetGender)
		}
	}
	for i := 1; i < len(products); i++ {
		if products[i-1].PremiumAmount > products[i].PremiumAmount {
			t.Fatal("products not sorted by premium ascending")
		}
	}
}

func TestFindProducts_NoCriteriaReturnsAll(t *testing.T) {
	svc := newTestService(healthCatalog())

	products, err := svc.FindProducts(context.Background(), Filter{InsuranceType: "health"})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(products) != 4 {
		t.Fatalf("expected all 4 products, got %d", len(products))
	}
	if products[0].ProductName != "Men's Shield" {
		t.Fatalf("expected cheapest product first, got %q", products[0].ProductName)
	}
}

func TestFindProducts_AliasResolvedBeforeQuery(t *testing.T) {
	repo := &fakeRepo{products: map[string][]repository.Product{
		"auto": {
			{ProductID: 10, ProductName: "Drive Safe", ProductType: "auto", PremiumAmount: 90, MinAge: 18, MaxAge: 75, TargetGender: "all"},
		},
	}}
	svc := newTestService(repo)

	products, err := svc.FindProducts(context.Background(), Filter{InsuranceType: "Car"})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(products) != 1 || products[0].ProductName != "Drive Safe" {
		t.Fatalf("alias did not resolve to auto catalog: %+v", products)
	}
}

func TestFindProducts_UnsupportedType(t *testing.T) {
	svc := newTestService(healthCatalog())

	_, err := svc.FindProducts(context.Background(), Filter{InsuranceType: "pet"})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFindProducts_UnrecognizedGenderIgnored(t *testing.T) {
	svc := newTestService(healthCatalog())

	products, err := svc.FindProducts(context.Background(), Filter{
		InsuranceType: "health",
		Gender:        "prefer not to say",
	})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(products) != 4 {
		t.Fatalf("unrecognized gender must not exclude products, got %d", len(products))
	}
}

func TestFindProducts_StorageFailure(t *testing.T) {
	svc := newTestService(&fakeRepo{err: errors.New("connection refused")})

	_, err := svc.FindProducts(context.Background(), Filter{InsuranceType: "health"})
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}
