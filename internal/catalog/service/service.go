// Package service implements product eligibility queries for the catalog.
package service

import (
	"context"
	"errors"
	"sort"

	"insurance_leads_backend/internal/catalog/repository"
	intakedomain "insurance_leads_backend/internal/intake/domain"
	"insurance_leads_backend/platform/apperr"
	"insurance_leads_backend/platform/logger"
)

// Filter narrows the product list to what a given lead is eligible for.
// Age and Gender are optional: absent criteria do not exclude anything.
type Filter struct {
	InsuranceType string
	Age           *int
	Gender        string
}

// Service answers catalog queries.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates the catalog service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// FindProducts returns active products matching the filter, cheapest first.
// The type token accepts the same aliases the intake pipeline accepts.
func (s *Service) FindProducts(ctx context.Context, filter Filter) ([]repository.Product, error) {
	canonicalType, err := intakedomain.ResolveType(filter.InsuranceType)
	if err != nil {
		return nil, err
	}

	gender := intakedomain.NormalizeGender(filter.Gender)

	products, err := s.repo.ListActiveByType(ctx, string(canonicalType))
	if err != nil {
		s.log.DatabaseError("list_products", err)
		return nil, storageErr(err)
	}

	eligible := make([]repository.Product, 0, len(products))
	for _, p := range products {
		if !eligibleForAge(p, filter.Age) {
			continue
		}
		if !eligibleForGender(p, gender) {
			continue
		}
		eligible = append(eligible, p)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].PremiumAmount < eligible[j].PremiumAmount
	})
	return eligible, nil
}

func eligibleForAge(p repository.Product, age *int) bool {
	if age == nil {
		return true
	}
	return *age >= p.MinAge && *age <= p.MaxAge
}

func eligibleForGender(p repository.Product, gender string) bool {
	if gender == "" || p.TargetGender == "all" {
		return true
	}
	return p.TargetGender == gender
}

func storageErr(err error) error {
	var domainErr *apperr.Error
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return apperr.Wrap(apperr.KindUnavailable, "storage is unavailable", err)
}
