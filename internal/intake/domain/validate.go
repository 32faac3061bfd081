package domain

import (
	"strconv"

	"insurance_leads_backend/platform/apperr"
	"insurance_leads_backend/platform/validator"
)

const (
	minPhoneLength = 10
	minAge         = 18
	maxAge         = 80
)

// RecordValidator enforces the per-category required-field rules.
// Rules are checked in a fixed order and the first violation is reported;
// failures are never aggregated.
type RecordValidator struct {
	val *validator.Validator
}

// NewRecordValidator creates a validator for canonical records.
func NewRecordValidator(val *validator.Validator) *RecordValidator {
	return &RecordValidator{val: val}
}

// Validate checks rec against the rules for its resolved category.
// It is pure: no field is mutated. Returns a typed validation error naming
// the first violated field, or nil.
func (rv *RecordValidator) Validate(rec Record, canonicalType InsuranceType) error {
	if rec.Name == "" {
		return apperr.Validation("name", "name is required")
	}
	if rec.Email == "" {
		return apperr.Validation("email", "email is required")
	}
	if rec.Phone == "" {
		return apperr.Validation("phone", "phone is required")
	}
	if rec.ZipCode == "" {
		return apperr.Validation("zipCode", "zip code is required")
	}

	// Length check only; digit format is not enforced.
	if len(rec.Phone) < minPhoneLength {
		return apperr.Validation("phone", "phone must be at least 10 characters")
	}

	if err := rv.val.Var(rec.Email, "email"); err != nil {
		return apperr.Validation("email", "email address is not valid")
	}

	if canonicalType == TypeAuto {
		return validateAuto(rec)
	}

	// All non-auto categories require a demographic profile.
	if rec.Age == nil {
		return apperr.Validation("age", "age is required")
	}
	if *rec.Age < minAge || *rec.Age > maxAge {
		return apperr.Validation("age", "age must be between 18 and 80")
	}
	// Any non-empty gender passes here; normalization into the closed set
	// happens downstream and is lenient.
	if rec.Gender == "" {
		return apperr.Validation("gender", "gender is required")
	}

	switch canonicalType {
	case TypeTermLife:
		if rec.CoverageAmount == nil {
			return apperr.Validation("coverageAmount", "coverage amount is required")
		}
		if rec.Relationship == "" {
			return apperr.Validation("relationship", "relationship is required")
		}
	case TypeSavings:
		if rec.MonthlyInvestment == nil {
			return apperr.Validation("monthlyInvestment", "monthly investment is required")
		}
		if rec.InvestmentGoal == "" {
			return apperr.Validation("investmentGoal", "investment goal is required")
		}
	}

	return nil
}

func validateAuto(rec Record) error {
	if rec.VehicleNumber == "" {
		return apperr.Validation("vehicleNumber", "vehicle number is required")
	}
	if rec.VehicleModel == "" {
		return apperr.Validation("vehicleModel", "vehicle model is required")
	}
	if rec.VehicleYear == "" {
		return apperr.Validation("vehicleYear", "vehicle year is required")
	}
	if _, err := strconv.Atoi(rec.VehicleYear); err != nil {
		return apperr.Validation("vehicleYear", "vehicle year must be a number")
	}
	return nil
}
