// Package domain holds the canonical customer record and the
// normalization/validation pipeline all intake paths converge to.
package domain

// InsuranceType is a canonical product category. Every accepted alias
// resolves to exactly one of these values.
type InsuranceType string

const (
	TypeAuto     InsuranceType = "auto"
	TypeHealth   InsuranceType = "health"
	TypeTermLife InsuranceType = "term_life"
	TypeSavings  InsuranceType = "savings"
	TypeHome     InsuranceType = "home"
)

// Genders accepted after normalization. Unrecognized values are dropped
// rather than coerced.
const (
	GenderMale      = "male"
	GenderFemale    = "female"
	GenderNonBinary = "non_binary"
)

// Record is the canonical representation of one lead, produced by the
// field normalizer from a raw payload. InsuranceType holds the raw token
// until the resolver maps it into the canonical set.
type Record struct {
	Name          string
	Email         string
	Phone         string
	ZipCode       string
	InsuranceType string

	Age    *int
	Gender string

	VehicleNumber string
	VehicleModel  string
	VehicleYear   string

	CoverageAmount *float64
	Relationship   string

	MonthlyInvestment *float64
	InvestmentGoal    string

	CurrentProvider string
	MedicalHistory  string
}
