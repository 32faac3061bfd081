package repository

import "context"

// Product is a catalog row offered to leads.
type Product struct {
	ProductID      int64    `json:"product_id"`
	ProductName    string   `json:"product_name"`
	ProductType    string   `json:"product_type"`
	Description    string   `json:"description"`
	PremiumAmount  float64  `json:"premium_amount"`
	CoverageAmount float64  `json:"coverage_amount"`
	MinAge         int      `json:"min_age"`
	MaxAge         int      `json:"max_age"`
	TargetGender   string   `json:"target_gender"`
	Features       []string `json:"features"`
}

// Repository defines catalog read operations.
type Repository interface {
	// ListActiveByType returns active products of the given canonical type.
	ListActiveByType(ctx context.Context, productType string) ([]Product, error)
}
