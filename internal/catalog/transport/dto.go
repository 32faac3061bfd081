package transport

import "insurance_leads_backend/internal/catalog/repository"

// FindProductsRequest filters the catalog for a lead. Age and gender are
// optional; the type token accepts the same aliases the intake form sends.
type FindProductsRequest struct {
	ProductType string `json:"productType" validate:"required,min=1"`
	Age         *int   `json:"age" validate:"omitempty,min=0,max=150"`
	Gender      string `json:"gender" validate:"omitempty,max=32"`
}

// FindProductsResponse lists eligible products, cheapest first.
type FindProductsResponse struct {
	Success  bool                 `json:"success"`
	Products []repository.Product `json:"products"`
	Count    int                  `json:"count"`
}
