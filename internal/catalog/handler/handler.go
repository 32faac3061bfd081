package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"insurance_leads_backend/internal/catalog/repository"
	"insurance_leads_backend/internal/catalog/service"
	"insurance_leads_backend/internal/catalog/transport"
	"insurance_leads_backend/platform/httpkit"
	"insurance_leads_backend/platform/validator"
)

// Handler handles HTTP requests for catalog queries.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new catalog handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// FindProducts returns products a lead is eligible for.
// POST /api/database/products
func (h *Handler) FindProducts(c *gin.Context) {
	var req transport.FindProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.svc.FindProducts(c.Request.Context(), service.Filter{
		InsuranceType: req.ProductType,
		Age:           req.Age,
		Gender:        req.Gender,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	if products == nil {
		products = []repository.Product{}
	}
	httpkit.OK(c, transport.FindProductsResponse{
		Success:  true,
		Products: products,
		Count:    len(products),
	})
}
