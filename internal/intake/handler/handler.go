package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"insurance_leads_backend/internal/intake/repository"
	"insurance_leads_backend/internal/intake/service"
	"insurance_leads_backend/internal/intake/transport"
	"insurance_leads_backend/platform/httpkit"
	"insurance_leads_backend/platform/validator"
)

const (
	msgInvalidRequest = "invalid request"
	msgInvalidID      = "invalid customer id"
)

// Handler handles HTTP requests for customer intake.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new intake handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// StoreCustomer accepts a form submission.
// POST /api/database/customer
func (h *Handler) StoreCustomer(c *gin.Context) {
	var req transport.StoreCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if len(req.CustomerData) == 0 {
		httpkit.Error(c, http.StatusBadRequest, "customerData is required")
		return
	}

	customerID, err := h.svc.StoreCustomer(c.Request.Context(), req.CustomerData)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, transport.StoreCustomerResponse{
		Success:    true,
		CustomerID: customerID,
		Message:    "customer data stored successfully",
	})
}

// GetCustomer retrieves a stored customer by id.
// GET /api/database/customer/:id
func (h *Handler) GetCustomer(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || customerID <= 0 {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	customer, err := h.svc.GetCustomer(c.Request.Context(), customerID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"customer": customer})
}

// StoreConversation persists one chat exchange.
// POST /api/database/conversation
func (h *Handler) StoreConversation(c *gin.Context) {
	var req transport.StoreConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.svc.StoreConversation(c.Request.Context(), repository.ConversationEntry{
		CustomerID:  req.CustomerID,
		SessionID:   req.SessionID,
		Message:     req.Message,
		Response:    req.Response,
		MessageType: req.MessageType,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.StoreConversationResponse{Success: true})
}
