package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"insurance_leads_backend/internal/chat/service"
	"insurance_leads_backend/internal/chat/transport"
	"insurance_leads_backend/platform/httpkit"
	"insurance_leads_backend/platform/validator"
)

const msgInvalidRequest = "invalid request"

// Handler handles HTTP requests for the lead chat.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new chat handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Initialize opens a chat session and returns the welcome message.
// POST /api/chat/initialize
func (h *Handler) Initialize(c *gin.Context) {
	var req transport.InitializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.Initialize(c.Request.Context(), req.SessionID, req.FormData)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.InitializeResponse{
		Success:   true,
		SessionID: result.SessionID,
		Message:   result.Message,
		Context:   result.Context,
	})
}

// Message answers one user message.
// POST /api/chat/message
func (h *Handler) Message(c *gin.Context) {
	var req transport.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := h.svc.AppendTurn(c.Request.Context(), req.SessionID, req.Message, req.FormData)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.MessageResponse{
		Success:   true,
		Response:  reply,
		SessionID: req.SessionID,
	})
}

// History returns the conversation recorded for a session.
// GET /api/chat/history/:sessionId
func (h *Handler) History(c *gin.Context) {
	sessionID := c.Param("sessionId")

	sess, err := h.svc.History(c.Request.Context(), sessionID)
	if httpkit.HandleError(c, err) {
		return
	}

	turns := make([]transport.HistoryTurn, 0, len(sess.History))
	for _, turn := range sess.History {
		turns = append(turns, transport.HistoryTurn{
			UserMessage: turn.UserMessage,
			BotResponse: turn.BotResponse,
			Timestamp:   turn.Timestamp.Format(time.RFC3339),
		})
	}

	httpkit.OK(c, transport.HistoryResponse{
		Success:   true,
		SessionID: sessionID,
		History:   turns,
	})
}

// End removes a chat session.
// DELETE /api/chat/session/:sessionId
func (h *Handler) End(c *gin.Context) {
	sessionID := c.Param("sessionId")

	if err := h.svc.End(c.Request.Context(), sessionID); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"success": true})
}
