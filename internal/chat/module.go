// Package chat provides the lead chat bounded context module.
package chat

import (
	"context"

	"insurance_leads_backend/internal/chat/assistant"
	"insurance_leads_backend/internal/chat/handler"
	"insurance_leads_backend/internal/chat/ports"
	"insurance_leads_backend/internal/chat/service"
	"insurance_leads_backend/internal/chat/session"
	apphttp "insurance_leads_backend/internal/http"
	"insurance_leads_backend/platform/config"
	"insurance_leads_backend/platform/logger"
	"insurance_leads_backend/platform/validator"
)

// Module is the chat bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	janitor *session.MemoryStore
}

// NewModule creates and initializes the chat module. The session registry is
// Redis-backed when REDIS_URL is set, otherwise in-process; the Gemini
// passthrough is wired only when an API key is configured.
func NewModule(ctx context.Context, cfg *config.Config, val *validator.Validator, recorder ports.ConversationRecorder, log *logger.Logger) (*Module, error) {
	var store session.Store
	var janitor *session.MemoryStore

	if cfg.GetRedisURL() != "" {
		redisStore, err := session.NewRedisStore(ctx, cfg.GetRedisURL(), cfg.GetSessionTTL())
		if err != nil {
			return nil, err
		}
		store = redisStore
		log.Info("chat sessions backed by redis")
	} else {
		memStore := session.NewMemoryStore(cfg.GetSessionTTL(), cfg.GetSessionMax(), log)
		store = memStore
		janitor = memStore
	}

	var replier service.Replier
	if cfg.IsAssistantEnabled() {
		gemini, err := assistant.New(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		replier = gemini
		log.Info("assistant enabled", "model", cfg.GetGeminiModel())
	}

	svc := service.New(store, replier, recorder, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		janitor: janitor,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "chat"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// SessionJanitor returns the in-memory store needing a sweep goroutine, or
// nil when sessions live in Redis.
func (m *Module) SessionJanitor() *session.MemoryStore {
	return m.janitor
}

// RegisterRoutes mounts chat routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/chat/initialize", m.handler.Initialize)
	ctx.API.POST("/chat/message", m.handler.Message)
	ctx.API.GET("/chat/history/:sessionId", m.handler.History)
	ctx.API.DELETE("/chat/session/:sessionId", m.handler.End)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
