// Package intake provides the customer-intake bounded context module.
package intake

import (
	apphttp "insurance_leads_backend/internal/http"
	"insurance_leads_backend/internal/intake/handler"
	"insurance_leads_backend/internal/intake/repository"
	"insurance_leads_backend/internal/intake/service"
	"insurance_leads_backend/platform/logger"
	"insurance_leads_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the intake bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the intake module.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, val, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "intake"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts intake routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/database/customer", m.handler.StoreCustomer)
	ctx.API.GET("/database/customer/:id", m.handler.GetCustomer)
	ctx.API.POST("/database/conversation", m.handler.StoreConversation)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
