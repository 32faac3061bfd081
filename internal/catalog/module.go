// Package catalog provides the product catalog bounded context module.
package catalog

import (
	"insurance_leads_backend/internal/catalog/handler"
	"insurance_leads_backend/internal/catalog/repository"
	"insurance_leads_backend/internal/catalog/service"
	apphttp "insurance_leads_backend/internal/http"
	"insurance_leads_backend/platform/logger"
	"insurance_leads_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the catalog module.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts catalog routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/database/products", m.handler.FindProducts)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
