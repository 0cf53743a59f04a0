package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/posline/pos-report-service/internal/config"
	"github.com/posline/pos-report-service/internal/repository"
	"github.com/posline/pos-report-service/internal/service"
	"github.com/posline/pos-report-service/pkg/response"
)

// Services groups the use-case dependencies Register wires into routes.
type Services struct {
	Auth         service.AuthService
	ActivityLogs service.ActivityLogService
	SyncLogs     service.SyncLogService
	Sales        service.SaleService
	Incomes      service.IncomeService
	Suppliers    service.SupplierService
	Products     service.ProductService
	Movements    service.MovementService
	Companies    service.CompanyService
}

// methodHints drives the 405 body per endpoint. Paths not listed accept GET only.
var methodHints = map[string]string{
	"/login":    "Method not allowed. Only POST requests are accepted.",
	"/password": "Only POST method is allowed",
	"/profile":  "Only PUT or PATCH methods are allowed",
}

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, cfg config.DatabaseConfig, provider repository.Provider, svcs Services) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		msg := "Only GET method is allowed"
		if hint, ok := methodHints[strings.TrimPrefix(c.Request.URL.Path, APIV1Prefix)]; ok {
			msg = hint
		}
		response.WriteStatus(c, http.StatusMethodNotAllowed, msg)
	})
	r.NoRoute(func(c *gin.Context) {
		response.WriteStatus(c, http.StatusNotFound, "Endpoint not found")
	})

	h := NewHealthHandler(provider, cfg)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewAuthHandler(svcs.Auth, cfg).Register(api)
		NewActivityLogHandler(svcs.ActivityLogs, cfg).Register(api)
		NewSyncLogHandler(svcs.SyncLogs, cfg).Register(api)
		NewSaleHandler(svcs.Sales, cfg).Register(api)
		NewIncomeHandler(svcs.Incomes, cfg).Register(api)
		NewSupplierHandler(svcs.Suppliers, cfg).Register(api)
		NewProductHandler(svcs.Products, cfg).Register(api)
		NewMovementHandler(svcs.Movements, cfg).Register(api)
		NewCompanyHandler(svcs.Companies, cfg).Register(api)
	}
}
