package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/posline/pos-report-service/internal/config"
	"github.com/posline/pos-report-service/internal/repository"
	"github.com/posline/pos-report-service/internal/service"
	"github.com/posline/pos-report-service/pkg/response"
)

type SupplierHandler struct {
	svc service.SupplierService
	cfg config.DatabaseConfig
}

func NewSupplierHandler(svc service.SupplierService, cfg config.DatabaseConfig) *SupplierHandler {
	return &SupplierHandler{svc: svc, cfg: cfg}
}

func (h *SupplierHandler) Register(r *gin.RouterGroup) {
	r.GET("/suppliers", h.list)
}

func (h *SupplierHandler) list(c *gin.Context) {
	creds, err := resolveCredentials(c, h.cfg)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	q := repository.SupplierQuery{
		ID:          queryInt64(c, "id"),
		Name:        queryStr(c, "name"),
		Email:       queryStr(c, "email"),
		PhoneNumber: queryStr(c, "phone_number"),
		Status:      queryInt(c, "status"),
	}
	data, err := h.svc.List(c.Request.Context(), creds, q, listParams(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteSuccess(c, "Suppliers retrieved", data)
}
