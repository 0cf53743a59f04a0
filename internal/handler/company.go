package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/posline/pos-report-service/internal/config"
	"github.com/posline/pos-report-service/internal/repository"
	"github.com/posline/pos-report-service/internal/service"
	"github.com/posline/pos-report-service/pkg/response"
)

type CompanyHandler struct {
	svc service.CompanyService
	cfg config.DatabaseConfig
}

func NewCompanyHandler(svc service.CompanyService, cfg config.DatabaseConfig) *CompanyHandler {
	return &CompanyHandler{svc: svc, cfg: cfg}
}

func (h *CompanyHandler) Register(r *gin.RouterGroup) {
	r.GET("/company-information", h.list)
}

func (h *CompanyHandler) list(c *gin.Context) {
	creds, err := resolveCredentials(c, h.cfg)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	q := repository.CompanyQuery{
		ID:          queryInt64(c, "id"),
		CompanyName: queryStr(c, "company_name"),
		Email:       queryStr(c, "email"),
		Phone:       queryStr(c, "phone"),
		Currency:    queryStr(c, "currency"),
	}
	data, err := h.svc.List(c.Request.Context(), creds, q, listParams(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteSuccess(c, "Company information retrieved", data)
}
