package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/posline/pos-report-service/internal/config"
	"github.com/posline/pos-report-service/internal/repository"
	"github.com/posline/pos-report-service/internal/service"
	"github.com/posline/pos-report-service/pkg/response"
)

type SaleHandler struct {
	svc service.SaleService
	cfg config.DatabaseConfig
}

func NewSaleHandler(svc service.SaleService, cfg config.DatabaseConfig) *SaleHandler {
	return &SaleHandler{svc: svc, cfg: cfg}
}

func (h *SaleHandler) Register(r *gin.RouterGroup) {
	r.GET("/sales", h.list)
}

func (h *SaleHandler) list(c *gin.Context) {
	creds, err := resolveCredentials(c, h.cfg)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	q := repository.SaleQuery{
		ID:         queryInt64(c, "id"),
		InvoiceNo:  queryStr(c, "invoice_no"),
		CustomerID: queryInt64(c, "customer_id"),
		UserID:     queryInt64(c, "user_id"),
		Type:       queryInt(c, "type"),
		DateFrom:   queryStr(c, "date_from"),
		DateTo:     queryStr(c, "date_to"),
	}
	data, err := h.svc.List(c.Request.Context(), creds, q, listParams(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteSuccess(c, "Sales retrieved", data)
}
