package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/posline/pos-report-service/internal/config"
	"github.com/posline/pos-report-service/internal/repository"
	"github.com/posline/pos-report-service/internal/service"
	"github.com/posline/pos-report-service/pkg/response"
)

type IncomeHandler struct {
	svc service.IncomeService
	cfg config.DatabaseConfig
}

func NewIncomeHandler(svc service.IncomeService, cfg config.DatabaseConfig) *IncomeHandler {
	return &IncomeHandler{svc: svc, cfg: cfg}
}

func (h *IncomeHandler) Register(r *gin.RouterGroup) {
	r.GET("/incomes", h.list)
}

func (h *IncomeHandler) list(c *gin.Context) {
	creds, err := resolveCredentials(c, h.cfg)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	q := repository.IncomeQuery{
		ID:              queryInt64(c, "id"),
		SaleID:          queryInt64(c, "sale_id"),
		Source:          queryStr(c, "source"),
		PaymentType:     queryInt(c, "payment_type"),
		TransactionType: queryStr(c, "transaction_type"),
		DateFrom:        queryStr(c, "date_from"),
		DateTo:          queryStr(c, "date_to"),
		AmountMin:       queryFloat(c, "amount_min"),
		AmountMax:       queryFloat(c, "amount_max"),
	}
	data, err := h.svc.List(c.Request.Context(), creds, q, listParams(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteSuccess(c, "Incomes retrieved", data)
}
