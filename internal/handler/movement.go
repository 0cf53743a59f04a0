package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/posline/pos-report-service/internal/config"
	"github.com/posline/pos-report-service/internal/repository"
	"github.com/posline/pos-report-service/internal/service"
	"github.com/posline/pos-report-service/pkg/response"
)

type MovementHandler struct {
	svc service.MovementService
	cfg config.DatabaseConfig
}

func NewMovementHandler(svc service.MovementService, cfg config.DatabaseConfig) *MovementHandler {
	return &MovementHandler{svc: svc, cfg: cfg}
}

func (h *MovementHandler) Register(r *gin.RouterGroup) {
	r.GET("/product-movements", h.list)
}

func (h *MovementHandler) list(c *gin.Context) {
	creds, err := resolveCredentials(c, h.cfg)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	q := repository.MovementQuery{
		ID:           queryInt64(c, "id"),
		ProductID:    queryInt64(c, "product_id"),
		MovementType: queryInt(c, "movement_type"),
		Reference:    queryStr(c, "reference"),
		DateFrom:     queryStr(c, "date_from"),
		DateTo:       queryStr(c, "date_to"),
	}
	data, err := h.svc.List(c.Request.Context(), creds, q, listParams(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteSuccess(c, "Product movements retrieved", data)
}
