package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/posline/pos-report-service/internal/config"
	"github.com/posline/pos-report-service/internal/repository"
	"github.com/posline/pos-report-service/internal/service"
	"github.com/posline/pos-report-service/pkg/response"
)

type ActivityLogHandler struct {
	svc service.ActivityLogService
	cfg config.DatabaseConfig
}

func NewActivityLogHandler(svc service.ActivityLogService, cfg config.DatabaseConfig) *ActivityLogHandler {
	return &ActivityLogHandler{svc: svc, cfg: cfg}
}

func (h *ActivityLogHandler) Register(r *gin.RouterGroup) {
	r.GET("/activity-logs", h.list)
}

func (h *ActivityLogHandler) list(c *gin.Context) {
	creds, err := resolveCredentials(c, h.cfg)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	q := repository.ActivityLogQuery{
		UserID:    queryInt64(c, "user_id"),
		Module:    queryStr(c, "module"),
		Action:    queryStr(c, "action"),
		StartDate: queryStr(c, "start_date"),
		EndDate:   queryStr(c, "end_date"),
		Search:    queryStr(c, "search"),
	}
	data, meta, err := h.svc.List(c.Request.Context(), creds, q, listParams(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteSuccessMeta(c, "Activity logs retrieved successfully", data, meta)
}
