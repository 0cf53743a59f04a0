package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/posline/pos-report-service/internal/config"
	"github.com/posline/pos-report-service/internal/repository"
	"github.com/posline/pos-report-service/internal/service"
	"github.com/posline/pos-report-service/pkg/response"
)

type SyncLogHandler struct {
	svc service.SyncLogService
	cfg config.DatabaseConfig
}

func NewSyncLogHandler(svc service.SyncLogService, cfg config.DatabaseConfig) *SyncLogHandler {
	return &SyncLogHandler{svc: svc, cfg: cfg}
}

func (h *SyncLogHandler) Register(r *gin.RouterGroup) {
	r.GET("/sync-logs", h.list)
}

func (h *SyncLogHandler) list(c *gin.Context) {
	creds, err := resolveCredentials(c, h.cfg)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	q := repository.SyncLogQuery{
		UserID:          queryInt64(c, "user_id"),
		TableName:       queryStr(c, "table_name"),
		Module:          queryStr(c, "module"),
		Action:          queryStr(c, "action"),
		SyncStatus:      queryStr(c, "sync_status"),
		StartDate:       queryStr(c, "start_date"),
		EndDate:         queryStr(c, "end_date"),
		SyncedStartDate: queryStr(c, "synced_start_date"),
		SyncedEndDate:   queryStr(c, "synced_end_date"),
		Search:          queryStr(c, "search"),
	}
	data, meta, err := h.svc.List(c.Request.Context(), creds, q, listParams(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteSuccessMeta(c, "Synchronization logs retrieved successfully", data, meta)
}
