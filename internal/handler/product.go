package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/posline/pos-report-service/internal/config"
	"github.com/posline/pos-report-service/internal/repository"
	"github.com/posline/pos-report-service/internal/service"
	"github.com/posline/pos-report-service/pkg/response"
)

type ProductHandler struct {
	svc service.ProductService
	cfg config.DatabaseConfig
}

func NewProductHandler(svc service.ProductService, cfg config.DatabaseConfig) *ProductHandler {
	return &ProductHandler{svc: svc, cfg: cfg}
}

func (h *ProductHandler) Register(r *gin.RouterGroup) {
	r.GET("/products", h.list)
}

func (h *ProductHandler) list(c *gin.Context) {
	creds, err := resolveCredentials(c, h.cfg)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	q := repository.ProductQuery{
		ID:         queryInt64(c, "id"),
		BrandID:    queryInt64(c, "brand_id"),
		CategoryID: queryInt64(c, "category_id"),
		Status:     queryInt(c, "status"),
		Search:     queryStr(c, "q"),
	}
	data, err := h.svc.List(c.Request.Context(), creds, q, listParams(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteSuccess(c, "Products retrieved", data)
}
