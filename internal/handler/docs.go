package handler

import (
	_ "embed"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Swagger UI loads from a CDN; only this small page ships in the binary. It
// points the UI at /openapi.yaml below.
//
//go:embed swagger.html
var swaggerHTML string

const openapiPath = "api/openapi.yaml"

// RegisterDocs mounts the API documentation at the root, outside /api/v1:
// GET /openapi.yaml serves the spec file from disk, GET /docs renders it.
// The report endpoints need X-DB-* headers to do anything useful, and the
// UI lets a caller type those in per request.
func RegisterDocs(r *gin.Engine) {
	r.GET("/openapi.yaml", func(c *gin.Context) {
		data, err := os.ReadFile(openapiPath)
		if err != nil {
			c.String(http.StatusInternalServerError, "openapi spec unavailable: %v", err)
			return
		}
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", data)
	})
	r.GET("/docs", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})
}
