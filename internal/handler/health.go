package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/posline/pos-report-service/internal/config"
	"github.com/posline/pos-report-service/internal/repository"
)

// HealthHandler exposes liveness and readiness endpoints.
type HealthHandler struct {
	provider repository.Provider
	cfg      config.DatabaseConfig
}

func NewHealthHandler(provider repository.Provider, cfg config.DatabaseConfig) *HealthHandler {
	return &HealthHandler{provider: provider, cfg: cfg}
}

// Liveness responds OK if the process is up; it doesn't check dependencies.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness verifies the database when the caller supplies credentials.
// Without X-DB-User and X-DB-Name there is no tenant database to check, so
// the probe only confirms the process is serving.
func (h *HealthHandler) Readiness(c *gin.Context) {
	creds, err := resolveCredentials(c, h.cfg)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
		return
	}
	sess, err := h.provider.Acquire(c.Request.Context(), creds)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	defer sess.Close()
	if err := sess.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
