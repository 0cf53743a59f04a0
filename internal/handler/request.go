package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/posline/pos-report-service/internal/config"
	"github.com/posline/pos-report-service/internal/repository"
	"github.com/posline/pos-report-service/internal/service"
)

// Database connection headers. Host and port fall back to configured
// defaults; user and database name are mandatory.
const (
	headerDBHost = "X-DB-Host"
	headerDBPort = "X-DB-Port"
	headerDBUser = "X-DB-User"
	headerDBPass = "X-DB-Pass"
	headerDBName = "X-DB-Name"
	headerUserID = "X-User-ID"
)

// resolveCredentials builds the per-request database credentials from headers.
func resolveCredentials(c *gin.Context, cfg config.DatabaseConfig) (repository.Credentials, error) {
	host := c.GetHeader(headerDBHost)
	if host == "" {
		host = cfg.DefaultHost
	}
	port := cfg.DefaultPort
	if raw := c.GetHeader(headerDBPort); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			port = n
		}
	}
	creds := repository.Credentials{
		Host:     host,
		Port:     port,
		User:     c.GetHeader(headerDBUser),
		Password: c.GetHeader(headerDBPass),
		Database: c.GetHeader(headerDBName),
	}
	if err := creds.Validate(); err != nil {
		return repository.Credentials{}, err
	}
	return creds, nil
}

// headerOrBodyUserID prefers the X-User-ID header over a body-supplied id.
func headerOrBodyUserID(c *gin.Context, bodyID int64) int64 {
	if raw := c.GetHeader(headerUserID); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
	}
	return bodyID
}

// listParams reads the shared page/per_page convention. Absent or garbage
// values come out as zero and get normalized downstream.
func listParams(c *gin.Context) service.ListParams {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))
	return service.ListParams{Page: page, PerPage: perPage}
}

// Optional query parameter readers. Empty values mean "filter absent";
// unparsable numerics are treated the same way rather than matching id 0.

func queryStr(c *gin.Context, name string) *string {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return nil
	}
	return &v
}

func queryInt64(c *gin.Context, name string) *int64 {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func queryInt(c *gin.Context, name string) *int {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func queryFloat(c *gin.Context, name string) *float64 {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}
