// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/posline/pos-report-service/internal/repository"
	"github.com/posline/pos-report-service/internal/service"
)

// Envelope is the canonical success body: a message, a data object and an
// optional meta block for lookup lists.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Meta    any    `json:"meta,omitempty"`
}

// ErrorPayload is the canonical error envelope returned by the API. The HTTP
// status is mirrored into the body so clients that swallow transport status
// still see it.
type ErrorPayload struct {
	Error      bool   `json:"error"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

const internalMessage = "An internal server error occurred. Please try again later."

// MapError converts a domain / infrastructure error into an HTTP status and payload.
// Server-side failures always collapse into a generic message; raw driver text
// never reaches the caller.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{StatusCode: http.StatusOK}
	}

	var se *service.StatusError
	if errors.As(err, &se) {
		return se.Status, ErrorPayload{Error: true, StatusCode: se.Status, Message: se.Message}
	}

	if errors.Is(err, service.ErrInvalidInput) {
		msg := "One or more fields are invalid"
		if fe := service.FieldErrors(err); len(fe) > 0 {
			parts := make([]string, len(fe))
			for i, f := range fe {
				parts[i] = f.Message
			}
			msg = strings.Join(parts, "; ")
		}
		return http.StatusBadRequest, ErrorPayload{Error: true, StatusCode: http.StatusBadRequest, Message: msg}
	}

	switch {
	case errors.Is(err, repository.ErrMissingCredentials):
		return http.StatusBadRequest, ErrorPayload{
			Error:      true,
			StatusCode: http.StatusBadRequest,
			Message:    "Database configuration incomplete. Required: X-DB-User and X-DB-Name",
		}
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, ErrorPayload{Error: true, StatusCode: http.StatusNotFound, Message: "Not found"}
	case errors.Is(err, repository.ErrAlreadyExists):
		return http.StatusConflict, ErrorPayload{Error: true, StatusCode: http.StatusConflict, Message: "Resource already exists"}
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, ErrorPayload{Error: true, StatusCode: http.StatusConflict, Message: "Conflict with related data"}
	default:
		return http.StatusInternalServerError, ErrorPayload{
			Error:      true,
			StatusCode: http.StatusInternalServerError,
			Message:    internalMessage,
		}
	}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	c.AbortWithStatusJSON(status, payload)
}

// WriteSuccess writes a 200 envelope without a meta block.
func WriteSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// WriteSuccessMeta writes a 200 envelope with a meta block attached.
func WriteSuccessMeta(c *gin.Context, message string, data, meta any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data, Meta: meta})
}

// WriteStatus writes a bare error envelope for transport-level rejections
// (wrong method, unknown route).
func WriteStatus(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorPayload{Error: true, StatusCode: status, Message: message})
}
