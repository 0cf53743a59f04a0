package response_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/posline/pos-report-service/internal/repository"
	"github.com/posline/pos-report-service/internal/service"
	"github.com/posline/pos-report-service/pkg/response"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name     string
		in       error
		wantCode int
		wantMsg  string
	}{
		{
			"status error passthrough",
			service.NewStatusError(401, "Invalid email or password."),
			401, "Invalid email or password.",
		},
		{
			"invalid input joins field messages",
			service.NewInvalidInputError([]service.FieldError{
				{Field: "start_date", Message: "Invalid start date format. Use YYYY-MM-DD"},
			}),
			400, "Invalid start date format. Use YYYY-MM-DD",
		},
		{
			"missing credentials names headers",
			repository.ErrMissingCredentials,
			400, "Database configuration incomplete. Required: X-DB-User and X-DB-Name",
		},
		{"not found", repository.ErrNotFound, 404, "Not found"},
		{"already exists", repository.ErrAlreadyExists, 409, "Resource already exists"},
		{"conflict", repository.ErrConflict, 409, "Conflict with related data"},
		{
			"unavailable hides details",
			fmt.Errorf("%w: dial tcp 10.0.0.5:3306: connection refused", repository.ErrUnavailable),
			500, "An internal server error occurred. Please try again later.",
		},
		{
			"unknown hides details",
			errors.New("sql: converting argument"),
			500, "An internal server error occurred. Please try again later.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, payload := response.MapError(tc.in)
			if code != tc.wantCode || payload.Message != tc.wantMsg {
				t.Fatalf("got (%d,%q) want (%d,%q)", code, payload.Message, tc.wantCode, tc.wantMsg)
			}
			if !payload.Error || payload.StatusCode != tc.wantCode {
				t.Fatalf("body must mirror the status: %+v", payload)
			}
		})
	}
}

func TestMapError_NeverEchoesDriverText(t *testing.T) {
	raw := fmt.Errorf("%w: Access denied for user 'root'@'10.0.0.8'", repository.ErrUnavailable)
	_, payload := response.MapError(raw)
	if payload.Message != "An internal server error occurred. Please try again later." {
		t.Fatalf("driver text leaked: %q", payload.Message)
	}
}
