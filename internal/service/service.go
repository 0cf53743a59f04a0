// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// StatusError carries an HTTP status and a client-safe message. It is the one
// place error kind and transport status meet; everything propagates it up to
// the response-writing boundary instead of branching on strings.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string { return e.Message }

func NewStatusError(status int, message string) *StatusError {
	return &StatusError{Status: status, Message: message}
}

// ListParams is raw page/per_page input before normalization.
type ListParams struct {
	Page    int
	PerPage int
}

// AuthService defines login, password and profile use cases.
type AuthService interface {
	Login(ctx context.Context, creds repository.Credentials, email, password string) (model.LoginResult, error)
	UpdatePassword(ctx context.Context, creds repository.Credentials, in PasswordUpdate) (model.PasswordChange, error)
	UpdateProfile(ctx context.Context, creds repository.Credentials, in ProfileUpdate) (model.AuthUser, error)
}

type PasswordUpdate struct {
	UserID            int64
	CurrentPassword   string
	NewPassword       string
	RetypeNewPassword string
}

// ProfileUpdate carries a partial update; empty strings mean "leave alone".
type ProfileUpdate struct {
	UserID int64
	Name   string
	Email  string
}

// ActivityLogService produces the activity log report.
type ActivityLogService interface {
	List(ctx context.Context, creds repository.Credentials, q repository.ActivityLogQuery, lp ListParams) (ActivityLogResult, ActivityLogMeta, error)
}

// SyncLogService produces the synchronization log report.
type SyncLogService interface {
	List(ctx context.Context, creds repository.Credentials, q repository.SyncLogQuery, lp ListParams) (SyncLogResult, SyncLogMeta, error)
}

type SaleService interface {
	List(ctx context.Context, creds repository.Credentials, q repository.SaleQuery, lp ListParams) (ListResult[model.Sale, repository.SaleQuery], error)
}

type IncomeService interface {
	List(ctx context.Context, creds repository.Credentials, q repository.IncomeQuery, lp ListParams) (ListResult[model.Income, repository.IncomeQuery], error)
}

type SupplierService interface {
	List(ctx context.Context, creds repository.Credentials, q repository.SupplierQuery, lp ListParams) (ListResult[model.Supplier, repository.SupplierQuery], error)
}

type ProductService interface {
	List(ctx context.Context, creds repository.Credentials, q repository.ProductQuery, lp ListParams) (ListResult[model.Product, repository.ProductQuery], error)
}

type MovementService interface {
	List(ctx context.Context, creds repository.Credentials, q repository.MovementQuery, lp ListParams) (MovementResult, error)
}

type CompanyService interface {
	List(ctx context.Context, creds repository.Credentials, q repository.CompanyQuery, lp ListParams) (ListResult[model.Company, repository.CompanyQuery], error)
}
