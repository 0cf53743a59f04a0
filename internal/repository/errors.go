package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// Domain-level errors I prefer to bubble up from repository implementations.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("conflict")
	// ErrUnavailable covers connection and statement-preparation failures.
	// Callers map it to a generic 500; the raw driver message stays in the log.
	ErrUnavailable = errors.New("database unavailable")
)

// MySQL error numbers worth handling explicitly at higher layers.
const (
	mysqlErrDuplicateEntry = 1062
	mysqlErrFKViolation    = 1452
)

// MapMySQLError translates common MySQL error numbers to domain errors.
// Everything else passes through unchanged.
func MapMySQLError(err error) error {
	if err == nil {
		return nil
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrDuplicateEntry:
			return ErrAlreadyExists
		case mysqlErrFKViolation:
			return ErrConflict
		}
	}
	return err
}
