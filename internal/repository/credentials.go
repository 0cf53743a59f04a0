package repository

import "errors"

// Credentials identify the tenant database a request operates on. They arrive
// in request headers and live exactly as long as the request.
type Credentials struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// ErrMissingCredentials marks an incomplete credential set; handlers map it
// to a 400 naming the required headers.
var ErrMissingCredentials = errors.New("database configuration incomplete")

// Validate checks the two fields with no server-side default.
func (c Credentials) Validate() error {
	if c.User == "" || c.Database == "" {
		return ErrMissingCredentials
	}
	return nil
}
