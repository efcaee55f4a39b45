// Package errors defines the error taxonomy shared by repositories and
// handlers. Repositories wrap these sentinels; the transport layer maps
// them to HTTP status codes.
package errors

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
	ErrDuplicate    = errors.New("resource already exists")
	ErrInternal     = errors.New("internal server error")
)
