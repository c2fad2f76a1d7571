// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation
	// (duplicate email/employee id) or an already-satisfied conditional update.
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized indicates failed authentication. Login returns it for
	// unknown email and wrong password alike so callers cannot enumerate accounts.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken covers malformed, forged and expired tokens uniformly.
	ErrInvalidToken = errors.New("invalid token")

	// ErrValidation indicates a rejected request payload (bad upload, missing fields).
	ErrValidation = errors.New("validation failed")
)
