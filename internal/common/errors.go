// Package common defines shared constants and sentinel errors used across
// Plateshare components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Credential errors. Password digests are write-only; any attempt to
	// read a password back through the entity fails with this error.
	ErrPasswordWriteOnly = errors.New("password hashes may not be viewed")

	// Session lifecycle errors.
	ErrSessionExpired = errors.New("session expired")
)
