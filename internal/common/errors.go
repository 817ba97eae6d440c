// Package common defines shared constants and sentinel errors used across
// Storekeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Repository/lookup errors.
	ErrNotFound = errors.New("not found")

	// Validation errors (client-side, pre-submission).
	ErrValidation = errors.New("validation failed")
)
