// Package common defines shared constants and sentinel errors used across
// the TruthGuard client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Transport-level errors.
	ErrorUnavailable = errors.New("service unavailable")

	// Client-detected input errors. Wrapped with a specific message at the
	// point of detection; matched with errors.Is at the UI layer.
	ErrorValidation = errors.New("validation error")

	// ErrorStaleResponse marks a response that arrived after the session it
	// was issued under had already ended. Never surfaced to the user.
	ErrorStaleResponse = errors.New("stale response")
)
