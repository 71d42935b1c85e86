package errors

import "errors"

// Shared application errors. Handlers map these to HTTP statuses in one place.
var (
	// ErrNotFound is returned when a record or resource does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized is returned for authentication failures (missing,
	// malformed or expired bearer token).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller lacks the required role.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation is returned for malformed or missing input fields.
	ErrValidation = errors.New("validation failed")

	// ErrRateLimited is returned when the attempt rate limit for a
	// (user, quiz) pair has been exceeded. An unavailable limit check is
	// not this error; the check degrades open (see service.GradingService).
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInternal is returned for store or infrastructure failures. The
	// underlying cause is logged server-side and never sent to the client.
	ErrInternal = errors.New("internal error")
)
