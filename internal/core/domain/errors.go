package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested event does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidParseLevel indicates a parse level outside [2,5].
	// This is a caller contract violation, rejected before any parsing work.
	ErrInvalidParseLevel = errors.New("parse level must be between 2 and 5")

	// ErrInvalidDocument indicates the document failed structure validation.
	// The wrapping error carries the validation reason.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrNotAddressable indicates an event kind outside the addressable
	// range; such events have no coordinate.
	ErrNotAddressable = errors.New("event is not addressable")

	// ErrStoreUnavailable indicates the local event archive is not configured.
	ErrStoreUnavailable = errors.New("event store unavailable")
)
