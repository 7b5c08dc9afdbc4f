package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Connection errors
	ErrSelfReference     = errors.New("both sides of the operation are the same user")
	ErrConnectionExists  = errors.New("an active connection already exists for this pair")
	ErrInvalidTransition = errors.New("status change not allowed from current state")
	ErrInvalidDecision   = errors.New("decision must be accept or decline")
	ErrInvalidFilter     = errors.New("unknown status or role filter")

	// Message errors
	ErrNotConnected   = errors.New("users are not connected")
	ErrEmptyContent   = errors.New("content must not be empty")
	ErrContentTooLong = errors.New("content exceeds the allowed length")
	ErrInvalidContext = errors.New("unknown or malformed message context")
	ErrInvalidCursor  = errors.New("malformed pagination cursor")

	// Directory errors
	ErrEmptyName = errors.New("name must not be empty")
)
