package core

import "errors"

var (
	// ErrMalformedValue is returned when a value type cannot be constructed
	// from the given raw input. It is raised at the boundary, before any
	// aggregate operation is attempted.
	ErrMalformedValue = errors.New("malformed value")

	// ErrInvalidStateTransition is returned when a lifecycle transition is
	// attempted that is not legal for the current BookState.
	ErrInvalidStateTransition = errors.New("invalid state transition")
)
