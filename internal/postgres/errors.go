package postgres

import "errors"

var (
	// ErrBookNotFound is returned when no row exists for the requested BookID.
	ErrBookNotFound = errors.New("book not found")

	// ErrConcurrentModification is returned when the compare-and-swap on the
	// version column affected no rows: the snapshot the caller transitioned
	// from is stale. The caller should re-read and reapply the transition.
	ErrConcurrentModification = errors.New("concurrent modification, version mismatch")

	// ErrEmptyTableNameSupplied is returned when an empty table name is configured.
	ErrEmptyTableNameSupplied = errors.New("empty table name supplied")

	// ErrInconsistentState is returned when a stored row cannot be mapped
	// back into a valid aggregate snapshot.
	ErrInconsistentState = errors.New("stored book row is inconsistent")
)
