package core

import (
	"time"
)

type BookIDString = string
type ISBNString = string
type EventIDString = string
type BorrowerString = string
type OccurredAt = time.Time

// ToOccurredAt normalizes a timestamp for use in domain events:
// UTC, truncated to microseconds so it survives serialization round-trips.
func ToOccurredAt(t time.Time) OccurredAt {
	return t.UTC().Truncate(time.Microsecond)
}
