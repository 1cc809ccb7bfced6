package core

import (
	"time"
)

// DomainEvents is a slice of DomainEvent instances
type DomainEvents = []DomainEvent

// DomainEvent represents a committed state transition of a book aggregate.
// Events are immutable, created exactly once per successful transition,
// and never mutated or replayed with a different identity.
type DomainEvent interface {
	// EventType returns the stable lowercase hyphenated identifier of the
	// event kind, also used as the routing key when the event is dispatched.
	EventType() string
	// EventID returns the unique identifier of this event instance.
	// It is freshly generated per instance and never derived from business
	// data, so downstream consumers can deduplicate deliveries with it.
	EventID() string
	// AggregateID returns the BookID of the subject aggregate.
	AggregateID() string
	// HasOccurredAt returns the moment the business transition was committed,
	// not the moment of dispatch.
	HasOccurredAt() time.Time
}

// AllEventTypes enumerates the closed set of event kinds.
// Type strings must match [a-z]+(-[a-z]+)* and be pairwise distinct;
// this is a startup/test invariant, not runtime-checked.
func AllEventTypes() []string {
	return []string{
		BookAddedEventType,
		BookUpdatedEventType,
		BookRemovedEventType,
		BookBorrowedEventType,
		BookReturnedEventType,
	}
}
