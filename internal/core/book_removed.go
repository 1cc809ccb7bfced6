package core

import (
	"time"

	"github.com/google/uuid"
)

const BookRemovedEventType = "book-removed"

type BookRemoved struct {
	ID         EventIDString
	BookID     BookIDString
	OccurredAt OccurredAt
}

func BuildBookRemoved(bookID BookID, occurredAt time.Time) BookRemoved {
	return BookRemoved{
		ID:         uuid.NewString(),
		BookID:     bookID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BookRemoved) EventType() string {
	return BookRemovedEventType
}

func (e BookRemoved) EventID() string {
	return e.ID
}

func (e BookRemoved) AggregateID() string {
	return e.BookID
}

func (e BookRemoved) HasOccurredAt() time.Time {
	return e.OccurredAt
}
