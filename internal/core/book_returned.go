package core

import (
	"time"

	"github.com/google/uuid"
)

const BookReturnedEventType = "book-returned"

type BookReturned struct {
	ID         EventIDString
	BookID     BookIDString
	Borrower   BorrowerString
	OccurredAt OccurredAt
}

func BuildBookReturned(bookID BookID, by Borrower, occurredAt time.Time) BookReturned {
	return BookReturned{
		ID:         uuid.NewString(),
		BookID:     bookID.String(),
		Borrower:   by.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BookReturned) EventType() string {
	return BookReturnedEventType
}

func (e BookReturned) EventID() string {
	return e.ID
}

func (e BookReturned) AggregateID() string {
	return e.BookID
}

func (e BookReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}
