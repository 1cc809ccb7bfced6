package core

import (
	"time"

	"github.com/google/uuid"
)

const BookBorrowedEventType = "book-borrowed"

type BookBorrowed struct {
	ID         EventIDString
	BookID     BookIDString
	Borrower   BorrowerString
	OccurredAt OccurredAt
}

func BuildBookBorrowed(bookID BookID, by Borrower, occurredAt time.Time) BookBorrowed {
	return BookBorrowed{
		ID:         uuid.NewString(),
		BookID:     bookID.String(),
		Borrower:   by.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BookBorrowed) EventType() string {
	return BookBorrowedEventType
}

func (e BookBorrowed) EventID() string {
	return e.ID
}

func (e BookBorrowed) AggregateID() string {
	return e.BookID
}

func (e BookBorrowed) HasOccurredAt() time.Time {
	return e.OccurredAt
}
