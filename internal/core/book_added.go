package core

import (
	"time"

	"github.com/google/uuid"
)

const BookAddedEventType = "book-added"

type BookAdded struct {
	ID         EventIDString
	BookID     BookIDString
	ISBN       ISBNString
	Title      string
	OccurredAt OccurredAt
}

func BuildBookAdded(bookID BookID, book Book, occurredAt time.Time) BookAdded {
	return BookAdded{
		ID:         uuid.NewString(),
		BookID:     bookID.String(),
		ISBN:       book.ISBN.String(),
		Title:      book.Title.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BookAdded) EventType() string {
	return BookAddedEventType
}

func (e BookAdded) EventID() string {
	return e.ID
}

func (e BookAdded) AggregateID() string {
	return e.BookID
}

func (e BookAdded) HasOccurredAt() time.Time {
	return e.OccurredAt
}
