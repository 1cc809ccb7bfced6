package core

import (
	"time"

	"github.com/google/uuid"
)

const BookUpdatedEventType = "book-updated"

type BookUpdated struct {
	ID         EventIDString
	BookID     BookIDString
	ISBN       ISBNString
	Title      string
	OccurredAt OccurredAt
}

func BuildBookUpdated(bookID BookID, book Book, occurredAt time.Time) BookUpdated {
	return BookUpdated{
		ID:         uuid.NewString(),
		BookID:     bookID.String(),
		ISBN:       book.ISBN.String(),
		Title:      book.Title.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BookUpdated) EventType() string {
	return BookUpdatedEventType
}

func (e BookUpdated) EventID() string {
	return e.ID
}

func (e BookUpdated) AggregateID() string {
	return e.BookID
}

func (e BookUpdated) HasOccurredAt() time.Time {
	return e.OccurredAt
}
