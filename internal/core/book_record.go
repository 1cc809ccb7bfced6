package core

import (
	"fmt"
	"time"
)

// BookRecord is the aggregate root of the book lifecycle:
// identity, catalog metadata, current state and a version counter.
//
// The version increments on every successful transition and is used by the
// persistence adapter for optimistic-concurrency detection (compare-and-swap);
// the aggregate itself only increments and returns it.
type BookRecord struct {
	ID      BookID
	Book    Book
	State   BookState
	Version uint
}

// CreateBook creates a new aggregate with a fresh BookID in state Available
// and produces the BookAdded event. Always succeeds given valid value types.
func CreateBook(isbn ISBN13, title Title, occurredAt time.Time) (BookRecord, BookAdded) {
	record := BookRecord{
		ID:      NewBookID(),
		Book:    BuildBook(isbn, title),
		State:   Available{},
		Version: 1,
	}

	return record, BuildBookAdded(record.ID, record.Book, occurredAt)
}

// Borrow transitions the book from Available to Borrowed.
// Returns ErrInvalidStateTransition if the book is not Available.
func (r BookRecord) Borrow(by Borrower, occurredAt time.Time) (BookRecord, BookBorrowed, error) {
	if _, ok := r.State.(Available); !ok {
		return r, BookBorrowed{}, transitionError("borrow", r.State)
	}

	next := r
	next.State = Borrowed{By: by, On: ToOccurredAt(occurredAt)}
	next.Version++

	return next, BuildBookBorrowed(r.ID, by, occurredAt), nil
}

// Return transitions the book from Borrowed back to Available.
// Returns ErrInvalidStateTransition if the book is not Borrowed.
func (r BookRecord) Return(occurredAt time.Time) (BookRecord, BookReturned, error) {
	borrowed, ok := r.State.(Borrowed)
	if !ok {
		return r, BookReturned{}, transitionError("return", r.State)
	}

	next := r
	next.State = Available{}
	next.Version++

	return next, BuildBookReturned(r.ID, borrowed.By, occurredAt), nil
}

// UpdateBook replaces the catalog metadata. Legal in any state;
// the lifecycle state is preserved unchanged.
func (r BookRecord) UpdateBook(newBook Book, occurredAt time.Time) (BookRecord, BookUpdated) {
	next := r
	next.Book = newBook
	next.Version++

	return next, BuildBookUpdated(r.ID, newBook, occurredAt)
}

// Remove signals that the aggregate may be discarded. Legal in any state:
// no domain rule forbids removing a borrowed book, and the produced event
// does not distinguish the state the book was removed in.
// No further transitions are legal after removal.
func (r BookRecord) Remove(occurredAt time.Time) BookRemoved {
	return BuildBookRemoved(r.ID, occurredAt)
}

func transitionError(operation string, state BookState) error {
	return fmt.Errorf("%w: cannot %s a book in state %q", ErrInvalidStateTransition, operation, state.StateName())
}
