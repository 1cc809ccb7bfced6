package core

import (
	"errors"

	"github.com/google/uuid"
)

// BookID is the opaque unique identifier of a book aggregate.
// It is generated once at creation and used as the join key across
// all events for that book.
type BookID struct {
	value uuid.UUID
}

// NewBookID generates a fresh BookID.
func NewBookID() BookID {
	return BookID{value: uuid.New()}
}

// ParseBookID builds a BookID from its string representation.
func ParseBookID(raw string) (BookID, error) {
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return BookID{}, errors.Join(ErrMalformedValue, err)
	}

	return BookID{value: parsed}, nil
}

func (id BookID) String() string {
	return id.value.String()
}

// Equals reports whether two BookIDs identify the same aggregate.
func (id BookID) Equals(other BookID) bool {
	return id.value == other.value
}
