package core

import (
	"errors"
	"strings"
)

var errEmptyBorrower = errors.New("borrower must not be empty")

// Borrower is the non-empty name of the person a book is lent to.
// Equality by value.
type Borrower struct {
	name string
}

// BuildBorrower trims the raw input and rejects empty names.
func BuildBorrower(raw string) (Borrower, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Borrower{}, errors.Join(ErrMalformedValue, errEmptyBorrower)
	}

	return Borrower{name: trimmed}, nil
}

func (b Borrower) String() string {
	return b.name
}

// Equals reports whether two Borrowers have the same name.
func (b Borrower) Equals(other Borrower) bool {
	return b.name == other.name
}
