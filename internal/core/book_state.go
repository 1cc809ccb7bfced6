package core

import (
	"time"
)

const (
	AvailableStateName = "available"
	BorrowedStateName  = "borrowed"
)

// BookState is the closed set of lifecycle states of a book.
// The unexported marker method seals the variant set to this package,
// so switches over the concrete types stay exhaustive by construction.
type BookState interface {
	StateName() string
	isBookState()
}

// Available is the state of a book that sits on the shelf.
type Available struct{}

func (Available) StateName() string { return AvailableStateName }
func (Available) isBookState()      {}

// Borrowed is the state of a book currently lent out.
type Borrowed struct {
	By Borrower
	On time.Time
}

func (Borrowed) StateName() string { return BorrowedStateName }
func (Borrowed) isBookState()      {}
