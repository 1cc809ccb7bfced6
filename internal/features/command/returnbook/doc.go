// Package returnbook implements the use case of returning a borrowed book.
//
// The transition is legal only from state Borrowed; returning an available
// book fails with core.ErrInvalidStateTransition and produces no event.
package returnbook
