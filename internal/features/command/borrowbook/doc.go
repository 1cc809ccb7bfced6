// Package borrowbook implements the use case of lending a book to a borrower.
//
// The transition is legal only from state Available; attempting it on a
// borrowed book fails with core.ErrInvalidStateTransition and produces no
// event. A stale snapshot is retried with exponential backoff.
package borrowbook
