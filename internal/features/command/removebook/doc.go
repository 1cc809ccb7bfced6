// Package removebook implements the use case of removing a book from the
// catalog. Removal is legal in any lifecycle state; the produced BookRemoved
// event does not distinguish whether the book was available or borrowed.
package removebook
