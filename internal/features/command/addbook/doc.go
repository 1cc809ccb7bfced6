// Package addbook implements the use case of adding a new book to the catalog.
//
// A fresh aggregate is created in state Available, persisted, and the
// produced BookAdded event is dispatched to the message channel.
package addbook
