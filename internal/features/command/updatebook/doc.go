// Package updatebook implements the use case of replacing a book's catalog
// metadata. The update is legal in any lifecycle state and preserves it.
package updatebook
