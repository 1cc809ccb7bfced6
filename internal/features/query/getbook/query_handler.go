// Package getbook implements the read side for a single catalog entry.
package getbook

import (
	"context"

	"github.com/openshelf/book-catalog-go/internal/core"
)

// Query encapsulates the parameters to retrieve one book.
type Query struct {
	BookID core.BookID
}

// QueryType returns the type identifier for this query, used for logging.
func (q Query) QueryType() string {
	return "GetBook"
}

// BuildQuery creates a new Query for the given BookID.
func BuildQuery(bookID core.BookID) Query {
	return Query{BookID: bookID}
}

// BookRepository defines the persistence operations needed by this query.
type BookRepository interface {
	GetBook(ctx context.Context, id core.BookID) (core.BookRecord, error)
}

// QueryHandler retrieves the current snapshot of a book.
type QueryHandler struct {
	repository BookRepository
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(repository BookRepository) QueryHandler {
	return QueryHandler{repository: repository}
}

// Handle loads the snapshot; postgres.ErrBookNotFound passes through
// untouched for the boundary to map.
func (h QueryHandler) Handle(ctx context.Context, query Query) (core.BookRecord, error) {
	return h.repository.GetBook(ctx, query.BookID)
}
