package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/openshelf/book-catalog-go/internal/core"
	"github.com/openshelf/book-catalog-go/internal/features/command/addbook"
	"github.com/openshelf/book-catalog-go/internal/features/command/borrowbook"
	"github.com/openshelf/book-catalog-go/internal/features/command/removebook"
	"github.com/openshelf/book-catalog-go/internal/features/command/returnbook"
	"github.com/openshelf/book-catalog-go/internal/features/command/updatebook"
	"github.com/openshelf/book-catalog-go/internal/features/query/getbook"
	"github.com/openshelf/book-catalog-go/internal/postgres"
	"github.com/openshelf/book-catalog-go/internal/shell"
)

const correlationIDHeader = "X-Correlation-ID"

// The handler depends on one narrow interface per feature slice so tests can
// substitute fakes without touching storage or the message channel.
type (
	AddBookHandler interface {
		Handle(ctx context.Context, command addbook.Command) (core.BookRecord, error)
	}

	UpdateBookHandler interface {
		Handle(ctx context.Context, command updatebook.Command) (core.BookRecord, error)
	}

	RemoveBookHandler interface {
		Handle(ctx context.Context, command removebook.Command) error
	}

	BorrowBookHandler interface {
		Handle(ctx context.Context, command borrowbook.Command) (core.BookRecord, error)
	}

	ReturnBookHandler interface {
		Handle(ctx context.Context, command returnbook.Command) (core.BookRecord, error)
	}

	GetBookHandler interface {
		Handle(ctx context.Context, query getbook.Query) (core.BookRecord, error)
	}
)

// API routes catalog requests to the feature slices.
type API struct {
	addBook    AddBookHandler
	updateBook UpdateBookHandler
	removeBook RemoveBookHandler
	borrowBook BorrowBookHandler
	returnBook ReturnBookHandler
	getBook    GetBookHandler
	clock      func() time.Time
	logger     shell.Logger
}

// Option configures the API.
type Option func(api *API)

// WithClock overrides the wall clock, used by tests for deterministic
// event timestamps.
func WithClock(clock func() time.Time) Option {
	return func(api *API) {
		api.clock = clock
	}
}

// WithLogger supplies the logger, defaults to a no-op logger.
func WithLogger(logger shell.Logger) Option {
	return func(api *API) {
		api.logger = logger
	}
}

// NewAPI wires the feature slice handlers into an API.
func NewAPI(
	addBook AddBookHandler,
	updateBook UpdateBookHandler,
	removeBook RemoveBookHandler,
	borrowBook BorrowBookHandler,
	returnBook ReturnBookHandler,
	getBook GetBookHandler,
	opts ...Option,
) *API {

	api := &API{
		addBook:    addBook,
		updateBook: updateBook,
		removeBook: removeBook,
		borrowBook: borrowBook,
		returnBook: returnBook,
		getBook:    getBook,
		clock:      time.Now,
		logger:     shell.NoopLogger{},
	}

	for _, opt := range opts {
		opt(api)
	}

	return api
}

// Handler builds the HTTP routing table.
func (api *API) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /books", api.handleAddBook)
	mux.HandleFunc("GET /books/{id}", api.handleGetBook)
	mux.HandleFunc("PUT /books/{id}", api.handleUpdateBook)
	mux.HandleFunc("DELETE /books/{id}", api.handleRemoveBook)
	mux.HandleFunc("POST /books/{id}/borrow", api.handleBorrowBook)
	mux.HandleFunc("POST /books/{id}/return", api.handleReturnBook)

	return correlationMiddleware(mux)
}

// correlationMiddleware adopts the caller's correlation ID or assigns a fresh
// one, stores it in the request context, and echoes it in the response.
func correlationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if header := r.Header.Get(correlationIDHeader); header != "" {
			ctx = shell.WithCorrelationID(ctx, header)
		}

		ctx, correlationID := shell.EnsureCorrelationID(ctx)
		w.Header().Set(correlationIDHeader, correlationID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (api *API) handleAddBook(w http.ResponseWriter, r *http.Request) {
	var request addBookRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.writeError(w, r, errors.Join(core.ErrMalformedValue, err))

		return
	}

	isbn, err := core.BuildISBN13(request.ISBN)
	if err != nil {
		api.writeError(w, r, err)

		return
	}

	title, err := core.BuildTitle(request.Title)
	if err != nil {
		api.writeError(w, r, err)

		return
	}

	record, err := api.addBook.Handle(r.Context(), addbook.BuildCommand(isbn, title, api.clock()))
	if err != nil {
		api.writeError(w, r, err)

		return
	}

	api.writeJSON(w, http.StatusCreated, bookResponseFrom(record))
}

func (api *API) handleGetBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := core.ParseBookID(r.PathValue("id"))
	if err != nil {
		api.writeError(w, r, err)

		return
	}

	record, err := api.getBook.Handle(r.Context(), getbook.BuildQuery(bookID))
	if err != nil {
		api.writeError(w, r, err)

		return
	}

	api.writeJSON(w, http.StatusOK, bookResponseFrom(record))
}

func (api *API) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := core.ParseBookID(r.PathValue("id"))
	if err != nil {
		api.writeError(w, r, err)

		return
	}

	var request updateBookRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.writeError(w, r, errors.Join(core.ErrMalformedValue, err))

		return
	}

	isbn, err := core.BuildISBN13(request.ISBN)
	if err != nil {
		api.writeError(w, r, err)

		return
	}

	title, err := core.BuildTitle(request.Title)
	if err != nil {
		api.writeError(w, r, err)

		return
	}

	newBook := core.BuildBook(isbn, title)

	record, err := api.updateBook.Handle(r.Context(), updatebook.BuildCommand(bookID, newBook, api.clock()))
	if err != nil {
		api.writeError(w, r, err)

		return
	}

	api.writeJSON(w, http.StatusOK, bookResponseFrom(record))
}

func (api *API) handleRemoveBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := core.ParseBookID(r.PathValue("id"))
	if err != nil {
		api.writeError(w, r, err)

		return
	}

	if err = api.removeBook.Handle(r.Context(), removebook.BuildCommand(bookID, api.clock())); err != nil {
		api.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api *API) handleBorrowBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := core.ParseBookID(r.PathValue("id"))
	if err != nil {
		api.writeError(w, r, err)

		return
	}

	var request borrowBookRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.writeError(w, r, errors.Join(core.ErrMalformedValue, err))

		return
	}

	borrower, err := core.BuildBorrower(request.Borrower)
	if err != nil {
		api.writeError(w, r, err)

		return
	}

	record, err := api.borrowBook.Handle(r.Context(), borrowbook.BuildCommand(bookID, borrower, api.clock()))
	if err != nil {
		api.writeError(w, r, err)

		return
	}

	api.writeJSON(w, http.StatusOK, bookResponseFrom(record))
}

func (api *API) handleReturnBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := core.ParseBookID(r.PathValue("id"))
	if err != nil {
		api.writeError(w, r, err)

		return
	}

	record, err := api.returnBook.Handle(r.Context(), returnbook.BuildCommand(bookID, api.clock()))
	if err != nil {
		api.writeError(w, r, err)

		return
	}

	api.writeJSON(w, http.StatusOK, bookResponseFrom(record))
}

func (api *API) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		api.logger.Error("writing response body failed", shell.LogAttrError, err)
	}
}

// writeError maps the error taxonomy onto HTTP status codes.
func (api *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, core.ErrMalformedValue):
		status = http.StatusBadRequest
	case errors.Is(err, postgres.ErrBookNotFound):
		status = http.StatusNotFound
	case errors.Is(err, core.ErrInvalidStateTransition):
		status = http.StatusConflict
	case errors.Is(err, postgres.ErrConcurrentModification):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		correlationID, _ := shell.CorrelationIDFrom(r.Context())
		api.logger.Error("request failed",
			shell.LogAttrError, err,
			shell.LogAttrCorrelationID, correlationID,
		)
	}

	api.writeJSON(w, status, errorResponse{Error: err.Error()})
}
