package updatebook_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/book-catalog-go/internal/core"
	"github.com/openshelf/book-catalog-go/internal/features/command/updatebook"
	"github.com/openshelf/book-catalog-go/internal/postgres"
	"github.com/openshelf/book-catalog-go/internal/shell"
)

type repositoryFake struct {
	record        core.BookRecord
	conflictsLeft int
	updated       []core.BookRecord
}

func (f *repositoryFake) GetBook(_ context.Context, id core.BookID) (core.BookRecord, error) {
	if !f.record.ID.Equals(id) {
		return core.BookRecord{}, postgres.ErrBookNotFound
	}

	return f.record, nil
}

func (f *repositoryFake) UpdateBook(_ context.Context, record core.BookRecord) error {
	if f.conflictsLeft > 0 {
		f.conflictsLeft--

		return postgres.ErrConcurrentModification
	}

	f.record = record
	f.updated = append(f.updated, record)

	return nil
}

type dispatcherSpy struct {
	dispatched core.DomainEvents
}

func (s *dispatcherSpy) Dispatch(_ context.Context, event core.DomainEvent) error {
	s.dispatched = append(s.dispatched, event)

	return nil
}

func givenBorrowedBook(t *testing.T) core.BookRecord {
	t.Helper()

	isbn, err := core.BuildISBN13("9780132350884")
	require.NoError(t, err)

	title, err := core.BuildTitle("Clean Code")
	require.NoError(t, err)

	borrower, err := core.BuildBorrower("Uncle Bob")
	require.NoError(t, err)

	record, _ := core.CreateBook(isbn, title, time.Now())

	borrowed, _, err := record.Borrow(borrower, time.Now())
	require.NoError(t, err)

	return borrowed
}

func givenNewBook(t *testing.T) core.Book {
	t.Helper()

	isbn, err := core.BuildISBN13("9780134190440")
	require.NoError(t, err)

	title, err := core.BuildTitle("The Go Programming Language")
	require.NoError(t, err)

	return core.BuildBook(isbn, title)
}

func Test_UpdateBook_ReplacesMetadata_InAnyState(t *testing.T) {
	// arrange
	record := givenBorrowedBook(t)
	repository := &repositoryFake{record: record}
	dispatcher := &dispatcherSpy{}
	handler := updatebook.NewCommandHandler(repository, dispatcher)
	newBook := givenNewBook(t)

	// act
	updated, err := handler.Handle(
		context.Background(),
		updatebook.BuildCommand(record.ID, newBook, time.Now()),
	)

	// assert
	require.NoError(t, err)
	assert.True(t, updated.Book.Equals(newBook))
	assert.IsType(t, core.Borrowed{}, updated.State)
	assert.Equal(t, record.Version+1, updated.Version)

	require.Len(t, dispatcher.dispatched, 1)
	event, ok := dispatcher.dispatched[0].(core.BookUpdated)
	require.True(t, ok)
	assert.Equal(t, "The Go Programming Language", event.Title)
}

func Test_UpdateBook_Fails_WhenBookDoesNotExist(t *testing.T) {
	// arrange
	repository := &repositoryFake{record: givenBorrowedBook(t)}
	dispatcher := &dispatcherSpy{}
	handler := updatebook.NewCommandHandler(repository, dispatcher)

	// act
	_, err := handler.Handle(
		context.Background(),
		updatebook.BuildCommand(core.NewBookID(), givenNewBook(t), time.Now()),
	)

	// assert
	require.Error(t, err)
	assert.ErrorIs(t, err, postgres.ErrBookNotFound)
	assert.Empty(t, dispatcher.dispatched)
}

func Test_UpdateBook_RetriesConflicts_AndDispatchesExactlyOnce(t *testing.T) {
	// arrange
	record := givenBorrowedBook(t)
	repository := &repositoryFake{record: record, conflictsLeft: 1}
	dispatcher := &dispatcherSpy{}
	handler := updatebook.NewCommandHandler(
		repository,
		dispatcher,
		updatebook.WithRetryOptions(shell.WithBaseDelay(time.Millisecond)),
	)

	// act
	_, err := handler.Handle(
		context.Background(),
		updatebook.BuildCommand(record.ID, givenNewBook(t), time.Now()),
	)

	// assert
	require.NoError(t, err)
	assert.Len(t, repository.updated, 1)
	assert.Len(t, dispatcher.dispatched, 1)
}
