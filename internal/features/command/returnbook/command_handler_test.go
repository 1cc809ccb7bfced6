package returnbook_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/book-catalog-go/internal/core"
	"github.com/openshelf/book-catalog-go/internal/features/command/returnbook"
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

func Test_ReturnBook_Succeeds_AndDispatchesBookReturned(t *testing.T) {
	// arrange
	record := givenBorrowedBook(t)
	repository := &repositoryFake{record: record}
	dispatcher := &dispatcherSpy{}
	handler := returnbook.NewCommandHandler(repository, dispatcher)

	// act
	updated, err := handler.Handle(
		context.Background(),
		returnbook.BuildCommand(record.ID, time.Now()),
	)

	// assert
	require.NoError(t, err)
	assert.IsType(t, core.Available{}, updated.State)
	assert.Equal(t, record.Version+1, updated.Version)

	require.Len(t, dispatcher.dispatched, 1)
	event, ok := dispatcher.dispatched[0].(core.BookReturned)
	require.True(t, ok)
	assert.Equal(t, "Uncle Bob", event.Borrower)
}

func Test_ReturnBook_Fails_WhenNotBorrowed(t *testing.T) {
	// arrange
	record := givenBorrowedBook(t)
	available, _, err := record.Return(time.Now())
	require.NoError(t, err)

	repository := &repositoryFake{record: available}
	dispatcher := &dispatcherSpy{}
	handler := returnbook.NewCommandHandler(repository, dispatcher)

	// act
	_, err = handler.Handle(
		context.Background(),
		returnbook.BuildCommand(record.ID, time.Now()),
	)

	// assert
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidStateTransition)
	assert.Empty(t, dispatcher.dispatched)
}

func Test_ReturnBook_RetriesConflicts_AndDispatchesExactlyOnce(t *testing.T) {
	// arrange
	record := givenBorrowedBook(t)
	repository := &repositoryFake{record: record, conflictsLeft: 1}
	dispatcher := &dispatcherSpy{}
	handler := returnbook.NewCommandHandler(
		repository,
		dispatcher,
		returnbook.WithRetryOptions(shell.WithBaseDelay(time.Millisecond)),
	)

	// act
	updated, err := handler.Handle(
		context.Background(),
		returnbook.BuildCommand(record.ID, time.Now()),
	)

	// assert
	require.NoError(t, err)
	assert.IsType(t, core.Available{}, updated.State)
	assert.Len(t, repository.updated, 1)
	assert.Len(t, dispatcher.dispatched, 1)
}
