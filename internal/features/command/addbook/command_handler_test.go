package addbook_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/book-catalog-go/internal/core"
	"github.com/openshelf/book-catalog-go/internal/features/command/addbook"
	"github.com/openshelf/book-catalog-go/internal/shell"
)

type repositoryFake struct {
	saved    []core.BookRecord
	failWith error
}

func (f *repositoryFake) SaveBook(_ context.Context, record core.BookRecord) error {
	if f.failWith != nil {
		return f.failWith
	}

	f.saved = append(f.saved, record)

	return nil
}

type dispatcherSpy struct {
	dispatched core.DomainEvents
	failWith   error
}

func (s *dispatcherSpy) Dispatch(_ context.Context, event core.DomainEvent) error {
	if s.failWith != nil {
		return s.failWith
	}

	s.dispatched = append(s.dispatched, event)

	return nil
}

func givenCommand(t *testing.T) addbook.Command {
	t.Helper()

	isbn, err := core.BuildISBN13("9780132350884")
	require.NoError(t, err)

	title, err := core.BuildTitle("Clean Code")
	require.NoError(t, err)

	return addbook.BuildCommand(isbn, title, time.Now())
}

func Test_AddBook_PersistsTheRecord_AndDispatchesBookAdded(t *testing.T) {
	// arrange
	repository := &repositoryFake{}
	dispatcher := &dispatcherSpy{}
	handler := addbook.NewCommandHandler(repository, dispatcher)

	// act
	record, err := handler.Handle(context.Background(), givenCommand(t))

	// assert
	require.NoError(t, err)
	assert.Equal(t, uint(1), record.Version)
	assert.IsType(t, core.Available{}, record.State)

	require.Len(t, repository.saved, 1)
	assert.True(t, repository.saved[0].ID.Equals(record.ID))

	require.Len(t, dispatcher.dispatched, 1)
	event, ok := dispatcher.dispatched[0].(core.BookAdded)
	require.True(t, ok)
	assert.Equal(t, record.ID.String(), event.BookID)
	assert.Equal(t, "Clean Code", event.Title)
}

func Test_AddBook_Fails_WhenPersistenceFails_AndDispatchesNothing(t *testing.T) {
	// arrange
	storageErr := errors.New("connection refused")
	repository := &repositoryFake{failWith: storageErr}
	dispatcher := &dispatcherSpy{}
	handler := addbook.NewCommandHandler(repository, dispatcher)

	// act
	_, err := handler.Handle(context.Background(), givenCommand(t))

	// assert
	require.Error(t, err)
	assert.ErrorIs(t, err, storageErr)
	assert.Empty(t, dispatcher.dispatched)
}

func Test_AddBook_Succeeds_EvenWhenDispatchFails(t *testing.T) {
	// arrange
	repository := &repositoryFake{}
	dispatcher := &dispatcherSpy{failWith: shell.ErrChannelUnavailable}
	handler := addbook.NewCommandHandler(repository, dispatcher)

	// act
	record, err := handler.Handle(context.Background(), givenCommand(t))

	// assert
	require.NoError(t, err)
	assert.Len(t, repository.saved, 1)
	assert.NotEmpty(t, record.ID.String())
}

func Test_AddBook_AssignsAFreshBookID_PerBook(t *testing.T) {
	// arrange
	repository := &repositoryFake{}
	handler := addbook.NewCommandHandler(repository, &dispatcherSpy{})

	// act
	first, err := handler.Handle(context.Background(), givenCommand(t))
	require.NoError(t, err)

	second, err := handler.Handle(context.Background(), givenCommand(t))
	require.NoError(t, err)

	// assert: the same ISBN may exist as multiple physical copies
	assert.False(t, first.ID.Equals(second.ID))
}
