package slacknotifier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/book-catalog-go/internal/core"
	"github.com/openshelf/book-catalog-go/internal/shell"
	"github.com/openshelf/book-catalog-go/internal/slacknotifier"
)

type posterSpy struct {
	channelIDs []string
	messages   int
	failWith   error
}

func (s *posterSpy) PostMessageContext(
	_ context.Context, channelID string, _ ...slack.MsgOption,
) (string, string, error) {

	if s.failWith != nil {
		return "", "", s.failWith
	}

	s.channelIDs = append(s.channelIDs, channelID)
	s.messages++

	return channelID, "", nil
}

func givenEnvelope(t *testing.T, event core.DomainEvent) shell.EventEnvelope {
	t.Helper()

	envelope, err := shell.BuildEventEnvelope(event, shell.MetadataForDispatch(context.Background(), event))
	require.NoError(t, err)

	return envelope
}

func Test_FormatMessage_PerEventKind(t *testing.T) {
	// arrange
	isbn, err := core.BuildISBN13("9780132350884")
	require.NoError(t, err)

	title, err := core.BuildTitle("Clean Code")
	require.NoError(t, err)

	borrower, err := core.BuildBorrower("Uncle Bob")
	require.NoError(t, err)

	bookID := core.NewBookID()
	book := core.BuildBook(isbn, title)
	now := time.Now()

	tests := []struct {
		name     string
		event    core.DomainEvent
		expected string
	}{
		{
			name:     "book_added",
			event:    core.BuildBookAdded(bookID, book, now),
			expected: `New book in the catalog: "Clean Code" (ISBN 9780132350884)`,
		},
		{
			name:     "book_updated",
			event:    core.BuildBookUpdated(bookID, book, now),
			expected: `Catalog entry updated: "Clean Code" (ISBN 9780132350884)`,
		},
		{
			name:     "book_removed",
			event:    core.BuildBookRemoved(bookID, now),
			expected: "Book " + bookID.String() + " was removed from the catalog",
		},
		{
			name:     "book_borrowed",
			event:    core.BuildBookBorrowed(bookID, borrower, now),
			expected: "Book " + bookID.String() + " was borrowed by Uncle Bob",
		},
		{
			name:     "book_returned",
			event:    core.BuildBookReturned(bookID, borrower, now),
			expected: "Book " + bookID.String() + " was returned by Uncle Bob",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, slacknotifier.FormatMessage(tc.event))
		})
	}
}

func Test_HandleEnvelope_PostsToTheConfiguredChannel(t *testing.T) {
	// arrange
	spy := &posterSpy{}
	notifier := slacknotifier.New(spy, "C12345", nil)
	envelope := givenEnvelope(t, core.BuildBookRemoved(core.NewBookID(), time.Now()))

	// act
	err := notifier.HandleEnvelope(context.Background(), envelope)

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{"C12345"}, spy.channelIDs)
}

func Test_HandleEnvelope_Fails_OnUnknownEventType(t *testing.T) {
	// arrange
	spy := &posterSpy{}
	notifier := slacknotifier.New(spy, "C12345", nil)
	envelope := givenEnvelope(t, core.BuildBookRemoved(core.NewBookID(), time.Now()))
	envelope.EventType = "book-shredded"

	// act
	err := notifier.HandleEnvelope(context.Background(), envelope)

	// assert
	require.Error(t, err)
	assert.Zero(t, spy.messages)
}

func Test_HandleEnvelope_PropagatesPostFailures(t *testing.T) {
	// arrange
	postErr := errors.New("channel_not_found")
	notifier := slacknotifier.New(&posterSpy{failWith: postErr}, "C12345", nil)
	envelope := givenEnvelope(t, core.BuildBookRemoved(core.NewBookID(), time.Now()))

	// act
	err := notifier.HandleEnvelope(context.Background(), envelope)

	// assert
	assert.ErrorIs(t, err, postErr)
}
