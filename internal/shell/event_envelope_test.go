package shell_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/book-catalog-go/internal/core"
	"github.com/openshelf/book-catalog-go/internal/shell"
)

func givenEnvelopeFor(t *testing.T, event core.DomainEvent) shell.EventEnvelope {
	t.Helper()

	ctx := shell.WithCorrelationID(context.Background(), "abc-123")

	envelope, err := shell.BuildEventEnvelope(event, shell.MetadataForDispatch(ctx, event))
	require.NoError(t, err)

	return envelope
}

func Test_BuildEventEnvelope_CarriesEventIdentityAndMetadata(t *testing.T) {
	// arrange
	bookID := core.NewBookID()
	event := core.BuildBookRemoved(bookID, time.Now())

	// act
	envelope := givenEnvelopeFor(t, event)

	// assert
	assert.Equal(t, core.BookRemovedEventType, envelope.EventType)
	assert.Equal(t, event.EventID(), envelope.EventID)
	assert.Equal(t, bookID.String(), envelope.BookID)
	assert.Equal(t, event.HasOccurredAt(), envelope.OccurredAt)
	assert.Equal(t, "abc-123", envelope.Metadata.CorrelationID)
	assert.Equal(t, event.EventID(), envelope.Metadata.CausationID)
}

func Test_EventEnvelope_SurvivesAJSONRoundTrip_ForEveryEventKind(t *testing.T) {
	// arrange
	bookID := core.NewBookID()
	book := core.BuildBook(givenBookValues(t))
	borrower := givenShellBorrower(t)
	occurredAt := time.Date(2025, 6, 1, 12, 0, 0, 123456000, time.UTC)

	events := core.DomainEvents{
		core.BuildBookAdded(bookID, book, occurredAt),
		core.BuildBookUpdated(bookID, book, occurredAt),
		core.BuildBookRemoved(bookID, occurredAt),
		core.BuildBookBorrowed(bookID, borrower, occurredAt),
		core.BuildBookReturned(bookID, borrower, occurredAt),
	}

	for _, event := range events {
		t.Run(event.EventType(), func(t *testing.T) {
			// act
			envelope := givenEnvelopeFor(t, event)

			body, err := envelope.ToJSON()
			require.NoError(t, err)

			decodedEnvelope, err := shell.EventEnvelopeFromJSON(body)
			require.NoError(t, err)

			decodedEvent, err := shell.DomainEventFrom(decodedEnvelope)
			require.NoError(t, err)

			// assert
			assert.Equal(t, event, decodedEvent)
			assert.Equal(t, envelope.Metadata, decodedEnvelope.Metadata)
		})
	}
}

func Test_DomainEventFrom_Fails_OnUnknownEventType(t *testing.T) {
	// arrange
	envelope := givenEnvelopeFor(t, core.BuildBookRemoved(core.NewBookID(), time.Now()))
	envelope.EventType = "book-shredded"

	// act
	_, err := shell.DomainEventFrom(envelope)

	// assert
	require.Error(t, err)
	assert.ErrorIs(t, err, shell.ErrMappingToDomainEventUnknownEventType)
}

func Test_EventEnvelopeFromJSON_Fails_OnMalformedBody(t *testing.T) {
	// act
	_, err := shell.EventEnvelopeFromJSON([]byte(`{"eventType":`))

	// assert
	require.Error(t, err)
	assert.ErrorIs(t, err, shell.ErrInvalidEnvelopeJSON)
}

func givenBookValues(t *testing.T) (core.ISBN13, core.Title) {
	t.Helper()

	isbn, err := core.BuildISBN13("9780132350884")
	require.NoError(t, err)

	title, err := core.BuildTitle("Clean Code")
	require.NoError(t, err)

	return isbn, title
}

func givenShellBorrower(t *testing.T) core.Borrower {
	t.Helper()

	borrower, err := core.BuildBorrower("Uncle Bob")
	require.NoError(t, err)

	return borrower
}
