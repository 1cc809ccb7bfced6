// Package slacknotifier posts a chat message for every book event consumed
// from the message channel. It is a downstream bounded context of the
// catalog: it sees only event envelopes, never the aggregate.
package slacknotifier

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/openshelf/book-catalog-go/internal/core"
	"github.com/openshelf/book-catalog-go/internal/shell"
)

// MessagePoster is the slice of the Slack client used by the notifier.
// *slack.Client satisfies it.
type MessagePoster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Notifier renders consumed envelopes into channel messages.
type Notifier struct {
	client    MessagePoster
	channelID string
	logger    shell.Logger
}

// New creates a Notifier posting to the given channel.
func New(client MessagePoster, channelID string, logger shell.Logger) *Notifier {
	if logger == nil {
		logger = shell.NoopLogger{}
	}

	return &Notifier{
		client:    client,
		channelID: channelID,
		logger:    logger,
	}
}

// HandleEnvelope decodes the envelope and posts the rendered message.
func (n *Notifier) HandleEnvelope(ctx context.Context, envelope shell.EventEnvelope) error {
	event, err := shell.DomainEventFrom(envelope)
	if err != nil {
		return err
	}

	text := FormatMessage(event)

	_, _, err = n.client.PostMessageContext(ctx, n.channelID, slack.MsgOptionText(text, false))
	if err != nil {
		n.logger.Error("posting slack message failed",
			shell.LogAttrError, err,
			shell.LogAttrEventType, envelope.EventType,
			shell.LogAttrCorrelationID, envelope.Metadata.CorrelationID,
		)

		return err
	}

	return nil
}

// FormatMessage renders the notification text for an event, switching
// exhaustively over the closed set of event kinds.
func FormatMessage(event core.DomainEvent) string {
	switch e := event.(type) {
	case core.BookAdded:
		return fmt.Sprintf("New book in the catalog: %q (ISBN %s)", e.Title, e.ISBN)

	case core.BookUpdated:
		return fmt.Sprintf("Catalog entry updated: %q (ISBN %s)", e.Title, e.ISBN)

	case core.BookRemoved:
		return fmt.Sprintf("Book %s was removed from the catalog", e.BookID)

	case core.BookBorrowed:
		return fmt.Sprintf("Book %s was borrowed by %s", e.BookID, e.Borrower)

	case core.BookReturned:
		return fmt.Sprintf("Book %s was returned by %s", e.BookID, e.Borrower)

	default:
		return fmt.Sprintf("Book event %s for book %s", event.EventType(), event.AggregateID())
	}
}
