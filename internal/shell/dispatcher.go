package shell

import (
	"context"
	"errors"

	"github.com/openshelf/book-catalog-go/internal/core"
)

var (
	// ErrChannelUnavailable classifies transient transport-level dispatch
	// failures, including publish timeouts. The business transition is
	// already durable when this surfaces; the caller decides whether to
	// retry the dispatch or rely on at-least-once redelivery.
	ErrChannelUnavailable = errors.New("message channel unavailable")

	// ErrSerializationFailure classifies payload encoding failures.
	// Fatal and never retried: it indicates a defect in event construction.
	ErrSerializationFailure = errors.New("event serialization failed")
)

// Dispatcher delivers a produced domain event to an external message channel,
// attaching correlation metadata read from the context.
//
// Dispatch is fire-and-forget with respect to the business transaction:
// a failure must be logged but must not roll back the already-committed
// state transition. Events are a notification mechanism here, not a
// consistency mechanism — there is deliberately no outbox in this design.
type Dispatcher interface {
	Dispatch(ctx context.Context, event core.DomainEvent) error
}

// DispatchCommitted publishes the event produced by an already-committed
// transition. A dispatch failure is logged and swallowed: the transition is
// durable, the notification is best-effort.
func DispatchCommitted(ctx context.Context, dispatcher Dispatcher, logger Logger, event core.DomainEvent) {
	if err := dispatcher.Dispatch(ctx, event); err != nil {
		logger.Error(LogMsgDispatchFailed,
			LogAttrError, err,
			LogAttrEventType, event.EventType(),
			LogAttrBookID, event.AggregateID(),
		)
	}
}
