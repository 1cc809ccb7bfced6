package shell

import (
	"context"

	"github.com/google/uuid"

	"github.com/openshelf/book-catalog-go/internal/core"
)

// MessageID represents a unique message identifier.
type MessageID = string

// CausationID represents the ID of the event that caused this message.
type CausationID = string

// CorrelationID represents the ID correlating related events.
type CorrelationID = string

// EventMetadata contains the delivery metadata stamped onto an outgoing
// event envelope so the receiving bounded context can deduplicate and
// correlate it with the originating request.
type EventMetadata struct {
	MessageID     MessageID     `json:"messageId"`
	CausationID   CausationID   `json:"causationId"`
	CorrelationID CorrelationID `json:"correlationId"`
}

// BuildEventMetadata creates EventMetadata from the given identifiers.
func BuildEventMetadata(messageID MessageID, causationID CausationID, correlationID CorrelationID) EventMetadata {
	return EventMetadata{
		MessageID:     messageID,
		CausationID:   causationID,
		CorrelationID: correlationID,
	}
}

// MetadataForDispatch builds the metadata for publishing the given event:
// a fresh message identifier, the event itself as causation, and the active
// correlation identifier from the context (or a freshly generated one if
// the context carries none).
func MetadataForDispatch(ctx context.Context, event core.DomainEvent) EventMetadata {
	correlationID, ok := CorrelationIDFrom(ctx)
	if !ok {
		correlationID = uuid.NewString()
	}

	return BuildEventMetadata(uuid.NewString(), event.EventID(), correlationID)
}
