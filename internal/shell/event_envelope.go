package shell

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/openshelf/book-catalog-go/internal/core"
)

// ErrInvalidEnvelopeJSON is returned when raw envelope bytes are not valid JSON.
var ErrInvalidEnvelopeJSON = errors.New("envelope json is not valid")

// EventEnvelopes is a slice of EventEnvelope instances
type EventEnvelopes = []EventEnvelope

// EventEnvelope is the wire format published to the message channel.
//
// It is built on scalars and raw JSON to be agnostic of the domain event
// implementation on the consuming side: subscribers can filter on EventType
// (also the routing key) without deserializing the payload, deduplicate on
// Metadata.MessageID or EventID, and correlate on Metadata.CorrelationID.
type EventEnvelope struct {
	EventType  string          `json:"eventType"`
	EventID    string          `json:"eventId"`
	BookID     string          `json:"bookId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
	Metadata   EventMetadata   `json:"metadata"`
}

// BuildEventEnvelope wraps a domain event and its metadata into the wire
// format. The payload is the JSON serialization of the concrete event;
// OccurredAt is passed through unchanged from the event, so it reflects the
// moment of the business transition, not the moment of dispatch.
// Returns an error wrapping ErrSerializationFailure if the payload cannot
// be encoded.
func BuildEventEnvelope(event core.DomainEvent, metadata EventMetadata) (EventEnvelope, error) {
	payloadJSON, err := json.Marshal(event)
	if err != nil {
		return EventEnvelope{}, errors.Join(ErrSerializationFailure, err)
	}

	return EventEnvelope{
		EventType:  event.EventType(),
		EventID:    event.EventID(),
		BookID:     event.AggregateID(),
		OccurredAt: event.HasOccurredAt(),
		Payload:    payloadJSON,
		Metadata:   metadata,
	}, nil
}

// ToJSON serializes the complete envelope for the message body.
func (e EventEnvelope) ToJSON() ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, errors.Join(ErrSerializationFailure, err)
	}

	return body, nil
}
