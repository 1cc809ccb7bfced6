package shell

import (
	"encoding/json"
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/openshelf/book-catalog-go/internal/core"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// EventEnvelopeFromJSON deserializes a message body back into an envelope.
func EventEnvelopeFromJSON(body []byte) (EventEnvelope, error) {
	if !json.Valid(body) {
		return EventEnvelope{}, ErrInvalidEnvelopeJSON
	}

	envelope := new(EventEnvelope)

	err := jsoniter.ConfigFastest.Unmarshal(body, envelope)
	if err != nil {
		return EventEnvelope{}, errors.Join(ErrInvalidEnvelopeJSON, err)
	}

	return *envelope, nil
}

// DomainEventFrom converts an EventEnvelope back into its concrete domain
// event, switching exhaustively over the closed set of event types.
func DomainEventFrom(envelope EventEnvelope) (core.DomainEvent, error) {
	switch envelope.EventType {
	case core.BookAddedEventType:
		return unmarshalBookAdded(envelope.Payload)

	case core.BookUpdatedEventType:
		return unmarshalBookUpdated(envelope.Payload)

	case core.BookRemovedEventType:
		return unmarshalBookRemoved(envelope.Payload)

	case core.BookBorrowedEventType:
		return unmarshalBookBorrowed(envelope.Payload)

	case core.BookReturnedEventType:
		return unmarshalBookReturned(envelope.Payload)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshalBookAdded(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookAdded)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload)
	if err != nil {
		return core.BookAdded{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return *payload, nil
}

func unmarshalBookUpdated(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookUpdated)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload)
	if err != nil {
		return core.BookUpdated{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return *payload, nil
}

func unmarshalBookRemoved(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookRemoved)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload)
	if err != nil {
		return core.BookRemoved{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return *payload, nil
}

func unmarshalBookBorrowed(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookBorrowed)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload)
	if err != nil {
		return core.BookBorrowed{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return *payload, nil
}

func unmarshalBookReturned(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookReturned)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload)
	if err != nil {
		return core.BookReturned{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return *payload, nil
}
