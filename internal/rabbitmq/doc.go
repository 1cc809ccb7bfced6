// Package rabbitmq implements the event dispatch contract over a RabbitMQ
// topic exchange.
//
// Every domain event is published with its EventType as the routing key, so
// subscribers can filter by event kind without deserializing the payload.
// The publisher waits for broker confirmation (bounded by a timeout); a
// failed or timed-out publish surfaces as shell.ErrChannelUnavailable and
// never rolls back the already-committed state transition.
package rabbitmq
