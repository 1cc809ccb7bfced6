package rabbitmq

import (
	"context"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/openshelf/book-catalog-go/internal/core"
	"github.com/openshelf/book-catalog-go/internal/shell"
)

const (
	// DefaultExchangeName is the topic exchange book events are published to.
	DefaultExchangeName = "book-catalog.events"

	exchangeTypeTopic     = "topic"
	contentTypeJSON       = "application/json"
	headerCorrelationID   = "correlation-id"
	defaultPublishTimeout = 5 * time.Second
)

// ErrEmptyExchangeName is returned when an empty exchange name is configured.
var ErrEmptyExchangeName = errors.New("empty exchange name supplied")

// Publisher publishes event envelopes to a RabbitMQ topic exchange.
// It implements shell.Dispatcher.
type Publisher struct {
	connection     *amqp.Connection
	channel        *amqp.Channel
	exchangeName   string
	publishTimeout time.Duration
	logger         shell.Logger
}

// PublisherOption defines a functional option for configuring Publisher.
type PublisherOption func(*Publisher) error

// WithExchangeName sets the exchange the publisher declares and publishes to.
func WithExchangeName(exchangeName string) PublisherOption {
	return func(p *Publisher) error {
		if exchangeName == "" {
			return ErrEmptyExchangeName
		}

		p.exchangeName = exchangeName

		return nil
	}
}

// WithPublishTimeout bounds the wait for broker confirmation per publish.
func WithPublishTimeout(timeout time.Duration) PublisherOption {
	return func(p *Publisher) error {
		p.publishTimeout = timeout
		return nil
	}
}

// WithPublisherLogger sets the logger for the Publisher.
func WithPublisherLogger(logger shell.Logger) PublisherOption {
	return func(p *Publisher) error {
		p.logger = logger
		return nil
	}
}

// NewPublisher connects to the broker, puts the channel into confirm mode
// and declares the (durable) topic exchange.
func NewPublisher(url string, options ...PublisherOption) (*Publisher, error) {
	publisher := &Publisher{
		exchangeName:   DefaultExchangeName,
		publishTimeout: defaultPublishTimeout,
		logger:         shell.NoopLogger{},
	}

	for _, option := range options {
		if err := option(publisher); err != nil {
			return nil, err
		}
	}

	connection, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Join(shell.ErrChannelUnavailable, err)
	}

	channel, err := connection.Channel()
	if err != nil {
		_ = connection.Close()
		return nil, errors.Join(shell.ErrChannelUnavailable, err)
	}

	if err = channel.Confirm(false); err != nil {
		_ = connection.Close()
		return nil, errors.Join(shell.ErrChannelUnavailable, err)
	}

	err = channel.ExchangeDeclare(publisher.exchangeName, exchangeTypeTopic, true, false, false, false, nil)
	if err != nil {
		_ = connection.Close()
		return nil, errors.Join(shell.ErrChannelUnavailable, err)
	}

	publisher.connection = connection
	publisher.channel = channel

	return publisher, nil
}

// Dispatch wraps the event into an envelope stamped with the active
// correlation identifier and publishes it with the event type as routing key.
//
// Failure classification: encoding problems surface as
// shell.ErrSerializationFailure (a defect, never retried); everything on the
// transport side, including a confirmation timeout, surfaces as
// shell.ErrChannelUnavailable.
func (p *Publisher) Dispatch(ctx context.Context, event core.DomainEvent) error {
	metadata := shell.MetadataForDispatch(ctx, event)

	envelope, err := shell.BuildEventEnvelope(event, metadata)
	if err != nil {
		return err
	}

	body, err := envelope.ToJSON()
	if err != nil {
		return err
	}

	publishCtx, cancel := context.WithTimeout(ctx, p.publishTimeout)
	defer cancel()

	confirmation, err := p.channel.PublishWithDeferredConfirmWithContext(
		publishCtx,
		p.exchangeName,
		event.EventType(), // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:   contentTypeJSON,
			DeliveryMode:  amqp.Persistent,
			MessageId:     metadata.MessageID,
			CorrelationId: metadata.CorrelationID,
			Type:          event.EventType(),
			Timestamp:     event.HasOccurredAt(),
			Headers:       amqp.Table{headerCorrelationID: metadata.CorrelationID},
			Body:          body,
		},
	)
	if err != nil {
		return errors.Join(shell.ErrChannelUnavailable, err)
	}

	acked, err := confirmation.WaitContext(publishCtx)
	if err != nil {
		return errors.Join(shell.ErrChannelUnavailable, err)
	}

	if !acked {
		return errors.Join(shell.ErrChannelUnavailable, errors.New("broker nacked the publish"))
	}

	p.logger.Debug("event published",
		shell.LogAttrEventType, event.EventType(),
		shell.LogAttrBookID, event.AggregateID(),
		shell.LogAttrCorrelationID, metadata.CorrelationID,
	)

	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return err
	}

	return p.connection.Close()
}

var _ shell.Dispatcher = (*Publisher)(nil)
