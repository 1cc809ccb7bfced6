package rabbitmq

import (
	"context"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/openshelf/book-catalog-go/internal/core"
	"github.com/openshelf/book-catalog-go/internal/shell"
)

// EnvelopeHandler processes a consumed event envelope. A returned error
// causes the delivery to be rejected without requeue, relying on the event
// identifiers for deduplication if the broker redelivers.
type EnvelopeHandler interface {
	HandleEnvelope(ctx context.Context, envelope shell.EventEnvelope) error
}

// Consumer binds a queue to the book events exchange and feeds every
// delivered envelope to a handler.
type Consumer struct {
	connection   *amqp.Connection
	channel      *amqp.Channel
	exchangeName string
	queueName    string
	routingKeys  []string
	handler      EnvelopeHandler
	logger       shell.Logger
}

// ErrEmptyQueueName is returned when an empty queue name is configured.
var ErrEmptyQueueName = errors.New("empty queue name supplied")

// ConsumerOption defines a functional option for configuring Consumer.
type ConsumerOption func(*Consumer) error

// WithQueueName sets the queue the consumer declares and binds.
func WithQueueName(queueName string) ConsumerOption {
	return func(c *Consumer) error {
		if queueName == "" {
			return ErrEmptyQueueName
		}

		c.queueName = queueName

		return nil
	}
}

// WithRoutingKeys restricts the binding to the given event types.
// By default the queue is bound to every event kind in the closed set.
func WithRoutingKeys(routingKeys ...string) ConsumerOption {
	return func(c *Consumer) error {
		c.routingKeys = routingKeys
		return nil
	}
}

// WithConsumerExchangeName sets the exchange the queue is bound to.
func WithConsumerExchangeName(exchangeName string) ConsumerOption {
	return func(c *Consumer) error {
		if exchangeName == "" {
			return ErrEmptyExchangeName
		}

		c.exchangeName = exchangeName

		return nil
	}
}

// WithConsumerLogger sets the logger for the Consumer.
func WithConsumerLogger(logger shell.Logger) ConsumerOption {
	return func(c *Consumer) error {
		c.logger = logger
		return nil
	}
}

// NewConsumer connects to the broker and declares the exchange, the queue
// and its bindings.
func NewConsumer(url string, queueName string, handler EnvelopeHandler, options ...ConsumerOption) (*Consumer, error) {
	if queueName == "" {
		return nil, ErrEmptyQueueName
	}

	consumer := &Consumer{
		exchangeName: DefaultExchangeName,
		queueName:    queueName,
		routingKeys:  core.AllEventTypes(),
		handler:      handler,
		logger:       shell.NoopLogger{},
	}

	for _, option := range options {
		if err := option(consumer); err != nil {
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

	err = channel.ExchangeDeclare(consumer.exchangeName, exchangeTypeTopic, true, false, false, false, nil)
	if err != nil {
		_ = connection.Close()
		return nil, errors.Join(shell.ErrChannelUnavailable, err)
	}

	if _, err = channel.QueueDeclare(consumer.queueName, true, false, false, false, nil); err != nil {
		_ = connection.Close()
		return nil, errors.Join(shell.ErrChannelUnavailable, err)
	}

	for _, routingKey := range consumer.routingKeys {
		if err = channel.QueueBind(consumer.queueName, routingKey, consumer.exchangeName, false, nil); err != nil {
			_ = connection.Close()
			return nil, errors.Join(shell.ErrChannelUnavailable, err)
		}
	}

	consumer.connection = connection
	consumer.channel = channel

	return consumer, nil
}

// Start begins consuming deliveries in a background goroutine until the
// context is canceled or the delivery channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.channel.Consume(c.queueName, "", false, false, false, false, nil)
	if err != nil {
		return errors.Join(shell.ErrChannelUnavailable, err)
	}

	go c.consumeLoop(ctx, deliveries)

	return nil
}

func (c *Consumer) consumeLoop(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return

		case delivery, open := <-deliveries:
			if !open {
				return
			}

			c.handleDelivery(ctx, delivery)
		}
	}
}

func (c *Consumer) handleDelivery(ctx context.Context, delivery amqp.Delivery) {
	envelope, err := shell.EventEnvelopeFromJSON(delivery.Body)
	if err != nil {
		c.logger.Error("discarding undecodable message", shell.LogAttrError, err)
		_ = delivery.Reject(false)

		return
	}

	handlerCtx := shell.WithCorrelationID(ctx, envelope.Metadata.CorrelationID)

	if err = c.handler.HandleEnvelope(handlerCtx, envelope); err != nil {
		c.logger.Error("envelope handler failed",
			shell.LogAttrError, err,
			shell.LogAttrEventType, envelope.EventType,
			shell.LogAttrCorrelationID, envelope.Metadata.CorrelationID,
		)
		_ = delivery.Reject(false)

		return
	}

	_ = delivery.Ack(false)
}

// Close releases the channel and connection.
func (c *Consumer) Close() error {
	if err := c.channel.Close(); err != nil {
		return err
	}

	return c.connection.Close()
}
