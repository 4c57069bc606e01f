package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"cashbook/internal/logger"
)

// reconnectDelay spaces consumer reconnect attempts after the broker drops
// the connection.
const reconnectDelay = 5 * time.Second

var errBrokerClosed = errors.New("broker closed")

// AMQPBroker publishes notifications to RabbitMQ for delivery by a separate
// consumer process, and implements that consumer. A dropped connection is
// redialed on the next publish or by the consume loop.
type AMQPBroker struct {
	url          string
	exchangeName string
	queueName    string

	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
	closed  bool
}

// NewAMQPBroker dials url and declares a durable direct exchange and queue
// bound under the queue's name.
func NewAMQPBroker(url, exchangeName, queueName string) (*AMQPBroker, error) {
	b := &AMQPBroker{
		url:          url,
		exchangeName: exchangeName,
		queueName:    queueName,
	}
	if err := b.connect(); err != nil {
		return nil, err
	}
	return b, nil
}

// connect dials and declares the topology. Callers hold b.mu or own b
// exclusively.
func (b *AMQPBroker) connect() error {
	conn, err := amqp091.Dial(b.url)
	if err != nil {
		return fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	if err := declare(channel, b.exchangeName, b.queueName); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return fmt.Errorf("setup exchange and queue: %w", err)
	}

	lost := conn.NotifyClose(make(chan *amqp091.Error, 1))
	go func() {
		if amqpErr, ok := <-lost; ok && amqpErr != nil {
			logger.Get().Warnw("Broker connection lost", "code", amqpErr.Code, "reason", amqpErr.Reason)
		}
	}()

	b.conn = conn
	b.channel = channel
	return nil
}

func declare(channel *amqp091.Channel, exchangeName, queueName string) error {
	if err := channel.ExchangeDeclare(
		exchangeName, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := channel.QueueBind(
		queueName,    // queue name
		queueName,    // routing key
		exchangeName, // exchange
		false,
		nil,
	); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// liveChannel returns an open channel, redialing when the connection or
// channel has gone away.
func (b *AMQPBroker) liveChannel() (*amqp091.Channel, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, errBrokerClosed
	}
	if b.conn != nil && !b.conn.IsClosed() && b.channel != nil && !b.channel.IsClosed() {
		return b.channel, nil
	}

	b.release()
	if err := b.connect(); err != nil {
		return nil, err
	}
	logger.Get().Infow("Reconnected to broker", "exchange", b.exchangeName, "queue", b.queueName)
	return b.channel, nil
}

// release drops the current connection. Callers hold b.mu.
func (b *AMQPBroker) release() {
	if b.channel != nil {
		_ = b.channel.Close()
		b.channel = nil
	}
	if b.conn != nil {
		_ = b.conn.Close()
		b.conn = nil
	}
}

// Publish sends msg to the exchange. It blocks until the broker accepts the
// message or the 5s publish timeout passes, so callers on a request path go
// through a Queue (see NewBrokerQueue).
func (b *AMQPBroker) Publish(ctx context.Context, msg Message) error {
	body, err := encodeMessage(msg)
	if err != nil {
		return err
	}

	channel, err := b.liveChannel()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return channel.PublishWithContext(
		ctx,
		b.exchangeName, // exchange
		b.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

// Consume passes each queued message to handler until ctx ends. Every
// message is acknowledged after one attempt whatever the outcome; malformed
// payloads are rejected without requeue. A dropped connection is redialed
// every reconnectDelay.
func (b *AMQPBroker) Consume(ctx context.Context, handler Handler) error {
	log := logger.Get()

	for {
		err := b.consumeOnce(ctx, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, errBrokerClosed) {
			return err
		}
		log.Warnw("Consumer interrupted, reconnecting", "queue", b.queueName, "error", err, "delay", reconnectDelay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reconnectDelay):
		}
	}
}

func (b *AMQPBroker) consumeOnce(ctx context.Context, handler Handler) error {
	channel, err := b.liveChannel()
	if err != nil {
		return err
	}

	deliveries, err := channel.Consume(
		b.queueName, // queue
		"",          // consumer
		false,       // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	log := logger.Get()
	log.Infow("Consuming notifications", "queue", b.queueName)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}

			msg, err := decodeMessage(d.Body)
			if err != nil {
				log.Errorw("Rejecting malformed notification", "error", err)
				_ = d.Nack(false, false)
				continue
			}

			if err := handler(ctx, msg); err != nil {
				log.Warnw("Notification delivery failed", "title", msg.Title, "error", err)
			}
			_ = d.Ack(false)
		}
	}
}

// Close releases the channel and connection. The broker cannot be used
// afterwards.
func (b *AMQPBroker) Close(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	var err error
	if b.channel != nil {
		_ = b.channel.Close()
		b.channel = nil
	}
	if b.conn != nil {
		err = b.conn.Close()
		b.conn = nil
	}
	return err
}

func encodeMessage(msg Message) ([]byte, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal message: %w", err)
	}
	return body, nil
}

func decodeMessage(body []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return Message{}, fmt.Errorf("unmarshal message: %w", err)
	}
	if msg.Title == "" && msg.Body == "" {
		return Message{}, errors.New("empty message")
	}
	return msg, nil
}

