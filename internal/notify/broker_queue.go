package notify

import (
	"context"

	"cashbook/internal/logger"
)

// publisher is the broker side of a BrokerQueue.
type publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close(ctx context.Context) error
}

// BrokerQueue is a Dispatcher that hands messages to a broker from worker
// goroutines, so a slow or unreachable broker never holds up the caller.
type BrokerQueue struct {
	*Queue
	broker publisher
}

// NewBrokerQueue starts workers goroutines publishing queued messages to broker.
func NewBrokerQueue(broker publisher, workers, buffer int) *BrokerQueue {
	publish := func(ctx context.Context, msg Message) error {
		if err := broker.Publish(ctx, msg); err != nil {
			logger.Get().Warnw("Notification dropped: publish failed", "title", msg.Title, "error", err)
			return err
		}
		return nil
	}
	return &BrokerQueue{
		Queue:  NewQueue(publish, workers, buffer),
		broker: broker,
	}
}

// Close drains queued messages, then closes the broker.
func (q *BrokerQueue) Close(ctx context.Context) error {
	drainErr := q.Queue.Close(ctx)
	if err := q.broker.Close(ctx); err != nil && drainErr == nil {
		return err
	}
	return drainErr
}

var (
	_ Dispatcher = (*BrokerQueue)(nil)
	_ publisher  = (*AMQPBroker)(nil)
)
