package notify

import (
	"context"
	"sync"

	"cashbook/internal/logger"
)

// Dispatcher hands a message off for asynchronous delivery. Dispatch never
// blocks on delivery and never reports its outcome.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message)
	Close(ctx context.Context) error
}

// Queue is an in-process Dispatcher backed by a buffered channel and a fixed
// pool of worker goroutines. Each message is attempted once. When the buffer
// is full the message is dropped with a warning.
type Queue struct {
	msgs    chan Message
	handler Handler
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
}

// NewQueue starts workers goroutines that pass queued messages to handler.
func NewQueue(handler Handler, workers, buffer int) *Queue {
	if workers < 1 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}

	q := &Queue{
		msgs:    make(chan Message, buffer),
		handler: handler,
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

// Dispatch enqueues msg without waiting.
func (q *Queue) Dispatch(_ context.Context, msg Message) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		logger.Get().Warnw("Notification dropped: queue closed", "title", msg.Title)
		return
	}

	select {
	case q.msgs <- msg:
	default:
		logger.Get().Warnw("Notification dropped: queue full", "title", msg.Title, "capacity", cap(q.msgs))
	}
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for msg := range q.msgs {
		q.process(msg)
	}
}

func (q *Queue) process(msg Message) {
	defer func() {
		if r := recover(); r != nil {
			logger.Get().Errorw("Notification handler panicked", "panic", r)
		}
	}()
	// Errors are logged by the handler.
	_ = q.handler(context.Background(), msg)
}

// Close stops accepting messages and waits for queued ones to be delivered,
// or for ctx to end.
func (q *Queue) Close(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.msgs)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ Dispatcher = (*Queue)(nil)
