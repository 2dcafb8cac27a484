package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wayfinder/internal/domain/service"
	"wayfinder/internal/infra/metrics"

	"github.com/pkg/errors"
)

var (
	// ErrQueueFull is returned when the event could not be queued
	ErrQueueFull = errors.New("navigation event queue is full")
	// ErrPublisherClosed is returned for events published after shutdown began
	ErrPublisherClosed = errors.New("event publisher is closed")
)

// queuedPublisher hands events to a single worker so sessions never wait on
// the broker. Events leave in the order they were queued.
type queuedPublisher struct {
	backend service.EventPublisher
	events  chan *service.NavigationEvent
	timeout time.Duration
	logger  *slog.Logger

	// base is cancelled when a shutdown deadline passes so the drain stops early
	base   context.Context
	cancel context.CancelFunc

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func newQueuedPublisher(backend service.EventPublisher, size int, timeout time.Duration, logger *slog.Logger) *queuedPublisher {
	base, cancel := context.WithCancel(context.Background())
	q := &queuedPublisher{
		backend: backend,
		events:  make(chan *service.NavigationEvent, size),
		timeout: timeout,
		logger:  logger,
		base:    base,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go q.run()

	return q
}

// PublishNavigationEvent queues the event and returns immediately
func (q *queuedPublisher) PublishNavigationEvent(_ context.Context, event *service.NavigationEvent) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrPublisherClosed
	}

	select {
	case q.events <- event:
		return nil
	default:
		metrics.NavigationEvents.WithLabelValues(event.EventType, "dropped").Inc()

		return errors.Wrapf(ErrQueueFull, "dropping %s for session %s", event.EventType, event.SessionID)
	}
}

func (q *queuedPublisher) run() {
	defer close(q.done)

	for event := range q.events {
		ctx, cancel := context.WithTimeout(q.base, q.timeout)
		err := q.backend.PublishNavigationEvent(ctx, event)
		cancel()

		if err != nil {
			metrics.NavigationEvents.WithLabelValues(event.EventType, "failed").Inc()
			q.logger.Warn("Failed to publish navigation event",
				slog.String("event_type", event.EventType),
				slog.String("session_id", event.SessionID),
				slog.Any("error", err),
			)

			continue
		}
		metrics.NavigationEvents.WithLabelValues(event.EventType, "published").Inc()
	}
}

// Shutdown stops accepting events and drains the queue until ctx ends, then
// closes the backend
func (q *queuedPublisher) Shutdown(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()

		return nil
	}
	q.closed = true
	close(q.events)
	q.mu.Unlock()

	select {
	case <-q.done:
	case <-ctx.Done():
		q.logger.Warn("Navigation event drain interrupted", slog.Int("pending", len(q.events)))
		q.cancel()
		<-q.done
	}
	q.cancel()

	return q.backend.Close()
}

// Close drains every queued event before closing the backend
func (q *queuedPublisher) Close() error {
	return q.Shutdown(context.Background())
}
