// Package eventbus provides the in-process, asynchronous domain event bus
// connecting committed order state changes to the notification pipeline.
//
// Publish is fire-and-forget: it enqueues and returns without waiting for
// handlers, so a notification outage can never make ordering unavailable.
// Handlers run on the bus's own worker goroutines; their failures are
// logged and structurally isolated from the publishing transaction.
// Delivery is best-effort: a full queue or a stopped bus drops the event
// with a warning rather than blocking the publisher.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"foodorder/internal/core/domain/events"
)

const (
	defaultQueueSize = 256
	defaultWorkers   = 4
)

// Handler reacts to a domain event. Returning an error reports a handler
// failure to the bus, which logs it; nothing is retried or propagated.
type Handler interface {
	Handle(ctx context.Context, event events.DomainEvent) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, event events.DomainEvent) error

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, event events.DomainEvent) error {
	return f(ctx, event)
}

// Bus is the in-process event bus. Create it with NewBus, register
// handlers with Subscribe, then Start it; Publish may be called from any
// goroutine until Stop.
type Bus struct {
	queue    chan events.DomainEvent
	handlers []Handler
	logger   *slog.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
	workers int
}

// NewBus creates a bus with the default queue size and worker count.
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		queue:   make(chan events.DomainEvent, defaultQueueSize),
		logger:  logger.With("component", "eventbus"),
		workers: defaultWorkers,
	}
}

// Subscribe registers a handler for all published events. Handlers
// decide relevance by type-switching on the event. Subscribe must be
// called before Start.
func (b *Bus) Subscribe(handler Handler) {
	b.handlers = append(b.handlers, handler)
}

// Start launches the worker goroutines that drain the queue.
func (b *Bus) Start() {
	for range b.workers {
		b.wg.Add(1)
		go b.worker()
	}
	b.logger.Info("event bus started", "workers", b.workers)
}

// Stop closes the queue, waits for in-flight handler work to finish,
// and drops any event published afterwards.
func (b *Bus) Stop() {
	b.mu.Lock()
	if b.stopped {
		b.mu.Unlock()
		return
	}
	b.stopped = true
	close(b.queue)
	b.mu.Unlock()

	b.wg.Wait()
	b.logger.Info("event bus stopped")
}

// Publish enqueues an event without blocking the caller. Events published
// after Stop, or while the queue is full, are dropped with a warning:
// the durable state the event describes is already committed, and the
// live channel is best-effort by design.
func (b *Bus) Publish(event events.DomainEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.stopped {
		b.logger.Warn("event dropped, bus stopped", "event", event.Name())
		return
	}

	select {
	case b.queue <- event:
	default:
		b.logger.Warn("event dropped, queue full", "event", event.Name())
	}
}

func (b *Bus) worker() {
	defer b.wg.Done()

	for event := range b.queue {
		b.deliver(event)
	}
}

// deliver invokes every subscribed handler for one event. A panicking or
// failing handler is logged and never affects its siblings or the
// publisher.
func (b *Bus) deliver(event events.DomainEvent) {
	ctx := context.Background()

	for _, handler := range b.handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("event handler panicked", "event", event.Name(), "panic", r)
				}
			}()

			if err := handler.Handle(ctx, event); err != nil {
				b.logger.Error("event handler failed", "event", event.Name(), "error", err)
			}
		}()
	}
}
