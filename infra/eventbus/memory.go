package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/wlsc/accounts/pkg/domain/events"
	"github.com/wlsc/accounts/pkg/eventbus"
)

// MemoryEventBus is a synchronous in-process implementation of eventbus.Bus.
// Handlers run on the emitting goroutine in registration order.
type MemoryEventBus struct {
	handlers  map[events.EventType][]eventbus.HandlerFunc
	mu        sync.RWMutex
	logger    *slog.Logger
	published []events.Event
}

// NewWithMemory creates a new in-memory event bus.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	return &MemoryEventBus{
		handlers:  make(map[events.EventType][]eventbus.HandlerFunc),
		logger:    logger.With("bus", "memory"),
		published: make([]events.Event, 0),
	}
}

// Register registers a handler for a specific event type.
func (b *MemoryEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit dispatches the event to all registered handlers for its type.
// Handler failures are logged and do not stop the remaining handlers.
func (b *MemoryEventBus) Emit(ctx context.Context, e events.Event) error {
	b.mu.Lock()
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[e.Type()]...)
	b.published = append(b.published, e)
	b.mu.Unlock()

	for _, handler := range handlers {
		if err := handler(ctx, e); err != nil {
			b.logger.Error("event handler failed", "event_type", e.Type(), "error", err)
		}
	}
	return nil
}

// ClearPublished clears the list of published events. This is useful for testing.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = make([]events.Event, 0)
}

// Published returns a copy of the events emitted so far. This is useful for testing.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]events.Event(nil), b.published...)
}

// Ensure MemoryEventBus implements the Bus interface.
var _ eventbus.Bus = (*MemoryEventBus)(nil)
