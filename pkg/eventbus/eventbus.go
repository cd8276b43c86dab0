package eventbus

import (
	"context"

	"github.com/wlsc/accounts/pkg/domain/events"
)

// HandlerFunc handles a single published event.
type HandlerFunc func(ctx context.Context, e events.Event) error

// Bus defines the contract for publishing and subscribing to domain events.
type Bus interface {
	Register(eventType events.EventType, handler HandlerFunc)
	Emit(ctx context.Context, e events.Event) error
}
