// Package app assembles the account service and registers the handlers
// that react to its domain events.
package app

import (
	"log/slog"

	"github.com/wlsc/accounts/pkg/domain/events"
	"github.com/wlsc/accounts/pkg/eventbus"
	"github.com/wlsc/accounts/pkg/handler"
)

// SetupBus registers all event handlers with the provided event Bus.
func SetupBus(bus eventbus.Bus, logger *slog.Logger) {
	for _, eventType := range []events.EventType{
		events.EventTypeAccountCreated,
		events.EventTypeAccountsCleared,
		events.EventTypeTransferCompleted,
	} {
		bus.Register(eventType, handler.LogEvent(logger))
	}
}
