// Package handler holds the subscribers registered on the event bus.
package handler

import (
	"context"
	"log/slog"

	"github.com/wlsc/accounts/pkg/domain/events"
	"github.com/wlsc/accounts/pkg/eventbus"
)

// LogEvent returns a handler that records every domain event it receives
// as one structured log line.
func LogEvent(logger *slog.Logger) eventbus.HandlerFunc {
	logger = logger.With("handler", "event_log")
	return func(ctx context.Context, e events.Event) error {
		attrs := []any{"event", e.Type().String()}
		switch e := e.(type) {
		case events.AccountCreated:
			attrs = append(attrs,
				"accountID", e.Account.ID,
				"customerID", e.Account.Customer.ID,
				"amount", e.Account.Amount,
				"currency", e.Account.Currency.String(),
			)
		case events.AccountsCleared:
			attrs = append(attrs, "removed", e.Removed)
		case events.TransferCompleted:
			attrs = append(attrs,
				"transferID", e.Transfer.ID,
				"from", e.Source.ID,
				"to", e.Destination.ID,
				"debited", e.Transfer.Amount,
				"credited", e.Credited,
				"converted", e.Converted,
			)
		}
		logger.InfoContext(ctx, "domain event", attrs...)
		return nil
	}
}
