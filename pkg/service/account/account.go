// Package account provides the account service: listing, registering and
// clearing accounts, and transferring money between them.
//
// The service is a thin facade over the account repository and the transfer
// Engine. It passes domain error kinds through unchanged and publishes a
// domain event after every successful mutation.
package account

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/wlsc/accounts/pkg/currency"
	"github.com/wlsc/accounts/pkg/domain/account"
	"github.com/wlsc/accounts/pkg/domain/events"
	"github.com/wlsc/accounts/pkg/eventbus"
	repo "github.com/wlsc/accounts/pkg/repository/account"
)

// Service provides business logic for account operations.
type Service struct {
	repo   repo.Repository
	engine *Engine
	bus    eventbus.Bus
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Service. bus may be nil, in which case no events are published.
func New(
	r repo.Repository,
	converter currency.Converter,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:   r,
		engine: NewEngine(r, converter, logger),
		bus:    bus,
		logger: logger,
		now:    time.Now,
	}
}

// ListAccounts returns a snapshot of all accounts ordered by id.
func (s *Service) ListAccounts(ctx context.Context) []account.Account {
	accounts := s.repo.Snapshot()
	slices.SortFunc(accounts, func(a, b account.Account) int {
		return cmp.Compare(a.ID, b.ID)
	})
	s.logger.DebugContext(ctx, "ListAccounts", "count", len(accounts))
	return accounts
}

// Create registers a new account. It fails with account.ErrAccountAlreadyExists
// when the id is taken; the stored account is left untouched.
func (s *Service) Create(ctx context.Context, a account.Account) error {
	logger := s.logger.With("accountID", a.ID, "currency", a.Currency)
	logger.InfoContext(ctx, "Create started")
	if a.Amount < 0 {
		logger.WarnContext(ctx, "Create failed: negative opening balance", "amount", a.Amount)
		return fmt.Errorf("%w: amount must not be negative", account.ErrInvalidAccount)
	}
	if !s.repo.PutIfAbsent(a) {
		logger.InfoContext(ctx, "Create failed: account already exists")
		return fmt.Errorf("%w: %s", account.ErrAccountAlreadyExists, a.ID)
	}
	logger.InfoContext(ctx, "Create successful")
	s.emit(ctx, events.AccountCreated{Account: a, OccurredAt: s.now()})
	return nil
}

// RemoveAll deletes every account. It always succeeds.
func (s *Service) RemoveAll(ctx context.Context) {
	removed := s.repo.Clear()
	s.logger.InfoContext(ctx, "All accounts were removed", "removed", removed)
	s.emit(ctx, events.AccountsCleared{Removed: removed, OccurredAt: s.now()})
}

// Count returns the number of registered accounts.
func (s *Service) Count() int {
	return s.repo.Len()
}

// Transfer moves money between two accounts. Error kinds from the Engine
// are returned unchanged. A transfer without an id is given one for log
// correlation; ids are never used to deduplicate.
func (s *Service) Transfer(ctx context.Context, mt account.MoneyTransfer) error {
	if mt.ID == "" {
		mt.ID = uuid.NewString()
	}
	logger := s.logger.With(
		"transferID", mt.ID,
		"from", mt.FromAccountID,
		"to", mt.ToAccountID,
		"amount", mt.Amount,
	)
	logger.InfoContext(ctx, "Transfer started")
	receipt, err := s.engine.Transfer(ctx, mt)
	if err != nil {
		logger.InfoContext(ctx, "Transfer failed", "error", err)
		return err
	}
	logger.InfoContext(ctx, "Transfer successful",
		"credited", receipt.Credited,
		"converted", receipt.Converted,
	)
	s.emit(ctx, events.TransferCompleted{
		Transfer:    mt,
		Source:      receipt.Source,
		Destination: receipt.Destination,
		Credited:    receipt.Credited,
		Converted:   receipt.Converted,
		OccurredAt:  s.now(),
	})
	return nil
}

func (s *Service) emit(ctx context.Context, e events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, e); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish event", "event_type", e.Type(), "error", err)
	}
}
