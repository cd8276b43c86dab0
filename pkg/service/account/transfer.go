package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/wlsc/accounts/pkg/currency"
	"github.com/wlsc/accounts/pkg/domain/account"
	"github.com/wlsc/accounts/pkg/money"
	repo "github.com/wlsc/accounts/pkg/repository/account"
)

// Receipt describes a committed transfer.
type Receipt struct {
	// Source and Destination are the records as written. For a self-transfer
	// both hold the same record.
	Source      account.Account
	Destination account.Account
	// Credited is the amount deposited, in the destination currency.
	Credited  money.Amount
	Converted bool
}

// Engine executes money transfers against a Repository. Transfers through
// one Engine are serialized; the Engine keeps no state between calls.
type Engine struct {
	mu        sync.Mutex
	repo      repo.Repository
	converter currency.Converter
	logger    *slog.Logger
}

// NewEngine creates a transfer engine over r that prices cross-currency
// transfers with converter.
func NewEngine(r repo.Repository, converter currency.Converter, logger *slog.Logger) *Engine {
	return &Engine{
		repo:      r,
		converter: converter,
		logger:    logger.With("component", "transfer_engine"),
	}
}

// Transfer withdraws mt.Amount from the source account and deposits its
// destination-currency equivalent into the destination account.
//
// Checks run in a fixed order and the first failure is returned:
// negative amount, unknown source, unknown destination, insufficient funds,
// conversion failure, overflow. On failure the repository is unchanged.
// Zero amounts are accepted and leave both balances as they were.
//
// Once the engine lock is held the transfer runs to completion; ctx is used
// for logging only.
func (e *Engine) Transfer(ctx context.Context, mt account.MoneyTransfer) (Receipt, error) {
	if mt.Amount < 0 {
		return Receipt{}, fmt.Errorf("%w: cannot transfer %d", account.ErrNegativeAmount, mt.Amount)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	src, ok := e.repo.Get(mt.FromAccountID)
	if !ok {
		return Receipt{}, fmt.Errorf("%w: no such account %s found", account.ErrSourceNotFound, mt.FromAccountID)
	}
	dst, ok := e.repo.Get(mt.ToAccountID)
	if !ok {
		return Receipt{}, fmt.Errorf("%w: no such account %s found", account.ErrDestinationNotFound, mt.ToAccountID)
	}
	remaining, ok := money.Sub(src.Amount, mt.Amount)
	if !ok || remaining < 0 {
		return Receipt{}, fmt.Errorf("%w: source account has not enough money to transfer", account.ErrInsufficientFunds)
	}

	credit, converted, err := e.credit(src.Currency, dst.Currency, mt.Amount)
	if err != nil {
		return Receipt{}, err
	}

	var (
		updates []repo.Update
		receipt = Receipt{Credited: credit, Converted: converted}
	)
	if mt.IsSelfTransfer() {
		total, ok := money.Add(remaining, credit)
		if !ok {
			return Receipt{}, fmt.Errorf("%w: deposit into %s exceeds the maximum balance", account.ErrOverflow, dst.ID)
		}
		next := src.WithAmount(total)
		updates = []repo.Update{{Old: src, New: next}}
		receipt.Source, receipt.Destination = next, next
	} else {
		total, ok := money.Add(dst.Amount, credit)
		if !ok {
			return Receipt{}, fmt.Errorf("%w: deposit into %s exceeds the maximum balance", account.ErrOverflow, dst.ID)
		}
		receipt.Source, receipt.Destination = src.WithAmount(remaining), dst.WithAmount(total)
		updates = []repo.Update{
			{Old: src, New: receipt.Source},
			{Old: dst, New: receipt.Destination},
		}
	}

	if conflict, ok := e.repo.Replace(updates...); !ok {
		// Only a concurrent removal can invalidate a record we read under the lock.
		if conflict == src.ID {
			return Receipt{}, fmt.Errorf("%w: account %s was removed during transfer", account.ErrSourceNotFound, conflict)
		}
		return Receipt{}, fmt.Errorf("%w: account %s was removed during transfer", account.ErrDestinationNotFound, conflict)
	}

	e.logger.DebugContext(ctx, "transfer committed",
		"transfer_id", mt.ID,
		"from", src.ID,
		"to", dst.ID,
		"amount", mt.Amount,
		"credited", credit,
		"converted", converted,
	)
	return receipt, nil
}

// credit returns the amount to deposit. The converter is consulted only
// when the currencies differ.
func (e *Engine) credit(from, to money.Code, amount money.Amount) (money.Amount, bool, error) {
	if from == to {
		return amount, false, nil
	}
	converted, err := e.converter.Convert(from, to, amount)
	if err != nil {
		if !errors.Is(err, account.ErrConversionUnavailable) {
			err = fmt.Errorf("%w: %w", account.ErrConversionUnavailable, err)
		}
		return 0, false, err
	}
	if converted < 0 {
		return 0, false, fmt.Errorf("%w: converter returned negative amount %d", account.ErrConversionUnavailable, converted)
	}
	return converted, true, nil
}
