package events

import (
	"time"

	"github.com/wlsc/accounts/pkg/domain/account"
	"github.com/wlsc/accounts/pkg/money"
)

// TransferCompleted is emitted once both sides of a transfer are committed.
// Source and Destination hold the records as written.
type TransferCompleted struct {
	Transfer    account.MoneyTransfer
	Source      account.Account
	Destination account.Account
	// Credited is the amount added to the destination, in its currency.
	Credited   money.Amount
	Converted  bool
	OccurredAt time.Time
}

func (e TransferCompleted) Type() EventType { return EventTypeTransferCompleted }
